package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTracks(t *testing.T) {
	tracks, err := ParseTracks("30, *, 2*, auto, 12px")
	require.NoError(t, err)
	require.Len(t, tracks, 5)

	assert.Equal(t, Px(30), tracks[0])
	assert.Equal(t, Star(), tracks[1])
	assert.Equal(t, Stars(2), tracks[2])
	assert.Equal(t, KindAuto, tracks[3].Kind)
	assert.Equal(t, Px(12), tracks[4])
}

func TestParseTracks_Empty(t *testing.T) {
	tracks, err := ParseTracks("  ")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestParseTracks_Invalid(t *testing.T) {
	for _, def := range []string{"abc", "-4", "x*", "1,,2"} {
		_, err := ParseTracks(def)
		assert.Error(t, err, def)
	}
}

func TestTrack_String(t *testing.T) {
	assert.Equal(t, "30", Px(30).String())
	assert.Equal(t, "*", Star().String())
	assert.Equal(t, "2.5*", Stars(2.5).String())
	assert.Equal(t, "auto", Auto().String())
	assert.Equal(t, "star", KindStar.String())
}
