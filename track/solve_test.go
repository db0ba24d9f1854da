package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 0.01

func TestSolve_StarProportional(t *testing.T) {
	r := Solve([]Track{Px(30), Stars(1), Stars(2)}, 160, true, 0, nil)

	require.Equal(t, 3, r.Len())
	assert.InDelta(t, 30, r.Extents[0], eps)
	assert.InDelta(t, 43.33, r.Extents[1], eps)
	assert.InDelta(t, 86.67, r.Extents[2], eps)
	assert.InDelta(t, 160, r.Total(), eps)
	assert.InDelta(t, 30, r.Origin(1), eps)
	assert.InDelta(t, 73.33, r.Origin(2), eps)
}

func TestSolve_StarsSumToRemaining(t *testing.T) {
	cases := []struct {
		name    string
		tracks  []Track
		avail   float32
		spacing float32
	}{
		{"single star", []Track{Star()}, 100, 0},
		{"mixed", []Track{Px(10), Stars(3), Auto(), Stars(0.5)}, 400, 0},
		{"with spacing", []Track{Stars(1), Stars(1), Px(20)}, 200, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Solve(tc.tracks, tc.avail, true, tc.spacing, nil)
			remaining := tc.avail - tc.spacing*float32(len(tc.tracks)-1)
			var stars float32
			for i, tr := range tc.tracks {
				if tr.Kind == KindStar {
					stars += r.Extents[i]
				} else {
					remaining -= r.Extents[i]
				}
			}
			assert.InDelta(t, remaining, stars, eps)
			assert.InDelta(t, tc.avail, r.Total(), eps)
		})
	}
}

func TestSolve_NegativeRemainderCollapsesStars(t *testing.T) {
	r := Solve([]Track{Px(100), Star(), Stars(2)}, 60, true, 0, nil)

	assert.Equal(t, float32(100), r.Extents[0])
	assert.Equal(t, float32(0), r.Extents[1])
	assert.Equal(t, float32(0), r.Extents[2])
}

func TestSolve_ZeroWeightStars(t *testing.T) {
	r := Solve([]Track{Stars(0), Stars(0)}, 100, true, 0, nil)
	assert.Equal(t, []float32{0, 0}, r.Extents)
}

func TestSolve_EmptyTracksActAsOneStar(t *testing.T) {
	r := Solve(nil, 250, true, 0, nil)
	require.Equal(t, 1, r.Len())
	assert.Equal(t, float32(250), r.Extents[0])
}

func TestSolve_AutoTakesLargestContribution(t *testing.T) {
	contribs := []Contribution{
		{Span: Span{Start: 0, Count: 1}, Extent: 40},
		{Span: Span{Start: 0, Count: 1}, Extent: 75},
		{Span: Span{Start: 0, Count: 1}, Extent: 12},
	}
	r := Solve([]Track{Auto(), Star()}, 300, true, 0, contribs)

	assert.Equal(t, float32(75), r.Extents[0])
	assert.Equal(t, float32(225), r.Extents[1])
}

func TestSolve_SpanningExcessSplitsAcrossAutos(t *testing.T) {
	contribs := []Contribution{
		{Span: Span{Start: 0, Count: 1}, Extent: 20},
		{Span: Span{Start: 1, Count: 1}, Extent: 20},
		{Span: Span{Start: 0, Count: 3}, Extent: 110},
	}
	r := Solve([]Track{Auto(), Auto(), Px(30)}, 500, true, 0, contribs)

	// sum before = 70, excess 40 split over two autos
	assert.InDelta(t, 40, r.Extents[0], eps)
	assert.InDelta(t, 40, r.Extents[1], eps)
	assert.InDelta(t, 30, r.Extents[2], eps)
}

func TestSolve_UnboundedStarsActAsAuto(t *testing.T) {
	contribs := []Contribution{{Span: Span{Start: 1, Count: 1}, Extent: 64}}
	r := Solve([]Track{Px(10), Stars(5)}, 1<<30, false, 0, contribs)

	assert.Equal(t, float32(10), r.Extents[0])
	assert.Equal(t, float32(64), r.Extents[1])
	assert.Equal(t, float32(74), r.Total())
}

func TestSolve_BoundTrackReadsProviderEachSolve(t *testing.T) {
	split := float32(80)
	tracks := []Track{Bind(func() float32 { return split }), Star()}

	r := Solve(tracks, 200, true, 0, nil)
	assert.Equal(t, float32(80), r.Extents[0])
	assert.Equal(t, float32(120), r.Extents[1])

	split = 150
	r = Solve(tracks, 200, true, 0, nil)
	assert.Equal(t, float32(150), r.Extents[0])
	assert.Equal(t, float32(50), r.Extents[1])
}

func TestSolve_StarClampRedistributes(t *testing.T) {
	r := Solve([]Track{Star().WithMax(20), Star()}, 100, true, 0, nil)

	assert.Equal(t, float32(20), r.Extents[0])
	assert.Equal(t, float32(80), r.Extents[1])
}

func TestResult_SpanAndClamp(t *testing.T) {
	r := Solve([]Track{Px(10), Px(20), Px(30)}, 0, true, 4, nil)

	assert.Equal(t, float32(10+4+20), r.SpanExtent(Span{Start: 0, Count: 2}))
	assert.Equal(t, float32(30), r.SpanExtent(Span{Start: 7, Count: 1}), "start past the end lands on the last track")
	assert.Equal(t, float32(20+4+30), r.SpanExtent(Span{Start: 1, Count: 9}), "span past the end is shortened")
	assert.Equal(t, 2, r.Clamp(99))
	assert.Equal(t, 0, r.Clamp(-3))
	assert.Equal(t, float32(48), r.Origin(5))
	assert.Equal(t, float32(10+4+20+4+30), r.Total())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Span{Start: 0, Count: 1}, Normalize(Span{Start: -2, Count: 0}, 4))
	assert.Equal(t, Span{Start: 3, Count: 1}, Normalize(Span{Start: 10, Count: 2}, 4))
	assert.Equal(t, Span{}, Normalize(Span{Start: 1, Count: 1}, 0))
}
