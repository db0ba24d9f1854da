// Package track resolves grid row and column definitions into concrete extents.
//
// A track is sized by one of four kinds: a fixed pixel value (Absolute), a
// proportional weight of the space left over (Star), the largest intrinsic
// extent of the content placed in it (Auto), or a value read from an external
// accessor on every solve (Bound). [Solve] turns an ordered list of tracks
// into a [Result] holding per-track extents and their prefix-sum origins.
package track

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies how a track's extent is determined.
type Kind uint8

const (
	// KindAbsolute uses Value as a fixed extent in pixels.
	KindAbsolute Kind = iota

	// KindStar takes a share of the remaining extent proportional to Value.
	KindStar

	// KindAuto sizes to the largest intrinsic extent of its content.
	KindAuto

	// KindBound reads its extent from Provider on every solve.
	KindBound
)

func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindStar:
		return "star"
	case KindAuto:
		return "auto"
	case KindBound:
		return "bound"
	default:
		return "unknown"
	}
}

// Track is a single row or column definition.
type Track struct {
	Kind  Kind
	Value float32 // Pixels for KindAbsolute, weight for KindStar

	// Provider supplies the extent of a KindBound track. It is called once
	// per solve, so a live value (e.g. a splitter position) is picked up on
	// the next layout pass.
	Provider func() float32

	// Min and Max clamp the resolved extent. Max <= 0 means no maximum.
	Min float32
	Max float32
}

// Px returns an absolute track of v pixels.
func Px(v float32) Track {
	return Track{Kind: KindAbsolute, Value: v}
}

// Stars returns a proportional track with the given weight.
func Stars(weight float32) Track {
	return Track{Kind: KindStar, Value: weight}
}

// Star returns a proportional track with weight 1.
func Star() Track {
	return Stars(1)
}

// Auto returns a content-sized track.
func Auto() Track {
	return Track{Kind: KindAuto}
}

// Bind returns a track whose extent is read from fn on every solve.
func Bind(fn func() float32) Track {
	return Track{Kind: KindBound, Provider: fn}
}

// WithMin returns a copy of t with a minimum extent.
func (t Track) WithMin(v float32) Track {
	t.Min = v
	return t
}

// WithMax returns a copy of t with a maximum extent.
func (t Track) WithMax(v float32) Track {
	t.Max = v
	return t
}

func (t Track) String() string {
	switch t.Kind {
	case KindAbsolute:
		return strconv.FormatFloat(float64(t.Value), 'g', -1, 32)
	case KindStar:
		if t.Value == 1 {
			return "*"
		}
		return strconv.FormatFloat(float64(t.Value), 'g', -1, 32) + "*"
	case KindAuto:
		return "auto"
	case KindBound:
		return "bound"
	default:
		return "?"
	}
}

// clampExtent applies the track's min/max and never returns a negative value.
func (t Track) clampExtent(v float32) float32 {
	if t.Max > 0 && v > t.Max {
		v = t.Max
	}
	if v < t.Min {
		v = t.Min
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ParseTracks parses a comma-separated track list such as "30, *, 2*, auto".
// Plain numbers (optionally suffixed with "px") are absolute tracks, "N*" is
// a star track with weight N, and "auto" is a content-sized track.
func ParseTracks(def string) ([]Track, error) {
	def = strings.TrimSpace(def)
	if def == "" {
		return nil, nil
	}

	parts := strings.Split(def, ",")
	tracks := make([]Track, 0, len(parts))
	for _, part := range parts {
		tok := strings.ToLower(strings.TrimSpace(part))
		switch {
		case tok == "auto":
			tracks = append(tracks, Auto())
		case tok == "*":
			tracks = append(tracks, Star())
		case strings.HasSuffix(tok, "*"):
			w, err := strconv.ParseFloat(strings.TrimSuffix(tok, "*"), 32)
			if err != nil || w < 0 {
				return nil, fmt.Errorf("invalid star track %q", part)
			}
			tracks = append(tracks, Stars(float32(w)))
		default:
			v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 32)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("invalid track %q", part)
			}
			tracks = append(tracks, Px(float32(v)))
		}
	}
	return tracks, nil
}
