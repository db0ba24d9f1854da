package track

// Span is a contiguous run of tracks: Count tracks starting at Start.
type Span struct {
	Start int
	Count int
}

// Contribution is the intrinsic extent of one piece of content placed on a span.
type Contribution struct {
	Span   Span
	Extent float32
}

// Result holds the resolved extents of a track list.
type Result struct {
	Extents []float32
	Origins []float32
	Spacing float32
}

// defaultTracks is used when a container declares no tracks: a single
// proportional track that fills the available extent.
var defaultTracks = []Track{Star()}

// Solve resolves tracks against an available extent.
//
// Resolution order:
//  1. Absolute and Bound tracks take their fixed or externally supplied extent.
//  2. Auto tracks take the largest extent among contributions confined to them.
//     A contribution spanning several tracks that exceeds their current sum
//     spreads the excess equally across the Auto tracks it covers.
//  3. The remaining extent is split among Star tracks by weight. A negative
//     remainder resolves every Star track to 0.
//
// When bounded is false the available extent is the "as much as you want"
// sentinel and must not be distributed; Star tracks then size like Auto tracks.
// spacing is inserted between adjacent tracks.
func Solve(tracks []Track, available float32, bounded bool, spacing float32, contributions []Contribution) Result {
	if len(tracks) == 0 {
		tracks = defaultTracks
	}
	if spacing < 0 {
		spacing = 0
	}

	n := len(tracks)
	extents := make([]float32, n)

	contentSized := func(t Track) bool {
		return t.Kind == KindAuto || (t.Kind == KindStar && !bounded)
	}

	// 1. Absolute and Bound
	for i, t := range tracks {
		switch t.Kind {
		case KindAbsolute:
			extents[i] = t.clampExtent(t.Value)
		case KindBound:
			var v float32
			if t.Provider != nil {
				v = t.Provider()
			}
			extents[i] = t.clampExtent(v)
		}
	}

	// 2. Auto, single-track contributions first
	for _, c := range contributions {
		s := Normalize(c.Span, n)
		if s.Count != 1 || !contentSized(tracks[s.Start]) {
			continue
		}
		if c.Extent > extents[s.Start] {
			extents[s.Start] = c.Extent
		}
	}
	for i, t := range tracks {
		if contentSized(t) {
			extents[i] = t.clampExtent(extents[i])
		}
	}

	// 2b. Spanning contributions add their excess to the Auto tracks they cover.
	// Spans that cover a bounded Star track are skipped: the star absorbs it.
	for _, c := range contributions {
		s := Normalize(c.Span, n)
		if s.Count < 2 {
			continue
		}
		var autos []int
		coversStar := false
		sum := spacing * float32(s.Count-1)
		for i := s.Start; i < s.Start+s.Count; i++ {
			sum += extents[i]
			if contentSized(tracks[i]) {
				autos = append(autos, i)
			} else if tracks[i].Kind == KindStar {
				coversStar = true
			}
		}
		if len(autos) == 0 || coversStar || c.Extent <= sum {
			continue
		}
		share := (c.Extent - sum) / float32(len(autos))
		for _, i := range autos {
			extents[i] = tracks[i].clampExtent(extents[i] + share)
		}
	}

	// 3. Star
	if bounded {
		distributeStars(tracks, extents, available, spacing)
	}

	return newResult(extents, spacing)
}

// distributeStars splits what is left of available among the star tracks.
// Stars clamped by their min/max are fixed at the clamp and the remainder is
// redistributed among the others, so the star extents still sum to the
// remaining space whenever no clamp prevents it.
func distributeStars(tracks []Track, extents []float32, available, spacing float32) {
	remaining := available - spacing*float32(len(tracks)-1)
	var stars []int
	for i, t := range tracks {
		if t.Kind == KindStar {
			stars = append(stars, i)
			continue
		}
		remaining -= extents[i]
	}
	if len(stars) == 0 {
		return
	}

	resolved := make(map[int]bool, len(stars))
	for {
		var weights float32
		for _, i := range stars {
			if !resolved[i] && tracks[i].Value > 0 {
				weights += tracks[i].Value
			}
		}

		if remaining <= 0 || weights <= 0 {
			for _, i := range stars {
				if !resolved[i] {
					extents[i] = tracks[i].clampExtent(0)
				}
			}
			return
		}

		clamped := false
		for _, i := range stars {
			if resolved[i] {
				continue
			}
			w := tracks[i].Value
			if w < 0 {
				w = 0
			}
			raw := remaining * (w / weights)
			if c := tracks[i].clampExtent(raw); c != raw {
				extents[i] = c
				remaining -= c
				resolved[i] = true
				clamped = true
			}
		}
		if clamped {
			continue
		}

		for _, i := range stars {
			if resolved[i] {
				continue
			}
			w := tracks[i].Value
			if w < 0 {
				w = 0
			}
			extents[i] = remaining * (w / weights)
		}
		return
	}
}

func newResult(extents []float32, spacing float32) Result {
	origins := make([]float32, len(extents))
	var pos float32
	for i, e := range extents {
		origins[i] = pos
		pos += e + spacing
	}
	return Result{Extents: extents, Origins: origins, Spacing: spacing}
}

// Normalize clamps a span onto n tracks. Out-of-range starts are moved to the
// nearest valid track, counts below 1 become 1, and spans running past the
// last track are shortened.
func Normalize(s Span, n int) Span {
	if n <= 0 {
		return Span{}
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.Start > n-1 {
		s.Start = n - 1
	}
	if s.Count < 1 {
		s.Count = 1
	}
	if s.Start+s.Count > n {
		s.Count = n - s.Start
	}
	return s
}

// Len returns the number of resolved tracks.
func (r Result) Len() int {
	return len(r.Extents)
}

// Clamp maps any index onto a valid track index.
func (r Result) Clamp(i int) int {
	if len(r.Extents) == 0 || i < 0 {
		return 0
	}
	if i >= len(r.Extents) {
		return len(r.Extents) - 1
	}
	return i
}

// Extent returns the extent of track i (clamped).
func (r Result) Extent(i int) float32 {
	if len(r.Extents) == 0 {
		return 0
	}
	return r.Extents[r.Clamp(i)]
}

// Origin returns the start offset of track i (clamped).
func (r Result) Origin(i int) float32 {
	if len(r.Origins) == 0 {
		return 0
	}
	return r.Origins[r.Clamp(i)]
}

// SpanExtent returns the summed extent of the tracks covered by s, including
// the spacing between them.
func (r Result) SpanExtent(s Span) float32 {
	s = Normalize(s, len(r.Extents))
	if len(r.Extents) == 0 {
		return 0
	}
	total := r.Spacing * float32(s.Count-1)
	for i := s.Start; i < s.Start+s.Count; i++ {
		total += r.Extents[i]
	}
	return total
}

// Total returns the extent of all tracks plus spacing.
func (r Result) Total() float32 {
	n := len(r.Extents)
	if n == 0 {
		return 0
	}
	return r.Origins[n-1] + r.Extents[n-1]
}
