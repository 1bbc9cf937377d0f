package viewer

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// OffsetLimits are the allowed per-edge offsets in millimetres.
type OffsetLimits struct {
	LeftVertical  Range
	RightVertical Range
	Horizontal    Range
}

// OffsetLimitsFor derives the offset ranges for an assembly of the given size. The ranges grow
// with every millimetre of width or height beyond 1000.
func OffsetLimitsFor(widthMM, heightMM float64) OffsetLimits {
	dw := max(widthMM-1000, 0)
	dh := max(heightMM-1000, 0)
	return OffsetLimits{
		LeftVertical:  Range{Min: -150, Max: 235 + dw},
		RightVertical: Range{Min: -235 + dw, Max: 150 + 2*dw},
		Horizontal:    Range{Min: 0, Max: 750 + dh},
	}
}
