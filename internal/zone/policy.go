package zone

// Strategy selects how the resize engine transforms the parts of a zone.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyFrame
	StrategyUniform
)

func (s Strategy) String() string {
	switch s {
	case StrategyFrame:
		return "frame"
	case StrategyUniform:
		return "uniform"
	default:
		return "none"
	}
}

// Policy is the resize/material behaviour shared by every part of a zone.
type Policy struct {
	Strategy         Strategy
	AllowResize      bool
	AllowColorChange bool
}

var policies = map[Kind]Policy{
	Frame:       {Strategy: StrategyFrame, AllowResize: true, AllowColorChange: true},
	FrameInside: {Strategy: StrategyFrame, AllowResize: true, AllowColorChange: true},
	Outside:     {Strategy: StrategyFrame, AllowResize: true, AllowColorChange: true},
	Inside:      {Strategy: StrategyFrame, AllowResize: true, AllowColorChange: true},
	Glass:       {Strategy: StrategyUniform, AllowResize: true, AllowColorChange: false},
	Misc:        {Strategy: StrategyNone, AllowResize: false, AllowColorChange: false},
}

// PolicyFor returns the policy of k. Unknown kinds get the Misc policy.
func PolicyFor(k Kind) Policy {
	if p, ok := policies[k]; ok {
		return p
	}
	return policies[Misc]
}
