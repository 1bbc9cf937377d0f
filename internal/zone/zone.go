package zone

import "strings"

// Kind is the functional zone a part belongs to. It is assigned once at load time from the
// part name and never changes for the lifetime of the loaded model.
type Kind int

const (
	Misc Kind = iota // unmatched names; never resized or recoloured
	Frame
	FrameInside
	Glass
	Inside
	Outside
)

// Kinds lists every zone in classification-independent, stable order.
var Kinds = []Kind{Frame, FrameInside, Glass, Inside, Outside, Misc}

func (k Kind) String() string {
	switch k {
	case Frame:
		return "frame"
	case FrameInside:
		return "frameInside"
	case Glass:
		return "glass"
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "misc"
	}
}

// Parse returns the zone whose String() equals name (case-insensitive).
func Parse(name string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return Misc, false
}

// rule is one substring test of the classifier. All substrings must be present.
type rule struct {
	all  []string
	kind Kind
}

// rules are evaluated in order; the first match wins. "outside" + "frame" resolves to Outside
// before the plain "frame" rule can claim it.
var rules = []rule{
	{all: []string{"outside", "frame"}, kind: Outside},
	{all: []string{"frame", "inside"}, kind: FrameInside},
	{all: []string{"frame"}, kind: Frame},
	{all: []string{"glass"}, kind: Glass},
	{all: []string{"inside"}, kind: Inside},
	{all: []string{"outside"}, kind: Outside},
}

// Classify maps a part name to its zone. It is a pure function of the name; unknown names
// fall into Misc so a malformed asset still loads.
func Classify(name string) Kind {
	lower := strings.ToLower(name)
	for _, r := range rules {
		if containsAll(lower, r.all) {
			return r.kind
		}
	}
	return Misc
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
