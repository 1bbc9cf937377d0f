package resize

import "strings"

// Role is the structural position of a part inside a frame, derived from its name.
type Role int

const (
	RoleNone Role = iota
	RoleLeft
	RoleRight
	RoleTop
	RoleBottom
	RoleMullion // interior vertical member
	RoleTransom // interior horizontal member
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleTop:
		return "top"
	case RoleBottom:
		return "bottom"
	case RoleMullion:
		return "mullion"
	case RoleTransom:
		return "transom"
	default:
		return "none"
	}
}

// Vertical reports whether the member runs along the height axis.
func (r Role) Vertical() bool {
	return r == RoleLeft || r == RoleRight || r == RoleMullion
}

// Horizontal reports whether the member runs along the width axis.
func (r Role) Horizontal() bool {
	return r == RoleTop || r == RoleBottom || r == RoleTransom
}

var roleRules = []struct {
	subs []string
	role Role
}{
	{subs: []string{"mid", "mullion", "vert"}, role: RoleMullion},
	{subs: []string{"horiz", "transom", "beam"}, role: RoleTransom},
	{subs: []string{"left"}, role: RoleLeft},
	{subs: []string{"right"}, role: RoleRight},
	{subs: []string{"top"}, role: RoleTop},
	{subs: []string{"bottom"}, role: RoleBottom},
}

// RoleOf classifies a part name. Interior members are matched first so "frame_top_mid1" is a
// mullion section rather than the top edge.
func RoleOf(name string) Role {
	lower := strings.ToLower(name)
	for _, r := range roleRules {
		for _, sub := range r.subs {
			if strings.Contains(lower, sub) {
				return r.role
			}
		}
	}
	return RoleNone
}
