package prompt

// FocusRing is an ordered set of focusable component names with the index
// of the focused one. The host owns it and cycles it on Tab, which the
// prompt itself ignores.
type FocusRing struct {
	Items []string
	Index int
}

func NewFocusRing(items ...string) FocusRing {
	return FocusRing{Items: items}
}

// Focused returns the focused name, or "" for an empty ring.
func (r FocusRing) Focused() string {
	if len(r.Items) == 0 {
		return ""
	}
	return r.Items[r.normalized()]
}

func (r FocusRing) Is(name string) bool { return len(r.Items) > 0 && r.Focused() == name }

func (r FocusRing) Next() FocusRing { return r.step(1) }

func (r FocusRing) Prev() FocusRing { return r.step(-1) }

func (r FocusRing) step(delta int) FocusRing {
	if len(r.Items) == 0 {
		return r
	}
	r.Index = r.normalized() + delta
	r.Index = r.normalized()
	return r
}

func (r FocusRing) normalized() int {
	n := len(r.Items)
	return ((r.Index % n) + n) % n
}
