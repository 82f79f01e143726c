package router

// History is a back stack of resolved routes. It starts at Home.
type History struct {
	stack []Match
}

// NewHistory returns a history positioned at start
func NewHistory(start string) *History {
	return &History{stack: []Match{Resolve(start)}}
}

// Current returns the top of the stack
func (h *History) Current() Match {
	return h.stack[len(h.stack)-1]
}

// Push resolves path and navigates to it. Pushing the current path is a no-op.
func (h *History) Push(path string) Match {
	m := Resolve(path)
	if m.Path == h.Current().Path {
		return m
	}
	h.stack = append(h.stack, m)
	return m
}

// Replace swaps the top of the stack, used for top-level tab switches
func (h *History) Replace(path string) Match {
	m := Resolve(path)
	h.stack[len(h.stack)-1] = m
	return m
}

// Back pops one entry. Returns false when already at the root.
func (h *History) Back() (Match, bool) {
	if len(h.stack) <= 1 {
		return h.Current(), false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return h.Current(), true
}

// Depth is the number of entries on the stack
func (h *History) Depth() int {
	return len(h.stack)
}
