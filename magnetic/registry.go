package magnetic

// Registry is the stack of elements the pointer is currently inside. Enter
// and Leave are paired per element, so overlapping elements cannot clear
// each other's state: magnetic mode stays on until every one is left.
type Registry struct {
	stack []*Behavior
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Enter pushes b. Entering twice is a no-op.
func (r *Registry) Enter(b *Behavior) {
	for _, e := range r.stack {
		if e == b {
			return
		}
	}
	r.stack = append(r.stack, b)
}

// Leave removes b wherever it sits in the stack.
func (r *Registry) Leave(b *Behavior) {
	for i, e := range r.stack {
		if e == b {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
}

// Magnetic reports whether the pointer is inside any element.
func (r *Registry) Magnetic() bool {
	return len(r.stack) > 0
}

func (r *Registry) Depth() int {
	return len(r.stack)
}

// Top returns the most recently entered element.
func (r *Registry) Top() (*Behavior, bool) {
	if len(r.stack) == 0 {
		return nil, false
	}
	return r.stack[len(r.stack)-1], true
}
