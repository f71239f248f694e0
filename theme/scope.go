package theme

import "context"

// Scope is a node in a view-composition tree carrying an optional
// theme binding. Components hold the scope for the subtree they render
// in and call Theme to read the nearest enclosing binding.
//
// Scopes are immutable: With allocates a child node and never touches
// its parent, so independent subtrees (two windows, two panes) can
// carry different themes at the same time. There is no global slot.
type Scope struct {
	parent *Scope
	theme  *Theme
}

// NewScope returns a root scope with no binding. Theme lookups against
// it yield Default().
func NewScope() *Scope {
	return &Scope{}
}

// With returns a child scope binding t for that subtree. Nested calls
// shadow outer bindings.
func (s *Scope) With(t Theme) *Scope {
	return &Scope{parent: s, theme: &t}
}

// Theme returns the nearest binding walking toward the root, or
// Default() when no ancestor bound one. A nil scope behaves like an
// unbound root, so components may render before being wired into a
// tree.
func (s *Scope) Theme() Theme {
	for n := s; n != nil; n = n.parent {
		if n.theme != nil {
			return *n.theme
		}
	}
	return Default()
}

type contextKey struct{}

// NewContext returns a context carrying t, for code that already
// threads a context.Context through composition instead of a Scope.
// Nested calls shadow outer values, mirroring Scope semantics.
func NewContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme carried by ctx, or Default() when none
// was attached.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Default()
}
