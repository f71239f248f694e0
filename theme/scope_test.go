package theme

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func namedTheme(hex string) Theme {
	t := Default()
	t.Palette.Primary.Main = lipgloss.Color(hex)
	return t
}

func TestScopeLookup(t *testing.T) {
	t.Run("unbound root returns default", func(t *testing.T) {
		root := NewScope()
		if got := root.Theme(); got != Default() {
			t.Errorf("Expected default theme, got %+v", got)
		}
	})

	t.Run("nil scope returns default", func(t *testing.T) {
		var s *Scope
		if got := s.Theme(); got != Default() {
			t.Errorf("Expected default theme from nil scope, got %+v", got)
		}
	})

	t.Run("binding visible to descendants", func(t *testing.T) {
		themed := namedTheme("#111111")
		child := NewScope().With(themed)
		grandchild := child.With(Default()).With(namedTheme("#222222"))

		if child.Theme() != themed {
			t.Error("Child does not see its own binding")
		}
		if grandchild.Theme() == themed {
			t.Error("Grandchild should see the nearest binding, not the outermost")
		}
	})
}

func TestScopeShadowing(t *testing.T) {
	themeA := namedTheme("#AAAAAA")
	themeB := namedTheme("#BBBBBB")

	outer := NewScope().With(themeA)
	inner := outer.With(themeB)
	siblingOfInner := outer.With(Default())

	if outer.Theme() != themeA {
		t.Error("Outer scope lost theme A")
	}
	if inner.Theme() != themeB {
		t.Error("Inner scope does not observe theme B")
	}
	if inner.With(Default()).Theme() != Default() {
		t.Error("Nested default binding should shadow theme B")
	}
	if siblingOfInner.Theme() != Default() {
		t.Error("Sibling binding should shadow theme A for its own subtree")
	}
}

func TestIndependentScopeTrees(t *testing.T) {
	themeA := namedTheme("#AAAAAA")
	themeB := namedTheme("#BBBBBB")

	window1 := NewScope().With(themeA)
	window2 := NewScope().With(themeB)

	if window1.Theme() != themeA || window2.Theme() != themeB {
		t.Error("Independent trees should carry their own themes")
	}
}

func TestContextCarrier(t *testing.T) {
	t.Run("missing value returns default", func(t *testing.T) {
		if FromContext(context.Background()) != Default() {
			t.Error("Expected default theme from bare context")
		}
	})

	t.Run("nested values shadow", func(t *testing.T) {
		themeA := namedTheme("#AAAAAA")
		themeB := namedTheme("#BBBBBB")

		ctx := NewContext(context.Background(), themeA)
		nested := NewContext(ctx, themeB)

		if FromContext(ctx) != themeA {
			t.Error("Outer context lost theme A")
		}
		if FromContext(nested) != themeB {
			t.Error("Nested context does not observe theme B")
		}
	})
}
