package tagmerge

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_State(t *testing.T) {
	noop := RuleFunc(func(*Context, *Tag) error { return nil })

	t.Run("should match rule names case-insensitively", func(t *testing.T) {
		s := NewState()
		s.AddRule("Write", noop)
		for _, n := range []string{"write", "Write", "WRITE"} {
			assert.True(t, s.ShouldProcessTag(n), n)
		}
		assert.False(t, s.ShouldProcessTag("other"))
	})

	t.Run("should let the last registration win", func(t *testing.T) {
		s := NewState()
		var called string
		s.AddRule("x", RuleFunc(func(*Context, *Tag) error { called = "first"; return nil }))
		s.AddRule("X", RuleFunc(func(*Context, *Tag) error { called = "second"; return nil }))
		require.NoError(t, s.Rule("x").Process(nil, &Tag{Name: "x"}))
		assert.Equal(t, "second", called)
	})

	t.Run("should intercept every tag when asked to", func(t *testing.T) {
		s := NewState(InterceptAll())
		assert.True(t, s.ShouldProcessTag("anything"))
	})

	t.Run("should fall back to the pass-through rule", func(t *testing.T) {
		s := NewState(InterceptAll())
		root := &Buffer{}
		ctx := newContext(root, s, zerolog.Nop())
		require.NoError(t, s.Rule("b").Process(ctx, &Tag{Name: "b", Raw: `<b class="x">`}))
		assert.Equal(t, `<b class="x">`, root.String())
	})

	t.Run("should name states", func(t *testing.T) {
		assert.Equal(t, "script", NewState(Named("script")).String())
		assert.Equal(t, "unnamed", NewState().String())
	})
}
