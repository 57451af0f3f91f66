package samara

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	t.Run("defaults to initial outside any Provide", func(t *testing.T) {
		ctx := NewContext(0)
		assert.Equal(t, 0, ctx.Use())
	})

	t.Run("inherit value from parent scope", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewScope()
		parent.Run(func() {
			ctx.Provide("parent value")

			NewScope().Run(func() {
				assert.Equal(t, "parent value", ctx.Use())
			})
		})

		assert.Equal(t, "default", ctx.Use())
	})

	// S6 from the scenario catalogue: a child's Provide shadows the
	// parent's value for its own descendants only; the parent's own view
	// is unaffected and reappears once the child scope is left behind.
	t.Run("scenario S6 shadowing", func(t *testing.T) {
		type Config struct{ n int }
		ctx := NewContext(Config{})

		parent := NewScope()
		parent.Run(func() {
			ctx.Provide(Config{n: 10})

			child := NewScope()
			child.Run(func() {
				ctx.Provide(Config{n: 20})

				NewScope().Run(func() {
					assert.Equal(t, Config{n: 20}, ctx.Use())
				})
			})

			assert.Equal(t, Config{n: 10}, ctx.Use())
		})
	})
}
