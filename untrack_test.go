package samara

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() func() {
			c := Untrack(count.Get)
			log = append(log, fmt.Sprintf("effect %d", c))
			return nil
		})

		count.Set(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("returns fn's result", func(t *testing.T) {
		count := NewSignal(42)
		v := Untrack(func() int { return count.Get() * 2 })
		assert.Equal(t, 84, v)
	})
}
