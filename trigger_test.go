package samara

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrigger(t *testing.T) {
	t.Run("forces other subscribers to recheck without its own tracking surviving", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() func() {
			log = append(log, "effect")
			count.Get()
			return nil
		})

		// Trigger reads count once to collect it as a dependency, then
		// immediately unlinks itself — the effect above is count's only
		// surviving subscriber, and gets forced through a recheck even
		// though count's value never changed.
		Trigger(func() {
			count.Get()
		})

		assert.Equal(t, []string{"effect", "effect"}, log)

		// the throwaway node left no trace: a real write still only
		// notifies the one remaining subscriber once.
		count.Set(1)
		assert.Equal(t, []string{"effect", "effect", "effect"}, log)
	})

	t.Run("reading nothing is a no-op", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() func() {
			log = append(log, "effect")
			count.Get()
			return nil
		})

		Trigger(func() {})

		assert.Equal(t, []string{"effect"}, log)
	})

	t.Run("inside a batch defers its own flush", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() func() {
			log = append(log, "effect")
			count.Get()
			return nil
		})

		Batch(func() {
			Trigger(func() { count.Get() })
			log = append(log, "still batched")
		})

		assert.Equal(t, []string{"effect", "still batched", "effect"}, log)
	})
}
