package samara

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
			return func() { log = append(log, "cleanup") }
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple signals", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		double := NewSignal(0)

		NewEffect(func() func() {
			log = append(log, fmt.Sprintf("count %d", count.Get()))
			return func() { log = append(log, "count cleanup") }
		})

		NewEffect(func() func() {
			log = append(log, fmt.Sprintf("double %d", double.Get()))
			return func() { log = append(log, "double cleanup") }
		})

		Batch(func() {
			count.Set(10)
			double.Set(count.Get() * 2)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"count 0",
			"double 0",
			"updated",
			"count cleanup",
			"count 10",
			"double cleanup",
			"double 20",
		}, log)
	})

	t.Run("nested batches", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
			return func() { log = append(log, "cleanup") }
		})

		Batch(func() {
			count.Set(10)
			Batch(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	// S2 from the scenario catalogue: two writes inside one batch settle
	// to a single effect re-run carrying the final value only.
	t.Run("scenario S2 batched writes", func(t *testing.T) {
		observed := []int{}

		s := NewSignal(1)
		NewEffect(func() func() {
			observed = append(observed, s.Get())
			return nil
		})

		Batch(func() {
			s.Set(2)
			s.Set(3)
		})

		assert.Equal(t, []int{1, 3}, observed)
	})

	t.Run("InBatch reports batch state", func(t *testing.T) {
		assert.False(t, InBatch())
		Batch(func() {
			assert.True(t, InBatch())
			Batch(func() {
				assert.True(t, InBatch())
			})
			assert.True(t, InBatch())
		})
		assert.False(t, InBatch())
	})
}
