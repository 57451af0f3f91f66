package samara

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("plain computed always propagates", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func(prev int, hasPrev bool) int {
			log = append(log, "doubling")
			return count.Get() * 2
		})

		NewEffect(func() func() {
			log = append(log, "effect")
			double.Get()
			return nil
		})

		count.Set(1) // same value, no change — double never recomputes
		count.Set(10)

		assert.Equal(t, []string{
			"effect",
			"doubling",
			"doubling",
			"effect",
		}, log)
	})
}

func TestMemo(t *testing.T) {
	t.Run("derives value from signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewMemo(func() int {
			log = append(log, "doubling")
			return count.Get() * 2
		})
		plustwo := NewMemo(func() int {
			log = append(log, "adding")
			return double.Get() + 2
		})

		assert.Equal(t, 1, count.Get())
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 4, plustwo.Get())

		count.Set(10)
		assert.Equal(t, 10, count.Get())
		assert.Equal(t, 20, double.Get())
		assert.Equal(t, 22, plustwo.Get())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("does not propagate when value unchanged", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		a := NewMemo(func() int {
			log = append(log, "running a")
			return count.Get() * 0 // always returns 0
		})
		b := NewMemo(func() int {
			log = append(log, "running b")
			return a.Get() + 1
		})

		a.Get()
		b.Get()

		count.Set(10)
		b.Get() // recomputes a, but a's value is still 0, so b is not recomputed

		assert.Equal(t, []string{
			"running a",
			"running b",
			"running a",
		}, log)
	})

	// S3 from the scenario catalogue: a memo whose own dependency never
	// changes value must never itself recompute, even after an upstream
	// signal write.
	t.Run("scenario S3 memo bailout", func(t *testing.T) {
		cCount := 0

		a := NewSignal(0)
		b := NewMemo(func() string { return "foo" })
		c := NewMemo(func() string {
			cCount++
			_ = a.Get()
			return b.Get()
		})

		c.Get()
		a.Set(1)
		c.Get()

		assert.Equal(t, 1, cCount)
	})

	// S1 from the scenario catalogue: a diamond of memos evaluates its
	// join node exactly once per distinct upstream value, never once per
	// incoming edge.
	t.Run("scenario S1 diamond", func(t *testing.T) {
		dEvals := 0

		a := NewSignal("a")
		b := NewMemo(func() string { return a.Get() })
		c := NewMemo(func() string { return a.Get() })
		d := NewMemo(func() string {
			dEvals++
			return b.Get() + " " + c.Get()
		})

		assert.Equal(t, "a a", d.Get())
		assert.Equal(t, 1, dEvals)

		a.Set("aa")
		assert.Equal(t, "aa aa", d.Get())
		assert.Equal(t, 2, dEvals)
	})
}
