package samara

import "testing"

func BenchmarkEffect_Create(b *testing.B) {
	count := NewSignal(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := NewEffect(func() func() {
			_ = count.Get()
			return nil
		})
		e.Dispose()
	}
}

func BenchmarkEffect_CreateMultipleDeps(b *testing.B) {
	s1 := NewSignal(0)
	s2 := NewSignal("test")
	s3 := NewSignal(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := NewEffect(func() func() {
			_ = s1.Get()
			_ = s2.Get()
			_ = s3.Get()
			return nil
		})
		e.Dispose()
	}
}

func BenchmarkEffect_Rerun(b *testing.B) {
	count := NewSignal(0)
	NewEffect(func() func() {
		_ = count.Get()
		return nil
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}
