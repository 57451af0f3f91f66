package samara

import "testing"

func BenchmarkMemo_Get_Clean(b *testing.B) {
	count := NewSignal(42)
	m := NewMemo(func() int { return count.Get() * 2 })
	_ = m.Get() // prime

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Get()
	}
}

func BenchmarkMemo_Get_Dirty(b *testing.B) {
	count := NewSignal(0)
	m := NewMemo(func() int { return count.Get() * 2 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
		_ = m.Get()
	}
}

func BenchmarkMemo_MultipleDeps(b *testing.B) {
	a := NewSignal(1)
	bSig := NewSignal(2)
	c := NewSignal(3)
	m := NewMemo(func() int { return a.Get() + bSig.Get() + c.Get() })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Set(i)
		_ = m.Get()
	}
}
