package cache

import "testing"

func BenchmarkLRUGet(b *testing.B) {
	c := NewLRU[[2]rune, float32](1 << 16)
	for i := range 100 {
		c.Put([2]rune{rune(i), rune(i + 1)}, float32(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get([2]rune{50, 51})
	}
}

func BenchmarkLRUPutEvict(b *testing.B) {
	c := NewLRU[[2]rune, float32](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put([2]rune{rune(i), rune(i >> 8)}, 1)
	}
}
