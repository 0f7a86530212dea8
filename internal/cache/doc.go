// Package cache provides a bounded least-recently-used map.
//
//	memo := cache.NewLRU[[2]rune, float32](1 << 16)
//	memo.Put([2]rune{'A', 'V'}, -1.5)
//	v, ok := memo.Get([2]rune{'A', 'V'})
//
// LRU is not safe for concurrent use, like the Font that owns it.
package cache
