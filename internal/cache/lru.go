package cache

// lruNode is a node in a doubly-linked LRU list.
// The node stores its key for O(1) deletion from the parent map.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList is a doubly-linked list ordered by use.
// The head is the most recently used, tail is least recently used.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

func (l *lruList[K, V]) pushFront(node *lruNode[K, V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

func (l *lruList[K, V]) moveToFront(node *lruNode[K, V]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.pushFront(node)
}

// unlink removes a node from the list and clears its pointers.
func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}

// LRU is a map holding at most Capacity entries. Adding an entry to a full
// LRU evicts the least recently used one.
type LRU[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	list     lruList[K, V]
	capacity int
	evicted  uint64
}

// NewLRU creates an LRU holding up to capacity entries.
// A capacity of 0 or less means unlimited.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.moveToFront(node)
	return node.value, true
}

// Put stores value for key, evicting the oldest entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.list.moveToFront(node)
		return
	}
	if c.capacity > 0 && c.list.len >= c.capacity {
		c.evictOldest()
	}
	node := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = node
	c.list.pushFront(node)
}

// Delete removes key. It reports whether the key was present.
func (c *LRU[K, V]) Delete(key K) bool {
	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.list.unlink(node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries.
func (c *LRU[K, V]) Clear() {
	clear(c.entries)
	c.list = lruList[K, V]{}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int { return c.list.len }

// Capacity returns the maximum number of entries, 0 when unlimited.
func (c *LRU[K, V]) Capacity() int { return max(c.capacity, 0) }

// Evicted returns how many entries were dropped to make room.
func (c *LRU[K, V]) Evicted() uint64 { return c.evicted }

func (c *LRU[K, V]) evictOldest() {
	node := c.list.tail
	if node == nil {
		return
	}
	c.list.unlink(node)
	delete(c.entries, node.key)
	c.evicted++
}
