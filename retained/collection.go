package retained

// Source is a read-only indexed sequence of items.
type Source interface {
	Len() int
	At(i int) any
}

// Observable is a Source that reports changes.
type Observable interface {
	Source
	Subscribe(fn func(ChangeEvent)) (unsubscribe func())
}

// ChangeKind describes a collection mutation.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeRemove
	ChangeReplace
	ChangeReset
)

// ChangeEvent describes one mutation. Index and Count are meaningless for
// ChangeReset.
type ChangeEvent struct {
	Kind  ChangeKind
	Index int
	Count int
}

// SliceSource adapts a plain slice. It never reports changes; call the
// container's Refresh after mutating the slice.
type SliceSource[T any] []T

func (s SliceSource[T]) Len() int     { return len(s) }
func (s SliceSource[T]) At(i int) any { return s[i] }

// Collection is an observable list of items.
type Collection[T any] struct {
	items       []T
	subscribers map[int]func(ChangeEvent)
	nextSub     int
}

// NewCollection creates a collection holding items.
func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: items}
}

func (c *Collection[T]) Len() int     { return len(c.items) }
func (c *Collection[T]) At(i int) any { return c.items[i] }

// Get returns the typed item at i.
func (c *Collection[T]) Get(i int) T { return c.items[i] }

// Items returns the backing slice. Callers must not modify it.
func (c *Collection[T]) Items() []T { return c.items }

// Subscribe registers fn for change events.
func (c *Collection[T]) Subscribe(fn func(ChangeEvent)) func() {
	if c.subscribers == nil {
		c.subscribers = make(map[int]func(ChangeEvent))
	}
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	return func() { delete(c.subscribers, id) }
}

func (c *Collection[T]) notify(e ChangeEvent) {
	for _, fn := range c.subscribers {
		fn(e)
	}
}

// Append adds items at the end.
func (c *Collection[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	at := len(c.items)
	c.items = append(c.items, items...)
	c.notify(ChangeEvent{Kind: ChangeInsert, Index: at, Count: len(items)})
}

// Insert adds an item at index i (clamped).
func (c *Collection[T]) Insert(i int, item T) {
	if i < 0 {
		i = 0
	}
	if i > len(c.items) {
		i = len(c.items)
	}
	var zero T
	c.items = append(c.items, zero)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = item
	c.notify(ChangeEvent{Kind: ChangeInsert, Index: i, Count: 1})
}

// RemoveAt removes the item at index i. Out-of-range indices are ignored.
func (c *Collection[T]) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notify(ChangeEvent{Kind: ChangeRemove, Index: i, Count: 1})
}

// Set replaces the item at index i. Out-of-range indices are ignored.
func (c *Collection[T]) Set(i int, item T) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items[i] = item
	c.notify(ChangeEvent{Kind: ChangeReplace, Index: i, Count: 1})
}

// Reset replaces the whole content.
func (c *Collection[T]) Reset(items []T) {
	c.items = items
	c.notify(ChangeEvent{Kind: ChangeReset})
}
