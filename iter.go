package conslist

import "iter"

// IntoIter owns a chain of nodes and pops one per call to Next.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the contents of l into a new owning iterator. l is empty
// once IntoIter returns.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	if l == nil {
		return it
	}
	l.mustNotBeBorrowed("IntoIter")
	it.list.head, l.head = l.head, nil
	return it
}

// Next pops the next element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.pop()
}

// Close drops the elements not yet returned.
func (it *IntoIter[T]) Close() {
	release(it.list.head)
	it.list.head = nil
}

// Iter is a shared view yielding copies of the elements. Any number of Iter
// views may be live at once, but none alongside an IterMut.
type Iter[T any] struct {
	cur *node[T]
	src *List[T]
}

// Iter opens a shared view over l. The view holds its borrow until Next
// reports false or Close is called; a view abandoned part way keeps l
// borrowed, so callers that may stop early should defer Close or range over
// All instead.
func (l *List[T]) Iter() *Iter[T] {
	if l == nil {
		return &Iter[T]{}
	}
	if l.borrow.exclusive {
		borrowPanic("Iter", l.borrow)
	}
	l.borrow.shared++
	return &Iter[T]{cur: l.head, src: l}
}

// Next returns the next element. The view is released when Next reports false.
func (it *Iter[T]) Next() (T, bool) {
	n := it.cur
	if n == nil {
		it.Close()
		var zero T
		return zero, false
	}
	it.cur = n.next
	return n.val, true
}

// Close releases the view. Calling it more than once is harmless.
func (it *Iter[T]) Close() {
	if it.src != nil {
		it.src.borrow.shared--
		it.src = nil
	}
	it.cur = nil
}

// IterMut is an exclusive view yielding pointers to the elements.
type IterMut[T any] struct {
	cur *node[T]
	src *List[T]
}

// IterMut opens an exclusive view over l. It panics if any other view over l
// is live. Until Next reports false or Close is called, l stays locked
// against every other view and all mutation; prefer AllMut unless the view is
// always run to the end or closed with defer.
func (l *List[T]) IterMut() *IterMut[T] {
	if l == nil {
		return &IterMut[T]{}
	}
	l.mustNotBeBorrowed("IterMut")
	l.borrow.exclusive = true
	return &IterMut[T]{cur: l.head, src: l}
}

// Next returns a pointer to the next element. The view is released when Next
// reports false.
func (it *IterMut[T]) Next() (*T, bool) {
	n := it.cur
	if n == nil {
		it.Close()
		return nil, false
	}
	it.cur = n.next
	return &n.val, true
}

// Close releases the view. Calling it more than once is harmless.
func (it *IterMut[T]) Close() {
	if it.src != nil {
		it.src.borrow.exclusive = false
		it.src = nil
	}
	it.cur = nil
}

// Drain returns a sequence that empties l, yielding its elements head first.
// Elements left over after an early break are dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.Close()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a sequence over the elements of l, head first. The shared view
// is held for the duration of the range loop.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// AllMut returns a sequence of pointers to the elements of l, head first. The
// exclusive view is held for the duration of the range loop.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		defer it.Close()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
