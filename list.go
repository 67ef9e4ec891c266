package conslist

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly-linked list accessed from its head.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	borrow borrowState
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns the list built by calling Cons with each item in turn, so the
// last item ends up at the head.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	for _, item := range items {
		l.Cons(item)
	}
	return l
}

// FromSeq builds a list whose head-to-tail order matches the order of seq.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	acc := New[T]()
	for v := range seq {
		acc.Cons(v)
	}
	return acc.Reverse()
}

// FromSlice builds a list holding the elements of s in the same order.
func FromSlice[T any](s []T) *List[T] {
	return FromSeq(slices.Values(s))
}

// Cons prepends item as the new head.
func (l *List[T]) Cons(item T) {
	if l == nil {
		panic("conslist: Cons on nil list")
	}
	l.mustNotBeBorrowed("Cons")
	// Detach the current head, link it behind the new node, reattach.
	rest := l.head
	l.head = &node[T]{val: item, next: rest}
}

// Pop removes the head and returns its value. It reports false when the
// list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	l.mustNotBeBorrowed("Pop")
	return l.pop()
}

func (l *List[T]) pop() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.head, n.next = n.next, nil
	return n.val, true
}

// Peek returns the head value without removing it.
func (l *List[T]) Peek() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// PeekMut returns a pointer to the head value. Writes through it are seen by
// later calls to Peek and Pop.
func (l *List[T]) PeekMut() (*T, bool) {
	if l.IsEmpty() {
		return nil, false
	}
	l.mustNotBeBorrowed("PeekMut")
	return &l.head.val, true
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Len counts the elements by walking the whole chain.
func (l *List[T]) Len() int {
	n := 0
	for cur := l.first(); cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Reverse moves every element of l, in reverse order, into a new list.
// l is left empty.
func (l *List[T]) Reverse() *List[T] {
	out := New[T]()
	if l == nil {
		return out
	}
	l.mustNotBeBorrowed("Reverse")
	for v, ok := l.pop(); ok; v, ok = l.pop() {
		out.Cons(v)
	}
	return out
}

// Clear releases every node of the list, head first.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	l.mustNotBeBorrowed("Clear")
	release(l.head)
	l.head = nil
}

// release unlinks a chain one node at a time.
func release[T any](cur *node[T]) {
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// Slice returns the elements in head-to-tail order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for cur := l.first(); cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}
	return out
}

// String formats the list like a slice, head first: [3 2 1].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for cur := l.first(); cur != nil; cur = cur.next {
		if cur != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, cur.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil list equals an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	x, y := a.first(), b.first()
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return x == nil && y == nil
}

func (l *List[T]) first() *node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[T]) mustNotBeBorrowed(op string) {
	if l.borrow.live() {
		borrowPanic(op, l.borrow)
	}
}
