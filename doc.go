// Package conslist provides a generic singly-linked list with stack discipline.
//
// A List is reached only through its head: Cons prepends, Pop removes, Peek and
// PeekMut look at the first element. There is no indexing and no tail pointer.
//
// # Example Usage
//
//	l := conslist.New[int]()
//	l.Cons(1)
//	l.Cons(2)
//	l.Cons(3)
//	v, _ := l.Pop() // 3
//	data, _ := json.Marshal(l) // [2,1]
//
// # Views
//
// Three iteration views exist, one per access mode:
//   - IntoIter owns the chain and pops it as it goes
//   - Iter walks the chain and yields copies, leaving the list unchanged
//   - IterMut walks the chain and yields pointers into it
//
// Drain, All and AllMut wrap them for use with range.
//
// A List tracks its live views. Iter may be shared, IterMut is exclusive, and
// no structural change (Cons, Pop, PeekMut, Reverse, Clear, decoding) is
// allowed while any view is live. Violations panic with an error wrapping
// ErrBorrowed. Views release the list when they run out or are closed.
//
// # Serialization
//
// A list is encoded as an array of its elements in head-to-tail order, for
// both encoding/json and gopkg.in/yaml.v3. Decoding conses each element in the
// order it is read and reverses once at the end.
//
// A List is not safe for concurrent use.
package conslist
