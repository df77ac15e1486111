package linkedlist

import "iter"

// NotFound is returned by Find when no node holds the value.
const NotFound = -1

// Node is one link of the chain.
type Node[T comparable] struct {
	// Value is the payload stored in this node.
	Value T

	// Next is the following node, or nil at the tail.
	Next *Node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *Node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// InsertHead links a new node holding v in front of the current head.
func (l *List[T]) InsertHead(v T) {
	l.head = &Node[T]{Value: v, Next: l.head}
	l.size++
}

// Traverse walks from the head and returns the values in list order.
// An empty list yields an empty, non-nil slice.
func (l *List[T]) Traverse() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.Next {
		out = append(out, cur.Value)
	}

	return out
}

// Find returns the zero-based position of the first node holding v,
// or NotFound.
func (l *List[T]) Find(v T) int {
	pos := 0
	for cur := l.head; cur != nil; cur = cur.Next {
		if cur.Value == v {
			return pos
		}
		pos++
	}

	return NotFound
}

// All yields (position, value) pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		pos := 0
		for cur := l.head; cur != nil; cur = cur.Next {
			if !yield(pos, cur.Value) {
				return
			}
			pos++
		}
	}
}

// Head returns the first node, or nil for an empty list.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.size
}

// Clear drops the whole chain.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}
