// Package linkedlist provides a minimal singly linked list: O(1) insertion at
// the head, O(n) traversal and O(n) search.
//
// Ownership
//
//	A List owns its head Node; each Node owns its successor through Next.
//	The chain is acyclic and has no back links. Dropping the List (or calling
//	Clear) releases the whole chain to the garbage collector.
//
// Concurrency
//
//	A List is not safe for concurrent mutation. Guard it externally if shared.
//
// Complexity
//
//   - InsertHead: O(1)
//   - Traverse, Find, All: O(n)
//   - Len, Head, Clear: O(1)
package linkedlist
