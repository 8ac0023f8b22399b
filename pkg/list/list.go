/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of clist.
 *
 * clist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * clist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package list

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Position selects an end of a List.
type Position uint8

const (
	Start Position = iota
	End
)

func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// Number is the set of types Length can count with.
type Number interface {
	constraints.Integer | constraints.Float
}

// List is a doubly linked list. The zero value is an empty list.
// List is not safe for concurrent use.
type List[V any] struct {
	front, back *Node[V]

	// epoch is increased every time a node is linked into or
	// removed from the list. Iterators created before that are stale.
	epoch uint64
}

func New[V any]() *List[V] {
	return &List[V]{}
}

// NewFrom returns a deep copy of src.
func NewFrom[V any](src *List[V]) *List[V] {
	l := New[V]()
	for n := src.front; n != nil; n = n.next {
		l.Append(n.Value)
	}
	return l
}

// Clone returns a deep copy of l. The copy shares no node with l.
func (l *List[V]) Clone() *List[V] {
	return NewFrom(l)
}

func (l *List[V]) Front() *Node[V] {
	return l.front
}

func (l *List[V]) Back() *Node[V] {
	return l.back
}

func (l *List[V]) IsEmpty() bool {
	return l.front == nil
}

// Insert inserts v at the given end of l.
func (l *List[V]) Insert(v V, pos Position) {
	n := newNode(v)
	l.epoch++
	if l.front == nil {
		l.front = n
		l.back = n
		return
	}
	if pos == Start {
		n.next = l.front
		l.front.prev = n
		l.front = n
		return
	}
	n.prev = l.back
	l.back.next = n
	l.back = n
}

func (l *List[V]) Append(v V) {
	l.Insert(v, End)
}

func (l *List[V]) Prepend(v V) {
	l.Insert(v, Start)
}

// Pop removes the value at the given end of l and returns it.
// It returns ErrEmptyContainer if l is empty.
func (l *List[V]) Pop(pos Position) (V, error) {
	if l.front == nil {
		var zero V
		return zero, ErrEmptyContainer
	}

	var n *Node[V]
	if pos == Start {
		n = l.front
		l.front = n.next
		if l.front == nil {
			l.back = nil
		} else {
			l.front.prev = nil
		}
	} else {
		n = l.back
		l.back = n.prev
		if l.back == nil {
			l.front = nil
		} else {
			l.back.next = nil
		}
	}
	l.epoch++

	v := n.Value
	n.prev, n.next = nil, nil
	return v, nil
}

// Peek returns the value at the given end of l without removing it.
// It returns ErrEmptyContainer if l is empty.
func (l *List[V]) Peek(pos Position) (V, error) {
	if l.front == nil {
		var zero V
		return zero, ErrEmptyContainer
	}
	if pos == Start {
		return l.front.Value, nil
	}
	return l.back.Value, nil
}

// Length counts the nodes of l by walking it. O(n).
func Length[N Number, V any](l *List[V]) N {
	var c N
	for n := l.front; n != nil; n = n.next {
		c++
	}
	return c
}

func (l *List[V]) Len() int {
	return Length[int](l)
}

// Clear releases all nodes of l. l can be reused.
func (l *List[V]) Clear() {
	n := l.front
	for n != nil {
		next := n.next // Save it before the node's links are cleared.
		n.prev, n.next = nil, nil
		n = next
	}
	l.front, l.back = nil, nil
	l.epoch++
}

// Range calls f for each value from front to back until f returns false.
func (l *List[V]) Range(f func(v V) bool) {
	for n := l.front; n != nil; n = n.next {
		if !f(n.Value) {
			return
		}
	}
}

// Values returns all values from front to back.
func (l *List[V]) Values() []V {
	s := make([]V, 0)
	l.Range(func(v V) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Begin returns an iterator at the given end of l.
// If l is empty, the iterator is at a sentinel it cannot leave.
func (l *List[V]) Begin(pos Position) *Iterator[V] {
	n := l.front
	if pos == End {
		n = l.back
	}
	return newIterator(l, n)
}

// End returns an iterator past the last node of l. Stepping back
// from it moves to the last node.
func (l *List[V]) End() *Iterator[V] {
	it := newIterator(l, l.back)
	it.cur.state = pastEnd
	it.origin = it.cur
	return it
}
