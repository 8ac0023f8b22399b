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

type cursorState uint8

const (
	pastEnd cursorState = iota
	beforeStart
	onNode
)

// cursor is a position in a list. If state is onNode, node is the
// current node. Otherwise, node is the boundary node next to the
// sentinel, which is nil if there was no node to begin with.
// The zero cursor is past the end of an empty list.
type cursor[V any] struct {
	state cursorState
	node  *Node[V]
}

func (c cursor[V]) current() *Node[V] {
	if c.state == onNode {
		return c.node
	}
	return nil
}

func (c cursor[V]) next() (cursor[V], bool) {
	switch c.state {
	case onNode:
		if c.node.next != nil {
			return cursor[V]{state: onNode, node: c.node.next}, true
		}
		return cursor[V]{state: pastEnd, node: c.node}, true
	case beforeStart:
		if c.node != nil {
			return cursor[V]{state: onNode, node: c.node}, true
		}
	}
	return c, false
}

func (c cursor[V]) prev() (cursor[V], bool) {
	switch c.state {
	case onNode:
		if c.node.prev != nil {
			return cursor[V]{state: onNode, node: c.node.prev}, true
		}
		return cursor[V]{state: beforeStart, node: c.node}, true
	case pastEnd:
		if c.node != nil {
			return cursor[V]{state: onNode, node: c.node}, true
		}
	}
	return c, false
}

// Iterator is a bidirectional cursor over a List. Besides the nodes,
// it can be positioned before the first node or past the last node,
// and can step back onto the list from there.
//
// An Iterator becomes stale once a node is inserted into or removed
// from its list. All operations on a stale iterator, except Equal and
// Clone, return ErrStaleIterator.
//
// The zero value is an iterator over an empty list.
type Iterator[V any] struct {
	l      *List[V]
	epoch  uint64
	origin cursor[V]
	cur    cursor[V]
}

func newIterator[V any](l *List[V], n *Node[V]) *Iterator[V] {
	c := cursor[V]{state: onNode, node: n}
	if n == nil {
		c.state = pastEnd
	}
	return &Iterator[V]{
		l:      l,
		epoch:  l.epoch,
		origin: c,
		cur:    c,
	}
}

func (it *Iterator[V]) checkStale() error {
	if it.l != nil && it.epoch != it.l.epoch {
		return ErrStaleIterator
	}
	return nil
}

// Next moves it one step forward. Stepping forward from the last node
// moves it past the end. It returns ErrOutOfRange if it is already
// past the end.
func (it *Iterator[V]) Next() error {
	return it.Advance(1)
}

// Prev moves it one step backward. Stepping backward from the first node
// moves it before the start. It returns ErrOutOfRange if it is already
// before the start.
func (it *Iterator[V]) Prev() error {
	return it.Retreat(1)
}

// Advance moves it n steps forward. If any step is out of range, it
// returns ErrOutOfRange and it is not moved at all.
func (it *Iterator[V]) Advance(n uint64) error {
	return it.move(n, cursor[V].next)
}

// Retreat moves it n steps backward. See Advance.
func (it *Iterator[V]) Retreat(n uint64) error {
	return it.move(n, cursor[V].prev)
}

func (it *Iterator[V]) move(n uint64, step func(cursor[V]) (cursor[V], bool)) error {
	if err := it.checkStale(); err != nil {
		return err
	}
	c := it.cur
	for ; n > 0; n-- {
		var ok bool
		if c, ok = step(c); !ok {
			return ErrOutOfRange
		}
	}
	it.cur = c
	return nil
}

// Value returns the value of the current node.
// It returns ErrInvalidDereference if it is at a sentinel.
func (it *Iterator[V]) Value() (V, error) {
	var zero V
	if err := it.checkStale(); err != nil {
		return zero, err
	}
	n := it.cur.current()
	if n == nil {
		return zero, ErrInvalidDereference
	}
	return n.Value, nil
}

// Set overwrites the value of the current node in place.
// It returns ErrInvalidDereference if it is at a sentinel.
func (it *Iterator[V]) Set(v V) error {
	if err := it.checkStale(); err != nil {
		return err
	}
	n := it.cur.current()
	if n == nil {
		return ErrInvalidDereference
	}
	n.Value = v
	return nil
}

// Reset moves it back to where it was created.
func (it *Iterator[V]) Reset() error {
	if err := it.checkStale(); err != nil {
		return err
	}
	it.cur = it.origin
	return nil
}

// Valid reports whether it points to a node and is not stale.
func (it *Iterator[V]) Valid() bool {
	return it.checkStale() == nil && it.cur.current() != nil
}

func (it *Iterator[V]) AtSentinel() bool {
	return it.cur.current() == nil
}

// Equal reports whether it and o point to the same node.
// All sentinels are equal to each other, no matter which end they are at.
func (it *Iterator[V]) Equal(o *Iterator[V]) bool {
	return it.cur.current() == o.cur.current()
}

// Clone returns an independent iterator at the same position.
func (it *Iterator[V]) Clone() *Iterator[V] {
	c := *it
	return &c
}
