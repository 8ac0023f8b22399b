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

// Node is a link of a List. Nodes are created and released by their
// List only.
type Node[V any] struct {
	next, prev *Node[V]
	Value      V
}

func newNode[V any](v V) *Node[V] {
	return &Node[V]{Value: v}
}

// Next returns the following node, or nil if n is the last one.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the preceding node, or nil if n is the first one.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}
