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

package replay

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/IrineSistiana/clist/pkg/list"
	"github.com/IrineSistiana/clist/pkg/utils"
)

var errNoIterator = errors.New("no iterator, run begin or end first")

var errKinds = map[string]error{
	"empty_container":     list.ErrEmptyContainer,
	"out_of_range":        list.ErrOutOfRange,
	"invalid_dereference": list.ErrInvalidDereference,
	"stale_iterator":      list.ErrStaleIterator,
}

type opFunc func(e *Executor, args map[string]interface{}) (string, error)

var ops = map[string]opFunc{
	"append":  (*Executor).opAppend,
	"prepend": (*Executor).opPrepend,
	"insert":  (*Executor).opInsert,
	"pop":     (*Executor).opPop,
	"peek":    (*Executor).opPeek,
	"len":     (*Executor).opLen,
	"clear":   (*Executor).opClear,
	"clone":   (*Executor).opClone,
	"dump":    (*Executor).opDump,
	"begin":   (*Executor).opBegin,
	"end":     (*Executor).opEnd,
	"next":    (*Executor).opNext,
	"prev":    (*Executor).opPrev,
	"advance": (*Executor).opAdvance,
	"retreat": (*Executor).opRetreat,
	"get":     (*Executor).opGet,
	"set":     (*Executor).opSet,
	"reset":   (*Executor).opReset,
}

// Ops returns names of all supported ops, sorted.
func Ops() []string {
	s := make([]string, 0, len(ops))
	for name := range ops {
		s = append(s, name)
	}
	sort.Strings(s)
	return s
}

type valueArgs struct {
	Value string `yaml:"value"`
}

type posArgs struct {
	At string `yaml:"at"`
}

type insertArgs struct {
	Value string `yaml:"value"`
	At    string `yaml:"at"`
}

type stepArgs struct {
	N uint64 `yaml:"n"` // Default is 1.
}

func parsePosition(s string, d list.Position) (list.Position, error) {
	switch s {
	case "":
		return d, nil
	case "start":
		return list.Start, nil
	case "end":
		return list.End, nil
	default:
		return 0, fmt.Errorf("invalid position %q", s)
	}
}

func decodePos(args map[string]interface{}, d list.Position) (list.Position, error) {
	a := new(posArgs)
	if err := utils.WeakDecode(args, a); err != nil {
		return 0, fmt.Errorf("invalid args: %w", err)
	}
	return parsePosition(a.At, d)
}

func decodeValue(args map[string]interface{}) (string, error) {
	a := new(valueArgs)
	if err := utils.WeakDecode(args, a); err != nil {
		return "", fmt.Errorf("invalid args: %w", err)
	}
	return a.Value, nil
}

func decodeSteps(args map[string]interface{}) (uint64, error) {
	a := new(stepArgs)
	if err := utils.WeakDecode(args, a); err != nil {
		return 0, fmt.Errorf("invalid args: %w", err)
	}
	utils.SetDefaultNum(&a.N, 1)
	return a.N, nil
}

func (e *Executor) opAppend(args map[string]interface{}) (string, error) {
	v, err := decodeValue(args)
	if err != nil {
		return "", err
	}
	e.l.Append(v)
	return v, nil
}

func (e *Executor) opPrepend(args map[string]interface{}) (string, error) {
	v, err := decodeValue(args)
	if err != nil {
		return "", err
	}
	e.l.Prepend(v)
	return v, nil
}

func (e *Executor) opInsert(args map[string]interface{}) (string, error) {
	a := new(insertArgs)
	if err := utils.WeakDecode(args, a); err != nil {
		return "", fmt.Errorf("invalid args: %w", err)
	}
	pos, err := parsePosition(a.At, list.End)
	if err != nil {
		return "", err
	}
	e.l.Insert(a.Value, pos)
	return a.Value, nil
}

func (e *Executor) opPop(args map[string]interface{}) (string, error) {
	pos, err := decodePos(args, list.End)
	if err != nil {
		return "", err
	}
	return e.l.Pop(pos)
}

func (e *Executor) opPeek(args map[string]interface{}) (string, error) {
	pos, err := decodePos(args, list.End)
	if err != nil {
		return "", err
	}
	return e.l.Peek(pos)
}

func (e *Executor) opLen(_ map[string]interface{}) (string, error) {
	return strconv.FormatUint(list.Length[uint64](e.l), 10), nil
}

func (e *Executor) opClear(_ map[string]interface{}) (string, error) {
	e.l.Clear()
	return "", nil
}

// opClone replaces the working list with its copy. The old list
// is kept as the origin.
func (e *Executor) opClone(_ map[string]interface{}) (string, error) {
	e.origin = e.l
	e.l = e.l.Clone()
	e.it = nil
	return "", nil
}

func (e *Executor) opDump(_ map[string]interface{}) (string, error) {
	return fmt.Sprint(e.l.Values()), nil
}

func (e *Executor) opBegin(args map[string]interface{}) (string, error) {
	pos, err := decodePos(args, list.Start)
	if err != nil {
		return "", err
	}
	e.it = e.l.Begin(pos)
	return "", nil
}

func (e *Executor) opEnd(_ map[string]interface{}) (string, error) {
	e.it = e.l.End()
	return "", nil
}

func (e *Executor) iterator() (*list.Iterator[string], error) {
	if e.it == nil {
		return nil, errNoIterator
	}
	return e.it, nil
}

func (e *Executor) opNext(_ map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	return "", it.Next()
}

func (e *Executor) opPrev(_ map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	return "", it.Prev()
}

func (e *Executor) opAdvance(args map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	n, err := decodeSteps(args)
	if err != nil {
		return "", err
	}
	return "", it.Advance(n)
}

func (e *Executor) opRetreat(args map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	n, err := decodeSteps(args)
	if err != nil {
		return "", err
	}
	return "", it.Retreat(n)
}

func (e *Executor) opGet(_ map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	return it.Value()
}

func (e *Executor) opSet(args map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	v, err := decodeValue(args)
	if err != nil {
		return "", err
	}
	return v, it.Set(v)
}

func (e *Executor) opReset(_ map[string]interface{}) (string, error) {
	it, err := e.iterator()
	if err != nil {
		return "", err
	}
	return "", it.Reset()
}
