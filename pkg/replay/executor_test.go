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
	"testing"

	"github.com/IrineSistiana/clist/pkg/list"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string {
	return &s
}

func step(op string, args map[string]interface{}) StepConfig {
	return StepConfig{Op: op, Args: args}
}

func TestExecutor_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewExecutor(Opts{MetricsReg: reg})

	steps := []StepConfig{
		step("append", map[string]interface{}{"value": "10"}),
		step("append", map[string]interface{}{"value": 20}),
		step("insert", map[string]interface{}{"value": "30", "at": "end"}),
		{Op: "dump", Expect: str("[10 20 30]")},
		step("begin", nil),
		{Op: "get", Expect: str("10")},
		step("advance", map[string]interface{}{"n": 2}),
		{Op: "get", Expect: str("30")},
		step("next", nil),
		{Op: "get", ExpectErr: "invalid_dereference"},
		{Op: "next", ExpectErr: "out_of_range"},
		step("retreat", nil),
		{Op: "get", Expect: str("30")},
		step("set", map[string]interface{}{"value": "33"}),
		{Op: "peek", Expect: str("33")},
		{Op: "pop", Args: map[string]interface{}{"at": "start"}, Expect: str("10")},
		{Op: "get", ExpectErr: "stale_iterator"},
		{Op: "len", Expect: str("2")},
	}
	require.NoError(t, e.Run(steps, false))

	assert.Equal(t, []string{"20", "33"}, e.List().Values())
	assert.Equal(t, 2.0, testutil.ToFloat64(e.length))
	assert.Equal(t, 5.0, testutil.ToFloat64(e.stepTotal.WithLabelValues("get")))
	assert.Equal(t, 2.0, testutil.ToFloat64(e.stepErrorTotal.WithLabelValues("get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.stepErrorTotal.WithLabelValues("next")))

	n, err := testutil.GatherAndCount(reg, "list_length")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExecutor_Scenario(t *testing.T) {
	e := NewExecutor(Opts{})
	steps := []StepConfig{
		step("append", map[string]interface{}{"value": "1"}),
		step("append", map[string]interface{}{"value": "2"}),
		step("prepend", map[string]interface{}{"value": "0"}),
		{Op: "dump", Expect: str("[0 1 2]")},
		{Op: "len", Expect: str("3")},
		{Op: "pop", Args: map[string]interface{}{"at": "start"}, Expect: str("0")},
		{Op: "len", Expect: str("2")},
		{Op: "pop", Expect: str("2")},
		{Op: "len", Expect: str("1")},
		{Op: "peek", Args: map[string]interface{}{"at": "start"}, Expect: str("1")},
		{Op: "peek", Args: map[string]interface{}{"at": "end"}, Expect: str("1")},
		step("clear", nil),
		{Op: "pop", ExpectErr: "empty_container"},
		{Op: "peek", ExpectErr: "empty_container"},
		step("append", map[string]interface{}{"value": "x"}),
		{Op: "len", Expect: str("1")},
	}
	require.NoError(t, e.Run(steps, false))
}

func TestExecutor_Clone(t *testing.T) {
	e := NewExecutor(Opts{})
	steps := []StepConfig{
		step("append", map[string]interface{}{"value": "a"}),
		step("append", map[string]interface{}{"value": "b"}),
		step("clone", nil),
		step("pop", nil),
		step("append", map[string]interface{}{"value": "c"}),
		step("end", nil),
		step("prev", nil),
		{Op: "get", Expect: str("c")},
	}
	require.NoError(t, e.Run(steps, false))

	r := e.Report()
	assert.Equal(t, []string{"a", "c"}, r.List)
	assert.Equal(t, uint64(2), r.Length)
	assert.Equal(t, []string{"a", "b"}, r.Origin)
}

func TestExecutor_Errors(t *testing.T) {
	tests := []struct {
		name string
		s    StepConfig
	}{
		{"unknown op", step("shuffle", nil)},
		{"unknown error kind", StepConfig{Op: "pop", ExpectErr: "boom"}},
		{"no iterator", step("next", nil)},
		{"bad position", step("pop", map[string]interface{}{"at": "middle"})},
		{"unused args", step("append", map[string]interface{}{"value": "1", "v": "2"})},
		{"empty", step("peek", nil)},
		{"wrong expect", StepConfig{Op: "len", Expect: str("1")}},
		{"wrong expect err", StepConfig{Op: "len", ExpectErr: "out_of_range"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExecutor(Opts{})
			assert.Error(t, e.Exec(tt.s))
		})
	}
}

func TestExecutor_ContinueOnError(t *testing.T) {
	steps := []StepConfig{
		step("pop", nil),
		step("append", map[string]interface{}{"value": "1"}),
		step("next", nil),
		step("append", map[string]interface{}{"value": "2"}),
	}

	e := NewExecutor(Opts{})
	err := e.Run(steps, false)
	assert.ErrorIs(t, err, list.ErrEmptyContainer)
	assert.True(t, e.List().IsEmpty())

	e = NewExecutor(Opts{})
	err = e.Run(steps, true)
	assert.ErrorIs(t, err, list.ErrEmptyContainer)
	assert.ErrorIs(t, err, errNoIterator)
	assert.Equal(t, []string{"1", "2"}, e.List().Values())
}

func TestOps(t *testing.T) {
	s := Ops()
	assert.Len(t, s, len(ops))
	assert.Contains(t, s, "advance")
	assert.IsIncreasing(t, s)
}
