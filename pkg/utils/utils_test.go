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

package utils

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestArgsStruct struct {
	A string `yaml:"1"`
	B []int  `yaml:"2"`
}

func Test_WeakDecode(t *testing.T) {
	testObj := new(TestArgsStruct)
	testArgs := map[string]interface{}{
		"1": "test",
		"2": []int{1, 2, 3},
	}
	wantObj := &TestArgsStruct{
		A: "test",
		B: []int{1, 2, 3},
	}

	err := WeakDecode(testArgs, testObj)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(testObj, wantObj) {
		t.Fatalf("args decode failed, want %v, got %v", wantObj, testObj)
	}
}

func Test_WeakDecode_Weak(t *testing.T) {
	type args struct {
		N uint64 `yaml:"n"`
	}
	a := new(args)
	if err := WeakDecode(map[string]interface{}{"n": "3"}, a); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint64(3), a.N)

	err := WeakDecode(map[string]interface{}{"unknown": 1}, a)
	assert.Error(t, err)
}

func TestSetDefaultNum(t *testing.T) {
	var i int
	SetDefaultNum(&i, 5)
	assert.Equal(t, 5, i)
	SetDefaultNum(&i, 6)
	assert.Equal(t, 5, i)
}

func TestErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")

	var es Errors
	assert.NoError(t, es.Build())

	es.Append(errA)
	assert.Same(t, errA, es.Build())

	es.Append(errB)
	err := es.Build()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, "joint errors: #0: a #1: b", err.Error())
}
