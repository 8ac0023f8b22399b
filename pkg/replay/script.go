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
	"github.com/IrineSistiana/clist/mlog"
)

// Script is a sequence of list operations.
type Script struct {
	Log mlog.LogConfig `yaml:"log"`

	// ContinueOnError makes the executor run all steps and report
	// all failures at the end.
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`

	Steps []StepConfig `yaml:"steps"`
}

// StepConfig represents a step.
type StepConfig struct {
	// Op, required. See Ops.
	Op string `yaml:"op"`

	// Args, might be required by some ops.
	Args map[string]interface{} `yaml:"args,omitempty"`

	// Expect is the wanted result of the op, if set.
	Expect *string `yaml:"expect,omitempty"`

	// ExpectErr is the wanted error kind of the op, if set.
	// Can be "empty_container", "out_of_range", "invalid_dereference"
	// or "stale_iterator".
	ExpectErr string `yaml:"expect_err,omitempty"`
}
