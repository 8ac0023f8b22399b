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

package tools

import (
	"path/filepath"
	"testing"

	"github.com/IrineSistiana/clist/coremain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenScript(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "script.yaml")
	require.NoError(t, genScript(p))
	assert.Error(t, genScript(p), "gen should not overwrite existing files")

	s, _, err := coremain.LoadScript(p)
	require.NoError(t, err)
	want := templateScript().Steps
	require.Len(t, s.Steps, len(want))
	for i := range want {
		assert.Equal(t, want[i].Op, s.Steps[i].Op)
		assert.Equal(t, want[i].Expect, s.Steps[i].Expect)
		assert.Equal(t, want[i].ExpectErr, s.Steps[i].ExpectErr)
	}

	s.Log.Level = "error"
	r, err := coremain.RunScript(s, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "30"}, r.List)

	j := filepath.Join(dir, "script.json")
	require.NoError(t, convScript(p, j))
	sj, _, err := coremain.LoadScript(j)
	require.NoError(t, err)
	assert.Equal(t, len(s.Steps), len(sj.Steps))
	assert.Equal(t, "advance", sj.Steps[5].Op)
}
