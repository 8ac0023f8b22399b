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
	"github.com/IrineSistiana/clist/coremain"
	"github.com/spf13/cobra"
)

func init() {
	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "Tools that can generate/convert clist script files.",
	}
	scriptCmd.AddCommand(newGenCmd(), newConvCmd())
	coremain.AddSubCmd(scriptCmd)
}
