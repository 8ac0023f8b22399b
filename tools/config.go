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
	"bytes"
	"strings"

	"github.com/IrineSistiana/clist/mlog"
	"github.com/IrineSistiana/clist/pkg/replay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConvCmd() *cobra.Command {
	var (
		in  string
		out string
	)

	c := &cobra.Command{
		Use:   "conv -i input_script.yaml -o output_script.json",
		Args:  cobra.NoArgs,
		Short: "Convert script file format. Supported extensions: " + strings.Join(viper.SupportedExts, ", "),
		Run: func(cmd *cobra.Command, args []string) {
			if err := convScript(in, out); err != nil {
				mlog.S().Fatal(err)
			}
		},
	}
	c.PersistentFlags().StringVarP(&in, "in", "i", "", "input script")
	c.PersistentFlags().StringVarP(&out, "out", "o", "", "output script")
	c.MarkFlagRequired("in")
	c.MarkFlagRequired("out")
	c.MarkFlagFilename("in")
	c.MarkFlagFilename("out")
	return c
}

func newGenCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "gen script.yaml",
		Short: "Generate a template script. Supported extensions: " + strings.Join(viper.SupportedExts, ", "),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := genScript(args[0]); err != nil {
				mlog.S().Fatal(err)
			}
		},
	}
	return c
}

func convScript(in, out string) error {
	v := viper.New()
	v.SetConfigFile(in)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.SafeWriteConfigAs(out)
}

func strPtr(s string) *string {
	return &s
}

// templateScript walks a three elements list forward off its end
// and back again.
func templateScript() *replay.Script {
	return &replay.Script{
		Log: mlog.LogConfig{Level: "info"},
		Steps: []replay.StepConfig{
			{Op: "append", Args: map[string]interface{}{"value": "10"}},
			{Op: "append", Args: map[string]interface{}{"value": "20"}},
			{Op: "append", Args: map[string]interface{}{"value": "30"}},
			{Op: "begin", Args: map[string]interface{}{"at": "start"}},
			{Op: "get", Expect: strPtr("10")},
			{Op: "advance", Args: map[string]interface{}{"n": 2}},
			{Op: "get", Expect: strPtr("30")},
			{Op: "next"},
			{Op: "get", ExpectErr: "invalid_dereference"},
			{Op: "prev"},
			{Op: "get", Expect: strPtr("30")},
			{Op: "dump", Expect: strPtr("[10 20 30]")},
		},
	}
}

func genScript(out string) error {
	b, err := yaml.Marshal(templateScript())
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(b)); err != nil {
		return err
	}
	return v.SafeWriteConfigAs(out)
}
