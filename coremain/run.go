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

package coremain

import (
	"os"

	"github.com/IrineSistiana/clist/mlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:   "clist",
	Short: "Run list operation scripts.",
}

func init() {
	runCmd := &cobra.Command{
		Use:   "run [-c script] [-d working_dir] [--metrics]",
		Args:  cobra.NoArgs,
		Short: "Run a script and print the final list.",
		Run:   RunCmd,
	}
	rootCmd.AddCommand(runCmd)
	fs := runCmd.PersistentFlags()
	fs.StringVarP(&rf.c, "config", "c", "", "script file")
	fs.StringVarP(&rf.dir, "dir", "d", "", "working dir")
	fs.BoolVar(&rf.metrics, "metrics", false, "log metrics after the script finished")
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

type runFlags struct {
	c       string
	dir     string
	metrics bool
}

var rf = runFlags{}

func RunCmd(cmd *cobra.Command, args []string) {
	if len(rf.dir) > 0 {
		err := os.Chdir(rf.dir)
		if err != nil {
			mlog.L().Fatal("failed to change the current working directory", zap.Error(err))
		}
		mlog.L().Info("working directory changed", zap.String("path", rf.dir))
	}

	s, file, err := LoadScript(rf.c)
	if err != nil {
		mlog.L().Fatal("failed to load script", zap.Error(err))
	}
	mlog.L().Info("script loaded", zap.String("file", file))

	var (
		reg        *prometheus.Registry
		metricsReg prometheus.Registerer // Keep it a nil interface if metrics are disabled.
	)
	if rf.metrics {
		reg = newMetricsReg()
		metricsReg = reg
	}

	r, err := RunScript(s, metricsReg)
	if reg != nil {
		if err := logMetrics(reg); err != nil {
			mlog.L().Error("failed to gather metrics", zap.Error(err))
		}
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	if encErr := enc.Encode(r); encErr != nil {
		mlog.L().Error("failed to print report", zap.Error(encErr))
	}
	_ = enc.Close()

	if err != nil {
		mlog.L().Fatal("script failed", zap.Error(err))
	}
}
