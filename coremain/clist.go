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
	"fmt"
	"strings"

	"github.com/IrineSistiana/clist/mlog"
	"github.com/IrineSistiana/clist/pkg/replay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// RunScript executes s and returns the final state of its list.
// Metrics are registered to reg with a prefix of "clist_". reg can be nil.
func RunScript(s *replay.Script, reg prometheus.Registerer) (replay.Report, error) {
	lg, err := mlog.NewLogger(s.Log)
	if err != nil {
		return replay.Report{}, fmt.Errorf("failed to init logger: %w", err)
	}
	defer lg.Sync()

	opts := replay.Opts{Logger: lg}
	if reg != nil {
		opts.MetricsReg = prometheus.WrapRegistererWithPrefix("clist_", reg)
	}
	e := replay.NewExecutor(opts)

	lg.Info("running script", zap.Int("steps", len(s.Steps)), zap.Bool("continue_on_error", s.ContinueOnError))
	err = e.Run(s.Steps, s.ContinueOnError)
	return e.Report(), err
}

func newMetricsReg() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

// logMetrics logs all clist_ samples in reg.
func logMetrics(reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "clist_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("name", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			default:
				continue
			}
			mlog.L().Info("metric", fields...)
		}
	}
	return nil
}
