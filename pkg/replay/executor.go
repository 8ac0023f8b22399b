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

	"github.com/IrineSistiana/clist/mlog"
	"github.com/IrineSistiana/clist/pkg/list"
	"github.com/IrineSistiana/clist/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Executor runs steps against a list of strings.
// Executor is not safe for concurrent use.
type Executor struct {
	logger *zap.Logger

	l      *list.List[string]
	origin *list.List[string] // The list before the last clone. Might be nil.
	it     *list.Iterator[string]

	stepTotal      *prometheus.CounterVec
	stepErrorTotal *prometheus.CounterVec
	length         prometheus.GaugeFunc
}

type Opts struct {
	// Logger, optional.
	Logger *zap.Logger

	// MetricsReg, optional.
	MetricsReg prometheus.Registerer
}

func NewExecutor(opts Opts) *Executor {
	e := &Executor{
		logger: opts.Logger,
		l:      list.New[string](),
		stepTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "step_total",
			Help: "The total number of executed steps",
		}, []string{"op"}),
		stepErrorTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "step_error_total",
			Help: "The total number of steps whose op returned an error",
		}, []string{"op"}),
	}
	e.length = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "list_length",
		Help: "Current length of the working list",
	}, func() float64 {
		return list.Length[float64](e.l)
	})
	if e.logger == nil {
		e.logger = mlog.Nop()
	}
	if opts.MetricsReg != nil {
		opts.MetricsReg.MustRegister(e.stepTotal, e.stepErrorTotal, e.length)
	}
	return e
}

// List returns the working list.
func (e *Executor) List() *list.List[string] {
	return e.l
}

// Run executes steps in order. If continueOnError is false, it stops at
// the first failed step. Otherwise, all failures are joined.
func (e *Executor) Run(steps []StepConfig, continueOnError bool) error {
	var es utils.Errors
	for i, s := range steps {
		if err := e.Exec(s); err != nil {
			err = fmt.Errorf("step #%d %s: %w", i, s.Op, err)
			if !continueOnError {
				return err
			}
			e.logger.Warn("step failed", zap.Int("step", i), zap.Error(err))
			es.Append(err)
		}
	}
	return es.Build()
}

// Exec executes one step and checks its expectations.
func (e *Executor) Exec(s StepConfig) error {
	f := ops[s.Op]
	if f == nil {
		return fmt.Errorf("unknown op %q", s.Op)
	}

	var wantErr error
	if len(s.ExpectErr) > 0 {
		wantErr = errKinds[s.ExpectErr]
		if wantErr == nil {
			return fmt.Errorf("unknown error kind %q", s.ExpectErr)
		}
	}

	e.stepTotal.WithLabelValues(s.Op).Inc()
	res, err := f(e, s.Args)
	if err != nil {
		e.stepErrorTotal.WithLabelValues(s.Op).Inc()
	}

	if wantErr != nil {
		if !errors.Is(err, wantErr) {
			return fmt.Errorf("want error %s, got %v", s.ExpectErr, err)
		}
		e.logger.Debug("step failed as expected", zap.String("op", s.Op), zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}
	if s.Expect != nil && *s.Expect != res {
		return fmt.Errorf("want result %q, got %q", *s.Expect, res)
	}
	e.logger.Debug("step done", zap.String("op", s.Op), zap.String("result", res))
	return nil
}

// Report is the state of an Executor.
type Report struct {
	List   []string `yaml:"list"`
	Length uint64   `yaml:"length"`
	Origin []string `yaml:"origin,omitempty"`
}

func (e *Executor) Report() Report {
	r := Report{
		List:   e.l.Values(),
		Length: list.Length[uint64](e.l),
	}
	if e.origin != nil {
		r.Origin = e.origin.Values()
	}
	return r
}
