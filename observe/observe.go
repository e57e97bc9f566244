/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package observe records result outcomes as structured log lines and
// Prometheus counters.
package observe

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/result"
)

// Metric names exported by Recorder.
const (
	MetricOutcomes     = "dresult_outcomes_total"
	MetricUnrecognized = "dresult_unrecognized_outcomes_total"
)

// Recorder logs outcomes at their severity and counts them per status.
// A Recorder is safe for concurrent use.
type Recorder struct {
	logger       *slog.Logger
	outcomes     *prometheus.CounterVec
	unrecognized prometheus.Counter
}

// NewRecorder registers the outcome counters with reg. A nil logger falls
// back to slog.Default; a nil reg leaves the counters unregistered.
//
// Registering twice against the same registry panics, as with promauto.
func NewRecorder(logger *slog.Logger, reg prometheus.Registerer) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	f := promauto.With(reg)
	return &Recorder{
		logger: logger,
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOutcomes,
			Help: "Total number of recorded outcomes by status and log level",
		}, []string{"status", "level"}),
		unrecognized: f.NewCounter(prometheus.CounterOpts{
			Name: MetricUnrecognized,
			Help: "Total number of outcomes with a status outside the known set",
		}),
	}
}

// Record logs o for operation op and updates the counters.
//
// Outcomes with an unrecognized status are still logged (at error level)
// and counted separately; the classification error is returned.
func (r *Recorder) Record(ctx context.Context, op string, o result.Outcome) error {
	lvl, err := adapter.LogLevel(o)
	st := o.Status().String()
	if err != nil {
		r.unrecognized.Inc()
		r.logger.LogAttrs(ctx, lvl, "unrecognized outcome",
			slog.String("op", op),
			slog.String("status", st),
			slog.String("snapshot", adapter.Snapshot(o)),
			slog.String("error", err.Error()),
		)
		return err
	}

	r.outcomes.WithLabelValues(st, lvl.String()).Inc()
	r.logger.LogAttrs(ctx, lvl, "outcome",
		slog.String("op", op),
		slog.String("status", st),
		slog.String("snapshot", adapter.Snapshot(o)),
	)
	return nil
}
