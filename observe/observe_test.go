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

package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/result"
)

func newRecorder(t *testing.T) (*Recorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewRecorder(logger, prometheus.NewRegistry()), &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestRecord_LevelsAndCounters(t *testing.T) {
	r, buf := newRecorder(t)
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, "CreateOrder", result.Created("order 1")))
	line := lastLine(t, buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "CreateOrder", line["op"])
	assert.Equal(t, "Created", line["status"])
	assert.Equal(t, "SUCCESS: order 1", line["snapshot"])

	require.NoError(t, r.Record(ctx, "GetOrder", result.NotFound("Order.NotFound¬No such order")))
	line = lastLine(t, buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "NotFound: Order.NotFound¬No such order", line["snapshot"])

	require.NoError(t, r.Record(ctx, "GetOrder", result.Unavailable("Db.Down¬x")))
	assert.Equal(t, "ERROR", lastLine(t, buf)["level"])

	require.NoError(t, r.Record(ctx, "GetOrder", result.NotFound()))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.outcomes.WithLabelValues("Created", "INFO")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.outcomes.WithLabelValues("NotFound", "WARN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.outcomes.WithLabelValues("Unavailable", "ERROR")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.unrecognized))
}

func TestRecord_Unrecognized(t *testing.T) {
	r, buf := newRecorder(t)

	err := r.Record(context.Background(), "Sync", result.Of(result.Status(99), "", []string{"x"}, nil))
	require.ErrorIs(t, err, dresult.ErrUnrecognizedStatus)

	line := lastLine(t, buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "Status(99)", line["status"])
	assert.Equal(t, 1.0, testutil.ToFloat64(r.unrecognized))
	assert.Equal(t, 0, testutil.CollectAndCount(r.outcomes))
}

func TestNewRecorder_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(nil, reg)
	require.NoError(t, r.Record(context.Background(), "Op", result.Success()))

	n, err := testutil.GatherAndCount(reg, MetricOutcomes, MetricUnrecognized)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Panics(t, func() { NewRecorder(nil, reg) }, "duplicate registration")
}
