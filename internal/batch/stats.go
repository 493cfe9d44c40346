// Copyright 2019-2024 Xu Ruibo (hustxurb@163.com) and Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/atomic"
)

const opUnknown = "unknown"

type runStats struct {
	records  atomic.Uint64
	failures atomic.Uint64
}

func (r *runStats) observe(res *Response) {
	r.records.Inc()
	if res.Failed() {
		r.failures.Inc()
	}
}

type stats struct {
	set      *metrics.Set
	requests map[string]*metrics.Counter
	failures map[string]*metrics.Counter
	latency  *metrics.Histogram
}

func newStats() *stats {
	s := &stats{
		set:      metrics.NewSet(),
		requests: make(map[string]*metrics.Counter, len(knownOps)+1),
		failures: make(map[string]*metrics.Counter, len(knownOps)+1),
	}
	for _, op := range []string{OpEncode, OpDecode, OpNeighbor, OpNeighbors, opUnknown} {
		s.requests[op] = s.set.NewCounter(fmt.Sprintf(`geohashint_batch_requests_total{op=%q}`, op))
		s.failures[op] = s.set.NewCounter(fmt.Sprintf(`geohashint_batch_failures_total{op=%q}`, op))
	}
	s.latency = s.set.NewHistogram("geohashint_batch_request_duration_seconds")
	return s
}

// observe is called concurrently from pool workers; the maps are read only.
func (s *stats) observe(res *Response, begin time.Time) {
	op := res.op
	if !knownOps[op] {
		op = opUnknown
	}
	s.requests[op].Inc()
	if res.Failed() {
		s.failures[op].Inc()
	}
	s.latency.UpdateDuration(begin)
}
