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

// Package batch evaluates JSON-lines codec requests on a bounded worker pool
// and writes one response per request in input order.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/zuoyebang/geohashint/butils"
	"github.com/zuoyebang/geohashint/butils/json"
	"github.com/zuoyebang/geohashint/butils/math2"
	"github.com/zuoyebang/geohashint/internal/errn"
	"github.com/zuoyebang/geohashint/internal/log"
)

const (
	DefaultWorkers     = 8
	DefaultMaxLineSize = 1 << 20
	DefaultSteps       = 26

	pendingPerWorker = 4
	initialLineBuf   = 4 << 10
)

type Options struct {
	Workers     int
	MaxLineSize int
	Timeout     time.Duration
	Steps       uint8
}

type Summary struct {
	Records       uint64
	Failures      uint64
	DistinctCells uint64
	Cost          time.Duration
}

type Processor struct {
	opts  Options
	stats *stats
}

func New(opts Options) *Processor {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.MaxLineSize <= 0 {
		opts.MaxLineSize = DefaultMaxLineSize
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultSteps
	}
	return &Processor{
		opts:  opts,
		stats: newStats(),
	}
}

// Run processes every request of a batch with a fresh Processor.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (*Summary, error) {
	return New(opts).Run(ctx, r, w)
}

type task struct {
	wg    *sync.WaitGroup
	seq   uint64
	line  []byte
	steps uint8
	res   *Response
	done  chan struct{}
	run   *runStats
	stats *stats
}

func (t *task) eval() {
	defer close(t.done)
	begin := time.Now()
	t.res = evaluate(t.line, t.steps)
	t.res.Seq = t.seq
	t.run.observe(t.res)
	t.stats.observe(t.res, begin)
}

func taskCallback(params interface{}) {
	t, ok := params.(*task)
	if !ok {
		return
	}
	if t.wg != nil {
		defer t.wg.Done()
	}
	t.eval()
}

// sequencer owns the output; it alone touches the encoder and the cell set.
type sequencer struct {
	enc   *json.Encoder
	cells *roaring64.Bitmap
	err   error
}

func (s *sequencer) drain(pending <-chan *task) {
	for t := range pending {
		<-t.done
		if !t.res.Failed() && t.res.op == OpEncode && t.res.Value != nil {
			s.cells.Add(*t.res.Value)
		}
		if s.err != nil {
			continue
		}
		if err := s.enc.Encode(t.res); err != nil {
			s.err = errors.Wrap(err, "write response")
		}
	}
}

// Run reads requests from r until EOF, cancellation or a read failure.
// Responses already evaluated are always written before Run returns.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (*Summary, error) {
	begin := time.Now()
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	pool, err := ants.NewPoolWithFunc(p.opts.Workers, taskCallback, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrap(err, "new batch pool")
	}
	defer pool.Release()

	bw := bufio.NewWriter(w)
	seq := &sequencer{
		enc:   json.NewEncoder(bw),
		cells: roaring64.New(),
	}
	pending := make(chan *task, p.opts.Workers*pendingPerWorker)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		seq.drain(pending)
	}()

	var (
		wg     sync.WaitGroup
		run    runStats
		lineNo uint64
		runErr error
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, math2.MinInt(p.opts.MaxLineSize, initialLineBuf)), p.opts.MaxLineSize)
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			runErr = errors.Wrapf(err, "batch stopped before line %d", lineNo)
			break
		}
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		t := &task{
			wg:    &wg,
			seq:   lineNo,
			line:  append([]byte(nil), line...),
			steps: p.opts.Steps,
			done:  make(chan struct{}),
			run:   &run,
			stats: p.stats,
		}
		pending <- t

		wg.Add(1)
		if err := pool.Invoke(t); err != nil {
			// the pool rejects only after release; evaluate inline
			log.Warnf("batch pool invoke failed seq:%d running:%d err:%s", t.seq, pool.Running(), err.Error())
			wg.Done()
			t.eval()
		}
	}
	if runErr == nil {
		if err := scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				runErr = errors.Wrapf(errn.ErrLineTooLong, "line %d exceeds %s", lineNo+1, butils.FmtSize(uint64(p.opts.MaxLineSize)))
			} else {
				runErr = errors.Wrap(err, "read batch")
			}
		}
	}

	wg.Wait()
	close(pending)
	<-drained

	if err := bw.Flush(); err != nil && seq.err == nil {
		seq.err = errors.Wrap(err, "flush responses")
	}
	if runErr == nil {
		runErr = seq.err
	}

	summary := &Summary{
		Records:       run.records.Load(),
		Failures:      run.failures.Load(),
		DistinctCells: seq.cells.GetCardinality(),
		Cost:          time.Since(begin),
	}
	log.Infof("batch done records:%d failures:%d distinct_cells:%d cost:%s rate:%s",
		summary.Records, summary.Failures, summary.DistinctCells,
		butils.FmtDuration(summary.Cost), butils.FmtRate(summary.Records, summary.Cost))
	return summary, runErr
}

// WritePrometheus writes the counters accumulated over every Run of p.
func (p *Processor) WritePrometheus(w io.Writer) {
	p.stats.set.WritePrometheus(w)
}
