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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/zuoyebang/geohashint/butils/json"
	"github.com/zuoyebang/geohashint/geohash"
	"github.com/zuoyebang/geohashint/internal/batch"
	"github.com/zuoyebang/geohashint/internal/config"
	"github.com/zuoyebang/geohashint/internal/errn"
	"github.com/zuoyebang/geohashint/internal/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `usage:
  geohashint [flags] encode <latitude> <longitude>
  geohashint [flags] decode <value>
  geohashint [flags] neighbor <value> <direction>
  geohashint [flags] neighbors <value>
  geohashint [flags] batch
  geohashint version

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configFile  string
	steps       uint8
	input       string
	output      string
	workers     int
	metricsFile string
	debug       bool
}

type env struct {
	cfg    *config.Config
	opts   *options
	stdin  io.Reader
	stdout io.Writer
}

type command struct {
	nargs int
	fn    func(e *env, args []string) error
}

var commands = map[string]command{
	"encode":    {2, cmdEncode},
	"decode":    {1, cmdDecode},
	"neighbor":  {2, cmdNeighbor},
	"neighbors": {1, cmdNeighbors},
	"batch":     {0, cmdBatch},
	"version":   {0, cmdVersion},
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := pflag.NewFlagSet("geohashint", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	// flags stop at the command so negative coordinates stay positional
	fs.SetInterspersed(false)
	fs.StringVar(&opts.configFile, "conf.file", "", "please input the config file")
	fs.Uint8Var(&opts.steps, "steps", 0, "bits per axis, overrides codec.steps")
	fs.StringVar(&opts.input, "input", "", "batch input file, stdin if empty")
	fs.StringVar(&opts.output, "output", "", "output file, stdout if empty")
	fs.IntVar(&opts.workers, "workers", 0, "batch workers, overrides batch.workers")
	fs.StringVar(&opts.metricsFile, "metrics.file", "", "write batch metrics in prometheus text format")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug log")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "geohashint: %s\n", err.Error())
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	name, cmdArgs := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		return fail(stderr, errn.CmdUnknownErr(name))
	}
	if len(cmdArgs) != cmd.nargs {
		return fail(stderr, errn.CmdParamsErr(name))
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return fail(stderr, err)
	}
	config.GlobalConfig = cfg

	log.NewLogger(&log.Options{
		IsDebug:      cfg.Log.IsDebug,
		RotationTime: cfg.Log.RotationTime,
		LogPath:      cfg.Log.LogPath,
	})
	defer log.CloseLog()
	log.Debugf("run %s with config\n%s", name, cfg)

	e := &env{
		cfg:    cfg,
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
	}
	if err := cmd.fn(e, cmdArgs); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

func loadConfig(fs *pflag.FlagSet, opts *options) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configFile != "" {
		if err := cfg.LoadFromFile(opts.configFile); err != nil {
			return nil, err
		}
	}
	if fs.Changed("steps") {
		if opts.steps < geohash.MinStep || opts.steps > geohash.MaxStep {
			return nil, errors.Wrapf(errn.ErrInvalidStep, "steps %d", opts.steps)
		}
		cfg.Codec.Steps = opts.steps
	}
	if fs.Changed("workers") {
		cfg.Batch.Workers = opts.workers
	}
	if opts.debug {
		cfg.Log.IsDebug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "geohashint: %s\n", err.Error())
	for _, usageErr := range []error{
		errn.ErrUnknownCommand,
		errn.ErrArgsLen,
		errn.ErrInvalidFloat,
		errn.ErrInvalidInteger,
		errn.ErrInvalidStep,
	} {
		if errors.Is(err, usageErr) {
			return exitUsage
		}
	}
	return exitError
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(errn.ErrInvalidFloat, "%s %q", name, s)
	}
	return v, nil
}

func parseValue(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errn.ErrInvalidInteger, "value %q", s)
	}
	return v, nil
}

func (e *env) write(v interface{}) error {
	return json.NewEncoder(e.stdout).Encode(v)
}

type valueResult struct {
	Value uint64 `json:"value"`
}

func cmdEncode(e *env, args []string) error {
	lat, err := parseFloat("latitude", args[0])
	if err != nil {
		return err
	}
	lng, err := parseFloat("longitude", args[1])
	if err != nil {
		return err
	}
	bits, err := geohash.Encode(lat, lng, e.cfg.Codec.Steps)
	if err != nil {
		return err
	}
	return e.write(&valueResult{Value: bits})
}

func cmdDecode(e *env, args []string) error {
	bits, err := parseValue(args[0])
	if err != nil {
		return err
	}
	box := geohash.Decode(bits, e.cfg.Codec.Steps)
	return e.write(&box)
}

func cmdNeighbor(e *env, args []string) error {
	bits, err := parseValue(args[0])
	if err != nil {
		return err
	}
	d, err := geohash.ParseDirection(args[1])
	if err != nil {
		return err
	}
	n, err := geohash.Neighbor(bits, d, e.cfg.Codec.Steps)
	if err != nil {
		return err
	}
	return e.write(&valueResult{Value: n})
}

func cmdNeighbors(e *env, args []string) error {
	bits, err := parseValue(args[0])
	if err != nil {
		return err
	}
	return e.write(batch.NewNeighborCells(geohash.NeighborsOf(bits, e.cfg.Codec.Steps)))
}

func cmdVersion(e *env, _ []string) error {
	return e.write(map[string]string{"version": geohash.Version})
}

func cmdBatch(e *env, _ []string) error {
	in := e.stdin
	if e.opts.input != "" && e.opts.input != "-" {
		f, err := os.Open(e.opts.input)
		if err != nil {
			return errors.Wrap(err, "open batch input")
		}
		defer f.Close()
		in = f
	}

	out := e.stdout
	if e.opts.output != "" && e.opts.output != "-" {
		f, err := os.Create(e.opts.output)
		if err != nil {
			return errors.Wrap(err, "create batch output")
		}
		defer f.Close()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := batch.New(batch.Options{
		Workers:     e.cfg.Batch.Workers,
		MaxLineSize: e.cfg.Batch.MaxLineSize,
		Timeout:     e.cfg.Batch.Timeout.Duration(),
		Steps:       e.cfg.Codec.Steps,
	})
	_, runErr := p.Run(ctx, in, out)

	if e.opts.metricsFile != "" {
		f, err := os.Create(e.opts.metricsFile)
		if err != nil {
			return errors.CombineErrors(runErr, errors.Wrap(err, "create metrics file"))
		}
		p.WritePrometheus(f)
		if err := f.Close(); err != nil {
			return errors.CombineErrors(runErr, errors.Wrap(err, "close metrics file"))
		}
	}
	return runErr
}
