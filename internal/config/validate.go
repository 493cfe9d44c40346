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

package config

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/zuoyebang/geohashint/butils/math2"
	"github.com/zuoyebang/geohashint/geohash"
	"github.com/zuoyebang/geohashint/internal/log"
)

const (
	MaxWorkers         = 1024
	MinMaxLineSize     = 1 << 10
	DefaultMaxLineSize = 1 << 20
)

func (c *Config) Validate() error {
	if err := c.checkLogConfig(); err != nil {
		return err
	}
	if err := c.checkCodecConfig(); err != nil {
		return err
	}
	if err := c.checkBatchConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) checkLogConfig() error {
	if !log.CheckRotation(c.Log.RotationTime) {
		c.Log.RotationTime = log.DailyRotate
	}
	return nil
}

func (c *Config) checkCodecConfig() error {
	if c.Codec.Steps < geohash.MinStep || c.Codec.Steps > geohash.MaxStep {
		return errors.Newf("invalid codec steps %d, must be in [%d, %d]",
			c.Codec.Steps, geohash.MinStep, geohash.MaxStep)
	}
	return nil
}

func (c *Config) checkBatchConfig() error {
	if c.Batch.Workers < 1 {
		c.Batch.Workers = runtime.NumCPU()
	}
	c.Batch.Workers = math2.ClampInt(c.Batch.Workers, 1, MaxWorkers)
	if c.Batch.MaxLineSize <= 0 {
		c.Batch.MaxLineSize = DefaultMaxLineSize
	}
	c.Batch.MaxLineSize = math2.MaxInt(c.Batch.MaxLineSize, MinMaxLineSize)
	if c.Batch.Timeout < 0 {
		return errors.Newf("invalid batch timeout %s", c.Batch.Timeout)
	}
	return nil
}
