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
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/zuoyebang/geohashint/butils/timesize"
)

type Config struct {
	Log   LogConfig   `toml:"log"`
	Codec CodecConfig `toml:"codec"`
	Batch BatchConfig `toml:"batch"`
}

type LogConfig struct {
	IsDebug      bool   `toml:"is_debug"`
	RotationTime string `toml:"rotation_time"`
	LogPath      string `toml:"log_path"`
}

type CodecConfig struct {
	Steps uint8 `toml:"steps"`
}

type BatchConfig struct {
	Workers     int               `toml:"workers"`
	MaxLineSize int               `toml:"max_line_size"`
	Timeout     timesize.Duration `toml:"timeout"`
}

var GlobalConfig = NewDefaultConfig()

func NewDefaultConfig() *Config {
	c := &Config{}
	if _, err := toml.Decode(DefaultConfig, c); err != nil {
		panic(err)
	}
	return c
}

func (c *Config) LoadFromFile(configFile string) error {
	if _, err := toml.DecodeFile(configFile, c); err != nil {
		return errors.Wrapf(err, "load config %s", configFile)
	}
	return c.Validate()
}

func (c *Config) LoadFromString(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return errors.Wrap(err, "decode config")
	}
	return c.Validate()
}

func (c *Config) String() string {
	var b bytes.Buffer
	e := toml.NewEncoder(&b)
	e.Indent = "    "
	e.Encode(c)
	return b.String()
}
