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

package timesize

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]time.Duration{
		"0":       0,
		"0s":      0,
		"2":       2 * time.Second,
		"0.5":     500 * time.Millisecond,
		"1500ms":  1500 * time.Millisecond,
		" 3m ":    3 * time.Minute,
		"-1s":     -time.Second,
		"1h":      time.Hour,
		"250us":   250 * time.Microsecond,
		"1.5h":    90 * time.Minute,
		"10 s":    10 * time.Second,
		"1000000": 1000000 * time.Second,
	}
	for in, want := range tests {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d, in)
	}

	for _, in := range []string{"", "abc", "1x", "1..2s", "--1"} {
		_, err := Parse(in)
		assert.True(t, errors.Is(err, ErrBadTimeSize), in)
	}
}

func TestText(t *testing.T) {
	tests := map[time.Duration]string{
		0:                       "0s",
		2 * time.Hour:           "2h",
		90 * time.Minute:        "90m",
		-3 * time.Second:        "-3s",
		1500 * time.Millisecond: "1500ms",
		7 * time.Microsecond:    "7us",
		42:                      "42ns",
	}
	for d, want := range tests {
		text, err := Duration(d).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(text))

		var back Duration
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, d, back.Duration())
	}
	assert.Equal(t, "1500ms", Duration(1500*time.Millisecond).String())
}
