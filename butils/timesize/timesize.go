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

// Package timesize decodes durations written either as Go duration strings
// ("1500ms") or as bare, possibly fractional, second counts ("2", "0.5").
package timesize

import (
	"regexp"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

var units = []struct {
	suffix string
	size   time.Duration
}{
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"us", time.Microsecond},
}

// MarshalText writes the largest unit that divides d exactly.
func (d Duration) MarshalText() ([]byte, error) {
	if d == 0 {
		return []byte("0s"), nil
	}
	abs := time.Duration(d)
	if abs < 0 {
		abs = -abs
	}
	for _, u := range units {
		if abs%u.size == 0 {
			return []byte(strconv.FormatInt(int64(d)/int64(u.size), 10) + u.suffix), nil
		}
	}
	return []byte(d.Duration().String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) String() string {
	b, _ := d.MarshalText()
	return string(b)
}

var (
	fullRegexp = regexp.MustCompile(`^\s*(\-?[\d\.]+)\s*([a-z]+|)\s*$`)
	digitsOnly = regexp.MustCompile(`^\-?\d+$`)
)

var ErrBadTimeSize = errors.New("invalid timesize")

func Parse(s string) (time.Duration, error) {
	subs := fullRegexp.FindStringSubmatch(s)
	if len(subs) != 3 {
		return 0, errors.Wrapf(ErrBadTimeSize, "%q", s)
	}

	text, unit := subs[1], subs[2]
	switch {
	case unit != "":
		d, err := time.ParseDuration(text + unit)
		if err != nil {
			return 0, errors.Wrapf(ErrBadTimeSize, "%q", s)
		}
		return d, nil
	case digitsOnly.MatchString(text):
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrBadTimeSize, "%q", s)
		}
		return time.Duration(n) * time.Second, nil
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrBadTimeSize, "%q", s)
		}
		return time.Duration(f * float64(time.Second)), nil
	}
}
