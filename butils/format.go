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

package butils

import (
	"fmt"
	"time"
)

const (
	B  = 1
	KB = 1 << 10
	MB = 1 << 20
	GB = 1 << 30
)

var sizeUnits = []struct {
	name  string
	shift uint
}{
	{"GB", 30},
	{"MB", 20},
	{"KB", 10},
}

func FmtSize(size uint64) string {
	for _, u := range sizeUnits {
		if size>>u.shift > 0 {
			return fmt.Sprintf("%d.%03d%s", size>>u.shift, (size>>(u.shift-10))%KB, u.name)
		}
	}
	return fmt.Sprintf("%dB", size)
}

func FmtDuration(d time.Duration) string {
	if d > time.Second {
		return fmt.Sprintf("%d.%03ds", d/time.Second, d/time.Millisecond%1000)
	} else if d > time.Millisecond {
		return fmt.Sprintf("%d.%03dms", d/time.Millisecond, d/time.Microsecond%1000)
	} else if d > time.Microsecond {
		return fmt.Sprintf("%d.%03dus", d/time.Microsecond, d%1000)
	} else {
		return fmt.Sprintf("%dns", d)
	}
}

// FmtRate renders n events over d as events per second.
func FmtRate(n uint64, d time.Duration) string {
	if d <= 0 {
		return "0/s"
	}
	return fmt.Sprintf("%.1f/s", float64(n)/d.Seconds())
}
