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

package math2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	assert.Equal(t, 3, MaxInt(3, -1))
	assert.Equal(t, -1, MinInt(3, -1))
	assert.Equal(t, 1, ClampInt(0, 1, 1024))
	assert.Equal(t, 1024, ClampInt(5000, 1, 1024))
	assert.Equal(t, 8, ClampInt(8, 1, 1024))
	assert.Panics(t, func() { ClampInt(1, 2, 1) })
}
