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

package errn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmdErr(t *testing.T) {
	err := CmdParamsErr("encode")
	assert.True(t, errors.Is(err, ErrArgsLen))
	assert.Equal(t, "ERR args len is wrong: wrong number of arguments for 'encode' command", err.Error())

	err = CmdUnknownErr("zoom")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Equal(t, "ERR unknown command 'zoom'", err.Error())

	assert.True(t, errors.Is(OpUnknownErr("x"), ErrUnknownOp))
}
