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
	"fmt"
)

var (
	ErrUnknownCommand = errors.New("ERR unknown command")
	ErrArgsLen        = errors.New("ERR args len is wrong")
	ErrInvalidFloat   = errors.New("ERR value is not a valid float")
	ErrInvalidInteger = errors.New("ERR value is not an unsigned integer or out of range")
	ErrInvalidStep    = errors.New("ERR steps is not an integer in [1, 32]")
	ErrUnknownOp      = errors.New("ERR unknown batch op")
	ErrLineTooLong    = errors.New("ERR batch line too long")
)

func CmdUnknownErr(cmd string) error {
	return fmt.Errorf("%w '%s'", ErrUnknownCommand, cmd)
}

func CmdParamsErr(cmd string) error {
	return fmt.Errorf("%w: wrong number of arguments for '%s' command", ErrArgsLen, cmd)
}

func OpUnknownErr(op string) error {
	return fmt.Errorf("%w '%s'", ErrUnknownOp, op)
}
