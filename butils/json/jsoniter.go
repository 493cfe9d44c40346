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

// Package json is the shared JSON codec of the command line and batch layers.
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var Json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

type Encoder = jsoniter.Encoder

func Marshal(v interface{}) ([]byte, error) {
	return Json.Marshal(v)
}

func Unmarshal(b []byte, v interface{}) error {
	return Json.Unmarshal(b, v)
}

func NewEncoder(w io.Writer) *Encoder {
	return Json.NewEncoder(w)
}
