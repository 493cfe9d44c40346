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

package geohash

import "github.com/cockroachdb/errors"

// ErrInvalidArgument is the cause of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrStepOutOfRange      = invalidArgument("invalid precision")
	ErrLatitudeOutOfRange  = invalidArgument("latitude out of bounds")
	ErrLongitudeOutOfRange = invalidArgument("longitude out of bounds")
	ErrInvalidRange        = invalidArgument("invalid axis range")
	ErrInvalidDirection    = invalidArgument("invalid direction")
)

func invalidArgument(msg string) error {
	return errors.Wrap(ErrInvalidArgument, msg)
}
