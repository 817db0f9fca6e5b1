// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLanguage is returned when looking up a language that is not
	// in a registry.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownTemplate is returned when a language has no template of the
	// requested name.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Error is returned when a template cannot be evaluated.
type Error struct {
	Lang     string
	Template string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: template %q: %v", e.Lang, e.Template, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
