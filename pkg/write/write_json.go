/*
 * Copyright (C) 2021 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package write

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type writeJSON struct {
	out io.Writer
}

// Write writes the prefixes as a JSON array of strings
func (t *writeJSON) Write(prefixes []string) error {
	if prefixes == nil {
		prefixes = []string{}
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	b, err := json.Marshal(prefixes)
	if err != nil {
		return errors.Wrap(err, "failed to serialize prefixes to JSON")
	}
	if _, err := fmt.Fprintln(t.out, string(b)); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

// NewWriteJSON create a new JSON writer
func NewWriteJSON(out io.Writer) Writer {
	return &writeJSON{out: out}
}
