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

	"github.com/pkg/errors"
)

type writeList struct {
	out io.Writer
}

// Write writes one prefix per line
func (t *writeList) Write(prefixes []string) error {
	for _, p := range prefixes {
		if _, err := fmt.Fprintln(t.out, p); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

// NewWriteList create a new plain list writer
func NewWriteList(out io.Writer) Writer {
	return &writeList{out: out}
}
