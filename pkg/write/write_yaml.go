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
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type writeYAML struct {
	out io.Writer
}

// Write writes the prefixes as a YAML sequence of strings
func (t *writeYAML) Write(prefixes []string) error {
	if prefixes == nil {
		prefixes = []string{}
	}
	b, err := yaml.Marshal(prefixes)
	if err != nil {
		return errors.Wrap(err, "failed to serialize prefixes to YAML")
	}
	if _, err := t.out.Write(b); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

// NewWriteYAML create a new YAML writer
func NewWriteYAML(out io.Writer) Writer {
	return &writeYAML{out: out}
}
