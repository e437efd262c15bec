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

// Package write serializes the reduced prefix set into one of the
// supported textual representations.
package write

import (
	"fmt"
	"io"

	"github.com/netreduce/net-reduce/pkg/config"
	log "github.com/sirupsen/logrus"
)

type Writer interface {
	// Write serializes the prefixes to the underlying output.
	Write(prefixes []string) error
}

// NewWriter create a new writer for the given output format
func NewWriter(format string, w io.Writer) (Writer, error) {
	log.Debugf("entering NewWriter, format = %s", format)
	switch format {
	case config.FormatList:
		return NewWriteList(w), nil
	case config.FormatJSON:
		return NewWriteJSON(w), nil
	case config.FormatYAML:
		return NewWriteYAML(w), nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}
