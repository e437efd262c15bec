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

package ingest

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// maxLineSize bounds a single input line; the default bufio.Scanner limit
// of 64k is plenty for any address literal but not for arbitrary input.
const maxLineSize = 1024 * 1024

type ingestReader struct {
	reader io.Reader
}

// Ingest reads all lines from the reader until end of stream
func (r *ingestReader) Ingest() ([]string, error) {
	lines, err := readLines(r.reader)
	if err != nil {
		return nil, errors.Wrap(err, "could not read input stream")
	}
	log.Infof("ingested %d lines", len(lines))
	return lines, nil
}

// NewIngestStdin create a new ingester reading from standard input
func NewIngestStdin() Ingester {
	log.Debugf("entering NewIngestStdin")
	return &ingestReader{reader: os.Stdin}
}

// NewIngestReader create a new ingester reading from r
func NewIngestReader(r io.Reader) Ingester {
	return &ingestReader{reader: r}
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
