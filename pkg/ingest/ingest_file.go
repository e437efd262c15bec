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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

type ingestFile struct {
	fileName string
}

// Ingest reads all lines of the file until EOF
func (r *ingestFile) Ingest() ([]string, error) {
	file, err := os.Open(r.fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", r.fileName)
	}
	defer func() {
		_ = file.Close()
	}()

	lines, err := readLines(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", r.fileName)
	}
	log.Infof("ingested %d lines from %s", len(lines), r.fileName)
	return lines, nil
}

// NewIngestFile create a new file ingester
func NewIngestFile(fileName string) (Ingester, error) {
	log.Debugf("entering NewIngestFile")
	if fileName == "" {
		return nil, errors.New("ingest filename not specified")
	}

	log.Infof("input file name = %s", fileName)

	return &ingestFile{
		fileName: fileName,
	}, nil
}
