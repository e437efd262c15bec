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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestReader(t *testing.T) {
	in := "192.168.0.0/16\n10.0.0.1\n\nnot an ip\n"
	lines, err := NewIngestReader(strings.NewReader(in)).Ingest()
	require.NoError(t, err)
	assert.Equal(t, []string{"192.168.0.0/16", "10.0.0.1", "", "not an ip"}, lines)
}

func TestIngestReaderEmpty(t *testing.T) {
	lines, err := NewIngestReader(strings.NewReader("")).Ingest()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestIngestReaderNoTrailingNewline(t *testing.T) {
	lines, err := NewIngestReader(strings.NewReader("10.0.0.0/8")).Ingest()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8"}, lines)
}

func TestIngestFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "cidrs.txt")
	require.NoError(t, os.WriteFile(fileName, []byte("10.0.0.0/8\n192.168.1.1\n"), 0o600))

	ing, err := NewIngestFile(fileName)
	require.NoError(t, err)

	lines, err := ing.Ingest()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, lines)
}

func TestIngestFileNotFound(t *testing.T) {
	ing, err := NewIngestFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)

	_, err = ing.Ingest()
	assert.Error(t, err)
}

func TestIngestFileNameRequired(t *testing.T) {
	_, err := NewIngestFile("")
	assert.Error(t, err)
}
