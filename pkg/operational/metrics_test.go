/*
 * Copyright (C) 2022 IBM, Inc.
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

package operational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSummary(t *testing.T) {
	m := NewMetrics()

	m.LinesRead.Add(5)
	m.PrefixesParsed.Add(3)
	m.LinesDiscarded.Add(2)
	m.PrefixesOut.Inc()

	summary := m.Summary()
	assert.Equal(t, float64(5), summary["netreduce_lines_read_total"])
	assert.Equal(t, float64(3), summary["netreduce_prefixes_parsed_total"])
	assert.Equal(t, float64(2), summary["netreduce_lines_discarded_total"])
	assert.Equal(t, float64(1), summary["netreduce_prefixes_out_total"])
}

func TestMetricsIndependentInstances(t *testing.T) {
	// each run gets its own registry, NewMetrics must not panic on
	// duplicate registration
	first := NewMetrics()
	second := NewMetrics()

	first.LinesRead.Inc()
	assert.Equal(t, float64(1), first.Summary()["netreduce_lines_read_total"])
	assert.Equal(t, float64(0), second.Summary()["netreduce_lines_read_total"])
}
