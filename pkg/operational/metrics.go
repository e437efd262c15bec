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

// Package operational counts what a run did: lines read, prefixes parsed,
// lines discarded as malformed, prefixes surviving the reduction. The
// counters live on a private registry; the process is one-shot, so there
// is no scrape endpoint, the values are logged as a summary instead.
package operational

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type Metrics struct {
	registry *prometheus.Registry

	LinesRead      prometheus.Counter
	PrefixesParsed prometheus.Counter
	LinesDiscarded prometheus.Counter
	PrefixesOut    prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LinesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netreduce_lines_read_total",
			Help: "Number of input lines read",
		}),
		PrefixesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netreduce_prefixes_parsed_total",
			Help: "Number of input lines parsed into a prefix",
		}),
		LinesDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netreduce_lines_discarded_total",
			Help: "Number of input lines discarded as malformed",
		}),
		PrefixesOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netreduce_prefixes_out_total",
			Help: "Number of prefixes surviving the reduction",
		}),
	}
	m.registry.MustRegister(m.LinesRead, m.PrefixesParsed, m.LinesDiscarded, m.PrefixesOut)
	return m
}

// Summary gathers the registry into a name to value map.
func (m *Metrics) Summary() map[string]float64 {
	summary := make(map[string]float64)
	families, err := m.registry.Gather()
	if err != nil {
		log.Errorf("failed to gather metrics: %v", err)
		return summary
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				summary[mf.GetName()] = counter.GetValue()
			}
		}
	}
	return summary
}

// LogSummary writes all counter values through the default logger.
func (m *Metrics) LogSummary() {
	for name, value := range m.Summary() {
		log.Infof("%s = %v", name, value)
	}
}
