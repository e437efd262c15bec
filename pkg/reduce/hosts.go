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

package reduce

import (
	"net/netip"
	"runtime"
	"sync"
)

// hostFanOutThreshold is the number of host prefixes below which the
// coverage checks run sequentially; smaller batches are not worth the
// goroutine overhead.
const hostFanOutThreshold = 1024

// filterHosts returns the host prefixes not covered by any prefix in the
// trie. Host prefixes are never inserted into the trie: a full-length
// prefix cannot have more specifics, so building a 32 or 128 node path for
// each one buys nothing. A read-only walk gives the identical result.
//
// Duplicate hosts are collapsed before checking so every survivor appears
// once in the output.
func filterHosts(t *trie, hosts []netip.Prefix) []netip.Prefix {
	if len(hosts) == 0 {
		return nil
	}

	seen := make(map[netip.Addr]struct{}, len(hosts))
	unique := make([]netip.Prefix, 0, len(hosts))
	for _, h := range hosts {
		if _, ok := seen[h.Addr()]; ok {
			continue
		}
		seen[h.Addr()] = struct{}{}
		unique = append(unique, h)
	}

	if len(unique) < hostFanOutThreshold {
		return uncoveredHosts(t, unique)
	}
	return uncoveredHostsParallel(t, unique)
}

func uncoveredHosts(t *trie, hosts []netip.Prefix) []netip.Prefix {
	var kept []netip.Prefix
	for _, h := range hosts {
		if !t.covers(h.Addr()) {
			kept = append(kept, h)
		}
	}
	return kept
}

// uncoveredHostsParallel fans the coverage checks out across workers. The
// trie is immutable at this point, so the workers only share reads; each
// one collects into its own slice and the results are concatenated after
// the join.
func uncoveredHostsParallel(t *trie, hosts []netip.Prefix) []netip.Prefix {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(hosts) {
		workers = len(hosts)
	}

	chunks := make([][]netip.Prefix, workers)
	chunkSize := (len(hosts) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(hosts) {
			end = len(hosts)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w int, hosts []netip.Prefix) {
			defer wg.Done()
			chunks[w] = uncoveredHosts(t, hosts)
		}(w, hosts[start:end])
	}
	wg.Wait()

	var kept []netip.Prefix
	for _, c := range chunks {
		kept = append(kept, c...)
	}
	return kept
}
