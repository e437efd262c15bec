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

// Package reduce removes redundant entries from a mixed set of IPv4 and
// IPv6 prefixes: any prefix already contained in a broader prefix of the
// same set is dropped, leaving the minimal equivalent set.
package reduce

import (
	"net/netip"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Reduce computes the minimal covering set of the given prefixes. Prefixes
// must be canonical (network address masked to the prefix length), as
// produced by parse.Prefix. The result is not sorted and does not preserve
// input order; only set equality is guaranteed.
//
// Reduce cannot fail: any finite input yields a result.
func Reduce(prefixes []netip.Prefix) []netip.Prefix {
	var v4, v6 []netip.Prefix
	for _, pfx := range prefixes {
		if pfx.Addr().Is4() {
			v4 = append(v4, pfx)
		} else {
			v6 = append(v6, pfx)
		}
	}
	log.Debugf("reducing %d IPv4 and %d IPv6 prefixes", len(v4), len(v6))

	// the two families share no state, so they build concurrently and
	// join before the results are concatenated
	var reduced4, reduced6 []netip.Prefix
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		reduced4 = reduceFamily(v4)
	}()
	go func() {
		defer wg.Done()
		reduced6 = reduceFamily(v6)
	}()
	wg.Wait()

	return append(reduced4, reduced6...)
}

// reduceFamily builds one family's table: bucket by length, insert the
// network prefixes in ascending-length order, then check the host prefixes
// against the finished trie without inserting them.
func reduceFamily(prefixes []netip.Prefix) []netip.Prefix {
	if len(prefixes) == 0 {
		return nil
	}

	var t trie
	var hosts []netip.Prefix
	bucketByLength(prefixes).ascending(func(pfx netip.Prefix) {
		if pfx.IsSingleIP() {
			hosts = append(hosts, pfx)
			return
		}
		t.insert(pfx)
	})

	result := collect(&t.root, nil)
	return append(result, filterHosts(&t, hosts)...)
}
