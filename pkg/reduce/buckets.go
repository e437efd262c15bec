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
)

// maxPrefixBits is the longest possible prefix length (IPv6); the bucket
// array is sized for it and works for IPv4 as well, whose buckets 33..128
// simply stay empty.
const maxPrefixBits = 128

// lengthBuckets groups prefixes of a single family by prefix length.
// Valid lengths are bounded, so a fixed bucket array gives the ascending
// ordering in O(n) instead of a comparator sort over the whole set.
type lengthBuckets [maxPrefixBits + 1][]netip.Prefix

func bucketByLength(prefixes []netip.Prefix) *lengthBuckets {
	var buckets lengthBuckets
	for _, pfx := range prefixes {
		buckets[pfx.Bits()] = append(buckets[pfx.Bits()], pfx)
	}
	return &buckets
}

// ascending calls fn for every bucketed prefix, all prefixes of a shorter
// length before any longer one. Order within one bucket is unspecified.
func (b *lengthBuckets) ascending(fn func(netip.Prefix)) {
	for length := range b {
		for _, pfx := range b[length] {
			fn(pfx)
		}
	}
}
