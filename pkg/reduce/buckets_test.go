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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketAscendingOrder(t *testing.T) {
	in := prefixes(t,
		"10.1.1.0/24",
		"0.0.0.0/0",
		"192.168.1.1/32",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"10.1.0.0/16",
	)

	var emitted []netip.Prefix
	bucketByLength(in).ascending(func(pfx netip.Prefix) {
		emitted = append(emitted, pfx)
	})

	assert.Len(t, emitted, len(in))
	for i := 1; i < len(emitted); i++ {
		assert.LessOrEqual(t, emitted[i-1].Bits(), emitted[i].Bits())
	}
}

func TestBucketEmptyInput(t *testing.T) {
	calls := 0
	bucketByLength(nil).ascending(func(netip.Prefix) {
		calls++
	})
	assert.Zero(t, calls)
}

func TestBucketMaxLengthIPv6(t *testing.T) {
	in := prefixes(t, "2001:db8::1/128", "::/0", "2001:db8::/32")

	var emitted []netip.Prefix
	bucketByLength(in).ascending(func(pfx netip.Prefix) {
		emitted = append(emitted, pfx)
	})

	assert.Equal(t, []string{"::/0", "2001:db8::/32", "2001:db8::1/128"}, asStrings(emitted))
}
