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

// Package parse turns raw input lines into canonical network prefixes.
package parse

import (
	"net/netip"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Prefix parses a single input line into a prefix. Accepted forms are CIDR
// notation ("10.1.1.0/24", "2001:db8::/32"), a bare IPv4 address (treated
// as /32) and a bare IPv6 address (treated as /128). Leading and trailing
// whitespace is ignored.
//
// Lines matching none of these forms report ok == false and are meant to
// be skipped by the caller; a malformed line is not an error.
func Prefix(line string) (netip.Prefix, bool) {
	s := strings.TrimSpace(line)

	if pfx, err := netip.ParsePrefix(s); err == nil {
		return pfx.Masked(), true
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		log.Debugf("skipping unparsable line: %q", line)
		return netip.Prefix{}, false
	}

	// a single address is a full-length prefix; PrefixFrom yields the
	// zero Prefix for zoned IPv6 addresses, which we reject like any
	// other malformed line
	pfx := netip.PrefixFrom(addr, addr.BitLen())
	if !pfx.IsValid() {
		log.Debugf("skipping unparsable line: %q", line)
		return netip.Prefix{}, false
	}
	return pfx, true
}
