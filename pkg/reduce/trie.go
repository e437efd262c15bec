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

// node is a binary trie node. A node either carries a terminal prefix or
// has children, never both: marking a node terminal clears its child slots.
type node struct {
	children [2]*node
	prefix   netip.Prefix
}

func (n *node) terminal() bool {
	return n.prefix.IsValid()
}

// trie indexes network prefixes of a single address family bit by bit,
// most significant bit first. It only ever retains the least specific
// prefixes: inserting a prefix that is covered by an already inserted
// broader prefix is a no-op.
type trie struct {
	root node
}

// insert adds pfx to the trie and reports whether it was retained.
// Callers must insert prefixes in ascending prefix-length order, otherwise
// a broader prefix inserted later would not displace its more specifics.
func (t *trie) insert(pfx netip.Prefix) bool {
	bits := addrBytes(pfx.Addr())
	n := &t.root
	for i := 0; i < pfx.Bits(); i++ {
		if n.terminal() {
			// covered by a less specific prefix
			return false
		}
		b := bitAt(bits, i)
		if n.children[b] == nil {
			n.children[b] = &node{}
		}
		n = n.children[b]
	}
	n.prefix = pfx
	// no deeper structure may survive below a terminal node; with
	// ascending-length insertion only duplicates can hit this
	n.children[0] = nil
	n.children[1] = nil
	return true
}

// covers reports whether addr is contained in any prefix retained in the
// trie. It never mutates the trie and is safe for concurrent use once all
// insertions are done.
func (t *trie) covers(addr netip.Addr) bool {
	bits := addrBytes(addr)
	n := &t.root
	for i := 0; i < addr.BitLen(); i++ {
		if n.terminal() {
			return true
		}
		b := bitAt(bits, i)
		if n.children[b] == nil {
			return false
		}
		n = n.children[b]
	}
	return n.terminal()
}

// collect appends all retained prefixes to result, depth first. Children of
// terminal nodes are never visited, whether or not they exist.
func collect(n *node, result []netip.Prefix) []netip.Prefix {
	if n.terminal() {
		return append(result, n.prefix)
	}
	if n.children[0] != nil {
		result = collect(n.children[0], result)
	}
	if n.children[1] != nil {
		result = collect(n.children[1], result)
	}
	return result
}

// addrBytes returns the network-order bytes of addr, 4 for IPv4 and 16 for IPv6.
func addrBytes(addr netip.Addr) []byte {
	if addr.Is4() {
		b := addr.As4()
		return b[:]
	}
	b := addr.As16()
	return b[:]
}

// bitAt returns the bit of bytes at position i, counting from the most
// significant bit of the first byte.
func bitAt(bytes []byte, i int) int {
	return int(bytes[i>>3]>>(7-i&7)) & 1
}
