// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package nodetable implements the hash-consed, reference-counted node
// store: a fixed-capacity, open-addressed hash set of octree [Node]s.
//
// Studied the probe-chain / tag-byte idiom of a classic open-addressed set
// and rewrote it from scratch for this project's exact invariants: a
// cache-byte tag that short-circuits most probe comparisons, a tombstone
// scheme that reclaims storage without ever rehashing, and 1-based handles
// so that 0 can mean "empty" without a separate flag.
package nodetable

import "github.com/pkg/errors"

const (
	tagEmpty     uint8 = 0x00
	tagTombstone uint8 = 0xFF
)

// loadFactor is the maximum fraction of the table that may hold live
// nodes before Intern refuses new insertions. Values closer to 1 degrade
// the open-addressed probe average superlinearly; this must not be raised.
const loadFactor = 0.9375

// ErrTableFull is returned by Intern when the live node count would exceed
// the load-factor threshold. It is unrecoverable within the table: the
// caller must abort or rebuild with a larger capacity.
var ErrTableFull = errors.New("nodetable: table full")

// Table is a fixed-capacity, open-addressed set of nodes with per-slot
// reference counts. The zero value is not usable; construct one with New.
type Table struct {
	tags      []uint8
	refcounts []uint32
	nodes     []Node

	capacity  uint32
	bits      int
	liveLimit uint32

	live      uint32 // fillcnt: slots with refcount > 0
	totalRefs uint32 // nodecnt: sum of all live refcounts
	maxRefcnt uint32
}

// New allocates a table with capacity 2^tableBits. tableBits must be in a
// range that keeps the capacity a power of two of at least 16, so that the
// 16-aligned probe start is well defined.
func New(tableBits int) *Table {
	if tableBits < 4 {
		tableBits = 4
	}
	capacity := uint32(1) << uint(tableBits)

	return &Table{
		tags:      make([]uint8, capacity),
		refcounts: make([]uint32, capacity),
		nodes:     make([]Node, capacity),
		capacity:  capacity,
		bits:      tableBits,
		liveLimit: uint32(float64(capacity) * loadFactor),
	}
}

// cacheByte remaps the high bits of a hash into the tag's reserved
// [1, 0xFE] range: 0 is reserved for EMPTY, 0xFF for TOMBSTONE.
func cacheByte(hash uint32, tableBits int) uint8 {
	b := uint8(hash >> uint(tableBits))
	switch b {
	case tagEmpty:
		return 1
	case tagTombstone:
		return 0x7F
	default:
		return b
	}
}

// Intern returns the handle for n, incrementing its refcount if an equal
// node is already live, or occupying a new (or reclaimed tombstone) slot
// with refcount 1 otherwise. The all-zero node is never stored; Intern
// returns handle 0 for it without consulting the table.
func (t *Table) Intern(n Node) (uint32, error) {
	if n.IsZero() {
		return 0, nil
	}

	if t.live >= t.liveLimit {
		return 0, errors.Wrapf(ErrTableFull, "live=%d capacity=%d", t.live, t.capacity)
	}

	h := n.Hash()
	mask := t.capacity - 1
	i0 := (h & mask) &^ 0xF
	b := cacheByte(h, t.bits)

	firstGrave := int64(-1)
	i := i0

	for {
		switch tag := t.tags[i]; {
		case tag == tagEmpty:
			slot := i
			if firstGrave >= 0 {
				slot = uint32(firstGrave)
			}
			t.tags[slot] = b
			t.nodes[slot] = n
			t.refcounts[slot] = 1
			t.live++
			t.totalRefs++
			if t.refcounts[slot] > t.maxRefcnt {
				t.maxRefcnt = t.refcounts[slot]
			}
			return slot + 1, nil

		case tag == tagTombstone:
			if firstGrave < 0 {
				firstGrave = int64(i)
			}

		case tag == b && t.nodes[i] == n:
			t.refcounts[i]++
			t.totalRefs++
			if t.refcounts[i] > t.maxRefcnt {
				t.maxRefcnt = t.refcounts[i]
			}
			return i + 1, nil
		}

		i = (i + 1) & mask
	}
}

// Release decrements the refcount of the node at handle h, tombstoning the
// slot once it reaches zero. The slot's bytes are left untouched; the
// tombstone alone is sufficient for probe correctness.
func (t *Table) Release(h uint32) {
	slot := h - 1
	t.refcounts[slot]--
	t.totalRefs--

	if t.refcounts[slot] == 0 {
		t.tags[slot] = tagTombstone
		t.live--
	}
}

// Children returns the child handles of the node at handle h, or the
// all-zero array for handle 0.
func (t *Table) Children(h uint32) [8]uint32 {
	if h == 0 {
		return [8]uint32{}
	}
	return t.nodes[h-1].Children
}

// Node returns the node stored at handle h. Handle 0 yields the all-zero
// node.
func (t *Table) Node(h uint32) Node {
	if h == 0 {
		return Node{}
	}
	return t.nodes[h-1]
}

// Refcount returns the current reference count of the node at handle h, or
// 0 for handle 0 or a tombstoned slot.
func (t *Table) Refcount(h uint32) uint32 {
	if h == 0 {
		return 0
	}
	return t.refcounts[h-1]
}

// Clear resets every slot to EMPTY and zeroes the diagnostic counters. The
// underlying arrays are not freed, preserving the fixed-capacity
// invariant.
func (t *Table) Clear() {
	for i := range t.tags {
		t.tags[i] = tagEmpty
	}
	t.live = 0
	t.totalRefs = 0
	t.maxRefcnt = 0
}

// Stats reports the diagnostic counters named in the external interface.
func (t *Table) Stats() (fillcnt, nodecnt, maxRefcnt uint32) {
	return t.live, t.totalRefs, t.maxRefcnt
}

// OccupancyBuckets divides the table into n contiguous, equal-sized
// regions (rounding the last one up to cover any remainder) and reports
// the live-slot fraction of each, in slot order. It is a debug aid for
// `voxtrace stats --dump`, not part of the core's correctness contract:
// since probing is linear from a 16-aligned start, a region with a much
// higher fraction than its neighbors indicates probe-chain clustering.
func (t *Table) OccupancyBuckets(n int) []float64 {
	if n <= 0 || n > int(t.capacity) {
		n = int(t.capacity)
	}
	out := make([]float64, n)
	bucketSize := int(t.capacity) / n

	for b := 0; b < n; b++ {
		lo := b * bucketSize
		hi := lo + bucketSize
		if b == n-1 {
			hi = int(t.capacity)
		}
		live := 0
		for i := lo; i < hi; i++ {
			if t.tags[i] != tagEmpty && t.tags[i] != tagTombstone {
				live++
			}
		}
		out[b] = float64(live) / float64(hi-lo)
	}
	return out
}

// Capacity returns the table's fixed slot count, 2^tableBits.
func (t *Table) Capacity() uint32 {
	return t.capacity
}
