// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package bucket implements the small, persistent ordered set of integers
// held at each base node of the LFCA tree. A Bucket is never mutated after
// construction: Inserted and Removed return a fresh Bucket and leave the
// receiver untouched, so a reader holding a reference to an old Bucket
// always sees a stable snapshot, even while other goroutines build and
// install newer ones. The copy-on-write discipline mirrors the single-node
// cloning used by gaissmai/bart's Persist-suffixed mutators: only the
// backing slice of the node being changed is copied, never the whole
// structure above it.
package bucket

import (
	"iter"
	"sort"

	"github.com/relaxedb/lfcatree/internal/iterutil"
)

// Bucket is an immutable, sorted set of distinct ints.
type Bucket struct {
	keys []int
}

// Empty returns a Bucket with no keys.
func Empty() *Bucket {
	return &Bucket{}
}

// Len returns the number of keys in b.
func (b *Bucket) Len() int {
	return len(b.keys)
}

// Contains reports whether k is a member of b.
func (b *Bucket) Contains(k int) bool {
	_, found := b.search(k)
	return found
}

// Max returns the largest key in b. The caller must ensure b is non-empty.
func (b *Bucket) Max() int {
	return b.keys[len(b.keys)-1]
}

// Min returns the smallest key in b. The caller must ensure b is non-empty.
func (b *Bucket) Min() int {
	return b.keys[0]
}

// RangeQuery returns, in ascending order, every key k in b with lo <= k <= hi.
func (b *Bucket) RangeQuery(lo, hi int) []int {
	start, _ := b.search(lo)
	end := start
	for end < len(b.keys) && b.keys[end] <= hi {
		end++
	}
	out := make([]int, end-start)
	copy(out, b.keys[start:end])
	return out
}

// Inserted returns a Bucket containing b's keys plus k. If k is already
// present, Inserted returns b itself and grew is false.
func (b *Bucket) Inserted(k int) (nb *Bucket, grew bool) {
	idx, found := b.search(k)
	if found {
		return b, false
	}
	keys := make([]int, len(b.keys)+1)
	copy(keys, b.keys[:idx])
	keys[idx] = k
	copy(keys[idx+1:], b.keys[idx:])
	return &Bucket{keys: keys}, true
}

// Removed returns a Bucket containing b's keys minus k. If k is not
// present, Removed returns b itself and shrunk is false.
func (b *Bucket) Removed(k int) (nb *Bucket, shrunk bool) {
	idx, found := b.search(k)
	if !found {
		return b, false
	}
	keys := make([]int, len(b.keys)-1)
	copy(keys, b.keys[:idx])
	copy(keys[idx:], b.keys[idx+1:])
	return &Bucket{keys: keys}, true
}

// Split partitions b into two roughly equal halves, returning a splitKey
// such that every key in left is < splitKey and every key in right is
// >= splitKey. Split is only meaningful when b.Len() >= 2.
func (b *Bucket) Split() (left, right *Bucket, splitKey int) {
	mid := len(b.keys) / 2
	splitKey = b.keys[mid]

	leftKeys := make([]int, mid)
	copy(leftKeys, b.keys[:mid])

	rightKeys := make([]int, len(b.keys)-mid)
	copy(rightKeys, b.keys[mid:])

	return &Bucket{keys: leftKeys}, &Bucket{keys: rightKeys}, splitKey
}

// Merge concatenates left and right into a single Bucket, preserving
// order. The caller must ensure max(left) < min(right); empty operands
// are allowed.
func Merge(left, right *Bucket) *Bucket {
	keys := make([]int, 0, len(left.keys)+len(right.keys))
	keys = append(keys, left.keys...)
	keys = append(keys, right.keys...)
	return &Bucket{keys: keys}
}

// All returns an iterator over b's keys in ascending order.
func (b *Bucket) All() iter.Seq[int] {
	return iterutil.SeqOf(b.keys...)
}

// search returns the index at which k would be inserted to keep b.keys
// sorted, and whether k is already present at that index.
func (b *Bucket) search(k int) (idx int, found bool) {
	i := sort.Search(len(b.keys), func(i int) bool { return b.keys[i] >= k })
	return i, i < len(b.keys) && b.keys[i] == k
}
