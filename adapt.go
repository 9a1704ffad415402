// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

// maybeAdapt inspects b's contention statistic (and, for a NORMAL base,
// its bucket size) and triggers a split or a join attempt. b must be the
// base just installed by the caller. A failed adaptation attempt is not
// an error: the next operation to touch this region will retry based on
// fresh statistics.
func (s *Set) maybeAdapt(b *node) {
	if !replaceable(b) {
		return
	}
	stat := s.newStat(b, infoNoInfo)
	switch {
	case stat > s.highContention || (b.k == kindNormal && b.bucket.Len() >= s.splitThreshold):
		s.highContentionAdaptation(b)
	case stat < s.lowContention:
		s.lowContentionAdaptation(b)
	}
}

// highContentionAdaptation splits b into a fresh route node and two NORMAL
// children. It is a no-op if b's bucket holds fewer than 2 keys -- there is
// nothing meaningful to split.
func (s *Set) highContentionAdaptation(b *node) {
	if b.bucket.Len() < 2 {
		return
	}
	left, right, splitKey := b.bucket.Split()

	route := &node{k: kindRoute, splitKey: splitKey}
	route.valid.Store(true)

	leftBase := newNormal(route, left, 0)
	rightBase := newNormal(route, right, 0)
	route.left.Store(leftBase)
	route.right.Store(rightBase)

	if s.tryReplace(b, route) {
		s.logSplit(b, route)
	}
}

// lowContentionAdaptation attempts to join b with its sibling subtree. It
// is a no-op if b is the root (there is no sibling to join with).
func (s *Set) lowContentionAdaptation(b *node) {
	if b.parent == nil {
		return
	}
	left := b.parent.left.Load() == b
	if m := s.secureJoin(b, left); m != nil {
		s.completeJoin(m)
	}
}
