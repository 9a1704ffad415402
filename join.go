// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import "github.com/relaxedb/lfcatree/internal/bucket"

// secureJoin atomically claims b, its cousin base and their shared route
// parent (plus one grandparent slot), preparing a join without yet
// exposing it. left tells whether b is the left or right child of its
// parent; the two sides are symmetric, folded into one routine here (the
// source kept only a "secure_join_left" and left the mirror case as dead
// code -- both are exercised by this module's tests).
//
// secureJoin returns the prepared JOIN_MAIN on success, for the caller to
// hand to completeJoin, or nil if any step lost a race. A nil result is
// not an error: the next low-contention observation will try again.
func (s *Set) secureJoin(b *node, left bool) *node {
	p := b.parent

	var n0 *node
	if left {
		n0 = leftmost(p.right.Load())
	} else {
		n0 = rightmost(p.left.Load())
	}
	if !replaceable(n0) {
		return nil
	}

	m := &node{k: kindJoinMain, parent: p, bucket: b.bucket, stat: b.stat}
	preparing := &joinSlotValue{state: joinPreparing}
	m.neigh2.Store(preparing)
	if !s.tryReplace(b, m) {
		return nil
	}

	n1 := &node{k: kindJoinNeighbor, parent: n0.parent, bucket: n0.bucket, stat: n0.stat, main: m}
	if !s.tryReplace(n0, n1) {
		m.neigh2.Store(&joinSlotValue{state: joinAborted})
		s.logJoinAborted(b, left)
		return nil
	}

	if !p.joinID.CompareAndSwap(nil, m) {
		m.neigh2.Store(&joinSlotValue{state: joinAborted})
		s.logJoinAborted(b, left)
		return nil
	}

	gparent, ok := parentOf(s.root.Load(), p)
	if !ok {
		p.joinID.CompareAndSwap(m, nil)
		m.neigh2.Store(&joinSlotValue{state: joinAborted})
		s.logJoinAborted(b, left)
		return nil
	}
	if gparent != nil && !gparent.joinID.CompareAndSwap(nil, m) {
		p.joinID.CompareAndSwap(m, nil)
		m.neigh2.Store(&joinSlotValue{state: joinAborted})
		s.logJoinAborted(b, left)
		return nil
	}

	m.gparent = gparent
	m.neigh1 = n1
	if left {
		m.otherBranch = p.right.Load()
	} else {
		m.otherBranch = p.left.Load()
	}

	joinedParent := n1.parent
	if m.otherBranch == n1 {
		joinedParent = gparent
	}

	var merged *bucket.Bucket
	if left {
		merged = bucket.Merge(m.bucket, n1.bucket)
	} else {
		merged = bucket.Merge(n1.bucket, m.bucket)
	}
	replacement := &node{k: kindJoinNeighbor, parent: joinedParent, bucket: merged, stat: n1.stat, main: m}

	if m.neigh2.CompareAndSwap(preparing, &joinSlotValue{state: joinReplacement, replacement: replacement}) {
		s.logJoinSecured(b, left)
		return m
	}

	// A helper aborted us between our two publications above.
	if gparent != nil {
		gparent.joinID.CompareAndSwap(m, nil)
	}
	p.joinID.CompareAndSwap(m, nil)
	m.neigh2.Store(&joinSlotValue{state: joinAborted})
	s.logJoinAborted(b, left)
	return nil
}

// completeJoin finishes a join whose JOIN_MAIN has a published replacement
// in neigh2, collapsing the join's route parent out of the tree. Every CAS
// failure here is benign: it means a concurrent helper already completed
// this step.
func (s *Set) completeJoin(m *node) {
	n2 := m.neigh2.Load()
	if n2.state == joinDone {
		return
	}

	s.tryReplace(m.neigh1, n2.replacement)
	m.parent.valid.Store(false)

	replacement := m.otherBranch
	if m.otherBranch == m.neigh1 {
		replacement = n2.replacement
	}

	switch {
	case m.gparent == nil:
		s.root.CompareAndSwap(m.parent, replacement)
	case m.gparent.left.Load() == m.parent:
		m.gparent.left.CompareAndSwap(m.parent, replacement)
		m.gparent.joinID.CompareAndSwap(m, nil)
	case m.gparent.right.Load() == m.parent:
		m.gparent.right.CompareAndSwap(m.parent, replacement)
		m.gparent.joinID.CompareAndSwap(m, nil)
	}

	m.neigh2.Store(&joinSlotValue{state: joinDone})
	s.logJoinCompleted(m)
}

// helpIfNeeded completes or aborts whatever in-progress descriptor n
// carries, so that a stalled operation can never block another thread.
// It is the single mechanism backing this tree's lock-freedom.
func (s *Set) helpIfNeeded(n *node) {
	if n.k == kindJoinNeighbor {
		n = n.main
	}
	if n.k == kindJoinMain {
		v := n.neigh2.Load()
		switch v.state {
		case joinPreparing:
			n.neigh2.CompareAndSwap(v, &joinSlotValue{state: joinAborted})
		case joinReplacement:
			s.completeJoin(n)
		}
		return
	}
	if n.k == kindRange && n.descriptor.result.Load() == nil {
		s.allInRange(n.lo, n.hi, n.descriptor)
	}
}
