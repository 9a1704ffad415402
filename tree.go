// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import (
	"log/slog"
	"sync/atomic"

	"github.com/relaxedb/lfcatree/internal/bucket"
)

// Set is a concurrent ordered set of ints backed by a Lock-Free
// Contention-Adapting search tree. The zero value is not usable; construct
// one with [New] or [NewChecked].
//
// Every exported method is safe to call concurrently from any number of
// goroutines, including concurrently with itself.
type Set struct {
	root atomic.Pointer[node]

	splitThreshold       int
	lowContention        int
	highContention       int
	contentionContrib    int
	lowContentionContrib int
	rangeContrib         int

	logger *slog.Logger
}

// New constructs a [Set], applying opts over the defaults documented on
// [SplitThreshold], [LowContention], [HighContention], [ContentionContrib],
// [LowContentionContrib] and [RangeContrib]. Options that describe a
// nonsensical configuration are silently ignored, in the same spirit as
// fox's WithXxx options: New never fails. Callers that want a hard failure
// on misconfiguration should use [NewChecked].
func New(opts ...Option) *Set {
	s := &Set{
		splitThreshold:       SplitThreshold,
		lowContention:        LowContention,
		highContention:       HighContention,
		contentionContrib:    ContentionContrib,
		lowContentionContrib: LowContentionContrib,
		rangeContrib:         RangeContrib,
	}
	for _, o := range opts {
		o.apply(s)
	}
	s.root.Store(newNormal(nil, bucket.Empty(), 0))
	return s
}

// NewChecked is like [New] but validates the resulting configuration,
// returning [ErrInvalidConfig] instead of silently ignoring a nonsensical
// split threshold or contention band.
func NewChecked(opts ...Option) (*Set, error) {
	s := New(opts...)
	if s.splitThreshold < 2 || s.lowContention >= s.highContention {
		return nil, ErrInvalidConfig
	}
	return s, nil
}

// findBase descends from the root to the base node owning key. It is
// read-only, lock-free, and may observe a stale node; callers that mutate
// re-verify through try_replace (see doUpdate, maybeAdapt).
func (s *Set) findBase(key int) *node {
	n := s.root.Load()
	for n.k == kindRoute {
		if key < n.splitKey {
			n = n.left.Load()
		} else {
			n = n.right.Load()
		}
	}
	return n
}

// findBaseWithStack is like findBase, but appends every route node visited
// to stack, supporting the range-query cursor (allInRange, findNextBase).
func (s *Set) findBaseWithStack(key int, stack *[]*node) *node {
	n := s.root.Load()
	for n.k == kindRoute {
		*stack = append(*stack, n)
		if key < n.splitKey {
			n = n.left.Load()
		} else {
			n = n.right.Load()
		}
	}
	*stack = append(*stack, n)
	return n
}

// tryReplace performs a CAS on the slot through which b is reachable: the
// root slot if b has no parent, else whichever of its parent's left/right
// slots currently holds b.
func (s *Set) tryReplace(b, nb *node) bool {
	if b.parent == nil {
		return s.root.CompareAndSwap(b, nb)
	}
	if b.parent.left.Load() == b {
		return b.parent.left.CompareAndSwap(b, nb)
	}
	if b.parent.right.Load() == b {
		return b.parent.right.CompareAndSwap(b, nb)
	}
	return false
}

// leftmost descends n's left spine to the leftmost base reachable from n.
func leftmost(n *node) *node {
	for n.k == kindRoute {
		n = n.left.Load()
	}
	return n
}

// rightmost descends n's right spine to the rightmost base reachable from n.
func rightmost(n *node) *node {
	for n.k == kindRoute {
		n = n.right.Load()
	}
	return n
}

// parentOf walks from root toward target using target's split key and
// returns the last route node visited before reaching it. ok is false
// (the NOT_FOUND case) when the walk diverges from target before arriving
// -- a concurrent structural change raced us. target must be a route node;
// parent is nil, ok true when target is the root.
//
// This resolves the open question left by the source: parent_of's guard
// that only returns a parent when the visited node is a route is
// intentional, not a bug -- it is exactly how a diverged search is
// detected.
func parentOf(root, target *node) (parent *node, ok bool) {
	curr := root
	for curr != target && curr.k == kindRoute {
		parent = curr
		if target.splitKey < curr.splitKey {
			curr = curr.left.Load()
		} else {
			curr = curr.right.Load()
		}
	}
	if curr.k != kindRoute {
		return nil, false
	}
	return parent, true
}
