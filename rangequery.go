// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

// RangeQuery returns every key k currently in the set with lo <= k <= hi,
// in no particular order, linearized to the single CAS that finalizes the
// underlying range descriptor. It returns [ErrInvalidRange] if lo > hi.
func (s *Set) RangeQuery(lo, hi int) ([]int, error) {
	if lo > hi {
		return nil, ErrInvalidRange
	}
	return s.allInRange(lo, hi, nil), nil
}

// allInRange implements the multi-base snapshot protocol described in the
// design: publish a range descriptor on the first base covering lo,
// extend it rightward over every contiguous base until one whose bucket
// reaches hi, then finalize the concatenation of their snapshots.
//
// helpDescriptor is non-nil when allInRange is being re-driven on behalf
// of another thread's still-unset descriptor (see helpIfNeeded); in that
// case the caller doesn't want a new query, it wants this one finished.
func (s *Set) allInRange(lo, hi int, helpDescriptor *rangeDescriptor) []int {
	var stack, backup, done []*node
	var desc *rangeDescriptor

findFirst:
	stack = stack[:0]
	b := s.findBaseWithStack(lo, &stack)

	switch {
	case helpDescriptor != nil:
		if b.k != kindRange || b.descriptor != helpDescriptor {
			return resultOrNil(helpDescriptor)
		}
		desc = helpDescriptor
	case replaceable(b):
		desc = &rangeDescriptor{}
		n := cloneAsRange(b, lo, hi, desc)
		if !s.tryReplace(b, n) {
			goto findFirst
		}
		replaceTop(stack, n)
		b = n
	case b.k == kindRange && b.lo <= lo && b.hi >= hi:
		var keys []int
		for _, k := range s.allInRange(b.lo, b.hi, b.descriptor) {
			if k >= lo && k <= hi {
				keys = append(keys, k)
			}
		}
		return keys
	default:
		s.helpIfNeeded(b)
		goto findFirst
	}

	done = done[:0]
	for {
		done = append(done, b)
		backup = append(backup[:0], stack...)

		if b.bucket.Len() > 0 && b.bucket.Max() >= hi {
			break
		}

	findNext:
		nb := findNextBase(&stack)
		if nb == nil {
			break
		}
		if r := desc.result.Load(); r != nil {
			return r.keys
		}
		if nb.k == kindRange && nb.descriptor == desc {
			b = nb
			continue
		}
		if replaceable(nb) {
			n := cloneAsRange(nb, lo, hi, desc)
			if s.tryReplace(nb, n) {
				replaceTop(stack, n)
				b = n
				continue
			}
			stack = append(stack[:0], backup...)
			goto findNext
		}
		s.helpIfNeeded(nb)
		stack = append(stack[:0], backup...)
		goto findNext
	}

	keys := make([]int, 0, len(done))
	for _, bn := range done {
		keys = append(keys, bn.bucket.RangeQuery(lo, hi)...)
	}
	finalized := &rangeResult{keys: keys}
	if desc.result.CompareAndSwap(nil, finalized) {
		if len(done) > 1 {
			desc.moreThanOneBase.Store(true)
		}
		// Supplements the source's commented-out call: the last base the
		// query touched gets an adaptation check, with its statistic read
		// as is. The more_than_one_base penalty is applied separately, by
		// newStat, when a later update replaces one of the RANGE bases.
		s.maybeAdapt(done[len(done)-1])
	}
	return desc.result.Load().keys
}

// resultOrNil returns the finalized keys of desc, or nil if somehow still
// unset (only reachable if the owner we were helping raced us to
// completion through a different path; returning nil here is harmless
// since our caller is itself a helper, not the original invoker).
func resultOrNil(desc *rangeDescriptor) []int {
	if r := desc.result.Load(); r != nil {
		return r.keys
	}
	return nil
}

// replaceTop overwrites the last element of stack in place -- the base
// most recently found by findBaseWithStack or findNextBase -- with n.
func replaceTop(stack []*node, n *node) {
	if len(stack) > 0 {
		stack[len(stack)-1] = n
	}
}

// findNextBase pops the current base off stack, then ascends until it
// finds a route node whose left child was the just-popped path element
// (descending that route's right subtree leftmost), or a valid route
// whose split key exceeds the last-seen boundary (same descent). Routes
// invalidated by a completed join are popped past. Returns nil once the
// stack is exhausted.
func findNextBase(stack *[]*node) *node {
	st := *stack
	if len(st) == 0 {
		return nil
	}
	poppedBase := st[len(st)-1]
	st = st[:len(st)-1] // pop the base itself
	if len(st) == 0 {
		*stack = st
		return nil
	}

	t := st[len(st)-1]
	if t.left.Load() == poppedBase {
		*stack = st
		return leftmostAndStack(t.right.Load(), stack)
	}

	beGreaterThan := t.splitKey
	for len(st) > 0 {
		t = st[len(st)-1]
		if t.valid.Load() && t.splitKey > beGreaterThan {
			*stack = st
			return leftmostAndStack(t.right.Load(), stack)
		}
		st = st[:len(st)-1]
	}
	*stack = st
	return nil
}

// leftmostAndStack descends n's left spine, pushing every route visited
// onto stack, and returns the base it lands on (also pushed).
func leftmostAndStack(n *node, stack *[]*node) *node {
	for n.k == kindRoute {
		*stack = append(*stack, n)
		n = n.left.Load()
	}
	*stack = append(*stack, n)
	return n
}
