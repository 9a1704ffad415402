// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import (
	"iter"
	"sort"

	"github.com/relaxedb/lfcatree/internal/iterutil"
)

// All returns an iterator over every key currently in the set within
// [lo, hi], in ascending order. It is built on top of RangeQuery and
// offers the same linearization guarantee; it exists for callers that
// prefer range-over-func to collecting a slice up front.
//
// All panics if lo > hi, the same condition under which RangeQuery
// returns [ErrInvalidRange].
func (s *Set) All(lo, hi int) iter.Seq[int] {
	keys, err := s.RangeQuery(lo, hi)
	if err != nil {
		panic(err)
	}
	sort.Ints(keys)
	return iterutil.SeqOf(keys...)
}
