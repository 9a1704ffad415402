// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import (
	"slices"
	"testing"

	"github.com/relaxedb/lfcatree/internal/slicesutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIteratesAscending(t *testing.T) {
	s := New(WithSplitThreshold(4))
	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		s.Insert(k)
	}

	got := slices.Collect(s.All(0, 10))
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)
	assert.True(t, slicesutil.EqualUnsorted(got, []int{9, 8, 5, 3, 2, 1}))
}

func TestAllStopsEarly(t *testing.T) {
	s := New()
	for i := 0; i < 20; i++ {
		s.Insert(i)
	}

	var seen []int
	for k := range s.All(0, 19) {
		seen = append(seen, k)
		if len(seen) == 3 {
			break
		}
	}
	assert.Len(t, seen, 3)
}

func TestAllPanicsOnInvalidRange(t *testing.T) {
	s := New()
	assert.Panics(t, func() {
		for range s.All(5, 1) {
		}
	})
}

func TestRangeResultsNeverOverlapDisjointQueries(t *testing.T) {
	s := New(WithSplitThreshold(4))
	for i := 0; i < 100; i++ {
		s.Insert(i)
	}

	low, err := s.RangeQuery(0, 24)
	require.NoError(t, err)
	high, err := s.RangeQuery(25, 49)
	require.NoError(t, err)

	slices.Sort(low)
	slices.Sort(high)
	assert.False(t, slicesutil.Overlap(low, high))
}
