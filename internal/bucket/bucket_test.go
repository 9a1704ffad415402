// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	b := Empty()
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Contains(1))
	assert.Empty(t, b.RangeQuery(-100, 100))
}

func TestInsertedLeavesReceiverUntouched(t *testing.T) {
	b := Empty()

	b1, grew := b.Inserted(5)
	require.True(t, grew)
	assert.Equal(t, 0, b.Len(), "original bucket must stay empty")
	assert.Equal(t, 1, b1.Len())
	assert.True(t, b1.Contains(5))

	b2, grew := b1.Inserted(5)
	assert.False(t, grew)
	assert.Same(t, b1, b2, "inserting a duplicate returns the receiver unchanged")
}

func TestInsertedKeepsSortedOrder(t *testing.T) {
	b := Empty()
	for _, k := range []int{5, 1, 9, 3, 7} {
		var ok bool
		b, ok = b.Inserted(k)
		require.True(t, ok)
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, b.RangeQuery(minInt, maxInt))
}

func TestRemovedLeavesReceiverUntouched(t *testing.T) {
	b := Empty()
	b, _ = b.Inserted(1)
	b, _ = b.Inserted(2)
	b, _ = b.Inserted(3)

	b1, shrunk := b.Removed(2)
	require.True(t, shrunk)
	assert.Equal(t, 3, b.Len(), "original bucket must be unaffected by Removed")
	assert.False(t, b1.Contains(2))
	assert.Equal(t, []int{1, 3}, b1.RangeQuery(minInt, maxInt))

	b2, shrunk := b1.Removed(2)
	assert.False(t, shrunk)
	assert.Same(t, b1, b2, "removing an absent key returns the receiver unchanged")
}

func TestRangeQueryBounds(t *testing.T) {
	b := Empty()
	for i := 0; i < 10; i++ {
		b, _ = b.Inserted(i)
	}
	assert.Equal(t, []int{3, 4, 5}, b.RangeQuery(3, 5))
	assert.Equal(t, []int{0}, b.RangeQuery(-5, 0))
	assert.Empty(t, b.RangeQuery(100, 200))
}

func TestMinMax(t *testing.T) {
	b := Empty()
	for _, k := range []int{4, 1, 7} {
		b, _ = b.Inserted(k)
	}
	assert.Equal(t, 1, b.Min())
	assert.Equal(t, 7, b.Max())
}

func TestSplitThenMergeRoundTrips(t *testing.T) {
	b := Empty()
	for i := 0; i < 8; i++ {
		b, _ = b.Inserted(i)
	}

	left, right, splitKey := b.Split()
	assert.Less(t, left.Max(), splitKey)
	assert.GreaterOrEqual(t, right.Min(), splitKey)
	assert.Equal(t, b.Len(), left.Len()+right.Len())

	merged := Merge(left, right)
	assert.Equal(t, b.RangeQuery(minInt, maxInt), merged.RangeQuery(minInt, maxInt))
}

func TestMergeWithEmptyOperand(t *testing.T) {
	b := Empty()
	b, _ = b.Inserted(1)
	b, _ = b.Inserted(2)

	assert.Equal(t, b.RangeQuery(minInt, maxInt), Merge(Empty(), b).RangeQuery(minInt, maxInt))
	assert.Equal(t, b.RangeQuery(minInt, maxInt), Merge(b, Empty()).RangeQuery(minInt, maxInt))
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
