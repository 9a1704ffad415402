package iterutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqOf(t *testing.T) {
	got := slices.Collect(SeqOf(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMap(t *testing.T) {
	got := slices.Collect(Map(SeqOf(1, 2, 3), func(i int) int { return i * i }))
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestLeftRight(t *testing.T) {
	m := map[int]string{1: "a"}
	seq2 := func(yield func(int, string) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
	assert.Equal(t, []int{1}, slices.Collect(Left(seq2)))
	assert.Equal(t, []string{"a"}, slices.Collect(Right(seq2)))
}

func TestLen2(t *testing.T) {
	seq2 := func(yield func(int, int) bool) {
		for i := 0; i < 5; i++ {
			if !yield(i, i) {
				return
			}
		}
	}
	assert.Equal(t, 5, Len2(seq2))
}

func TestEarlyStop(t *testing.T) {
	var seen []int
	for v := range Map(SeqOf(1, 2, 3, 4, 5), func(i int) int { return i }) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}
