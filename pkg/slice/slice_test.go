// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/pkg/slice"
)

/*
TestMap verifies element transformation and nil passthrough.
*/
func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, slice.Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, slice.Map(nil, strconv.Itoa))
	assert.Equal(t, []string{}, slice.Map([]int{}, strconv.Itoa))
}

/*
TestFilter verifies predicate filtering.
*/
func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))
	assert.Nil(t, slice.Filter([]int{1, 3}, even))
	assert.Nil(t, slice.Filter(nil, even))
}

/*
TestChunk verifies consecutive sub-slice splitting.
*/
func TestChunk(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		size int
		want [][]int
	}{
		{"even_split", 5, [][]int{{1, 2, 3, 4, 5}}},
		{"partial_last_chunk", 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"size_one", 1, [][]int{{1}, {2}, {3}, {4}, {5}}},
		{"oversized", 10, [][]int{{1, 2, 3, 4, 5}}},
		{"non_positive_size", 0, [][]int{{1, 2, 3, 4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Chunk(input, tt.size))
		})
	}

	assert.Nil(t, slice.Chunk([]int{}, 2))
}

/*
TestTruncate verifies the batch bound helper.
*/
func TestTruncate(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, slice.Truncate(input, 3))
	assert.Equal(t, input, slice.Truncate(input, 5))
	assert.Equal(t, input, slice.Truncate(input, 10))
	assert.Empty(t, slice.Truncate(input, 0))
}
