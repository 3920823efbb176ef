// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisfromscratch/quadtree/geom"
)

func TestCollectSet(t *testing.T) {
	t.Run("Deduplicates", func(t *testing.T) {
		tree := New(percent, 2)
		p := geom.Point{X: 5, Y: 5}
		for _, id := range []int{7, 7, 9, 7} {
			require.True(t, tree.Insert(id, p))
		}

		set, err := CollectSet(tree.Intersect(p))

		require.NoError(t, err)
		assert.Equal(t, []uint32{7, 9}, set.ToArray())
		assert.Len(t, tree.Intersect(p).Collect(), 4)
	})

	t.Run("Empty", func(t *testing.T) {
		set, err := New(percent, 2).Candidates(percent)

		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name     string
			id       int
			expected string
		}{
			{"Negative", -1, "quadtree: id out of candidate set range: -1"},
			{"TooLarge", math.MaxUint32 + 1, "quadtree: id out of candidate set range: 4294967296"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				if testCase.id > 0 && math.MaxInt == math.MaxInt32 {
					t.Skip("Skipping: This test case requires 64 bit ints")
				}
				tree := New(percent, 2)
				require.True(t, tree.Insert(testCase.id, geom.Point{X: 1, Y: 1}))

				set, err := tree.Candidates(percent)

				assert.Nil(t, set)
				assert.ErrorIs(t, err, ErrIDRange)
				assert.EqualError(t, err, testCase.expected)
			})
		}
	})

	t.Run("MaxID", func(t *testing.T) {
		tree := New(percent, 2)
		require.True(t, tree.Insert(math.MaxUint32, geom.Point{X: 1, Y: 1}))

		set, err := tree.Candidates(percent)

		require.NoError(t, err)
		assert.True(t, set.Contains(math.MaxUint32))
	})
}
