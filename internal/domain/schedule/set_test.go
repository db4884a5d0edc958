//go:build unit

package schedule_test

import (
	"math/rand"
	"testing"

	"parkspot/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSet(spans ...[2]int) *schedule.Set {
	st := schedule.NewSet()
	for _, s := range spans {
		st.Add(s[0], s[1])
	}
	return st
}

// requireMerged asserts the sorted, strictly-separated invariant.
func requireMerged(t *testing.T, st *schedule.Set) {
	t.Helper()
	ivs := st.Intervals()
	for i, iv := range ivs {
		require.Less(t, iv.Start, iv.End, "interval %d has non-positive length", i)
		if i > 0 {
			require.Less(t, ivs[i-1].End, iv.Start,
				"intervals %d and %d overlap or touch", i-1, i)
		}
	}
}

func TestSetAdd(t *testing.T) {
	cases := []struct {
		name  string
		spans [][2]int
		want  []schedule.Interval
	}{
		{
			name:  "overlapping pair merges",
			spans: [][2]int{{1, 5}, {3, 8}},
			want:  []schedule.Interval{{Start: 1, End: 8}},
		},
		{
			name:  "overlapping pair merges regardless of order",
			spans: [][2]int{{3, 8}, {1, 5}},
			want:  []schedule.Interval{{Start: 1, End: 8}},
		},
		{
			name:  "touching intervals merge",
			spans: [][2]int{{1, 3}, {3, 5}},
			want:  []schedule.Interval{{Start: 1, End: 5}},
		},
		{
			name:  "disjoint stays sorted even when added out of order",
			spans: [][2]int{{10, 12}, {0, 2}},
			want:  []schedule.Interval{{Start: 0, End: 2}, {Start: 10, End: 12}},
		},
		{
			name:  "bridge swallows multiple members",
			spans: [][2]int{{0, 2}, {4, 6}, {8, 10}, {1, 9}},
			want:  []schedule.Interval{{Start: 0, End: 10}},
		},
		{
			name:  "zero length dropped",
			spans: [][2]int{{5, 5}},
			want:  nil,
		},
		{
			name:  "inverted span dropped",
			spans: [][2]int{{6, 2}, {0, 1}},
			want:  []schedule.Interval{{Start: 0, End: 1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := buildSet(tc.spans...)
			requireMerged(t, st)
			if diff := cmp.Diff(tc.want, st.Intervals(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("intervals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetAddOrderIndependence(t *testing.T) {
	spans := [][2]int{{0, 3}, {2, 7}, {9, 11}, {11, 14}, {20, 25}}
	want := buildSet(spans...).Intervals()

	rng := rand.New(rand.NewSource(1))
	for range 20 {
		shuffled := make([][2]int, len(spans))
		copy(shuffled, spans)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		st := buildSet(shuffled...)
		requireMerged(t, st)
		assert.Equal(t, want, st.Intervals(), "order %v", shuffled)
	}
}

func TestSetContains(t *testing.T) {
	st := buildSet([2]int{0, 10}, [2]int{20, 30})

	assert.True(t, st.Contains(0, 10))
	assert.True(t, st.Contains(3, 5))
	assert.True(t, st.Contains(20, 21))
	assert.False(t, st.Contains(0, 11))
	assert.False(t, st.Contains(5, 5), "zero length never available")
	assert.False(t, st.Contains(9, 21), "cannot span a gap")
	assert.False(t, st.Contains(30, 31))
	assert.False(t, schedule.NewSet().Contains(0, 1))
}

func TestSetReserve(t *testing.T) {
	t.Run("interior split leaves two fragments", func(t *testing.T) {
		st := buildSet([2]int{0, 10})
		require.True(t, st.Reserve(3, 5))
		requireMerged(t, st)
		assert.Equal(t, []schedule.Interval{{Start: 0, End: 3}, {Start: 5, End: 10}}, st.Intervals())

		assert.False(t, st.Reserve(3, 5), "already consumed")
	})

	t.Run("exact match consumes entire interval", func(t *testing.T) {
		st := buildSet([2]int{0, 10})
		require.True(t, st.Reserve(0, 10))
		assert.Equal(t, 0, st.Len())
	})

	t.Run("left aligned leaves right fragment only", func(t *testing.T) {
		st := buildSet([2]int{0, 10})
		require.True(t, st.Reserve(0, 4))
		assert.Equal(t, []schedule.Interval{{Start: 4, End: 10}}, st.Intervals())
	})

	t.Run("right aligned leaves left fragment only", func(t *testing.T) {
		st := buildSet([2]int{0, 10})
		require.True(t, st.Reserve(6, 10))
		assert.Equal(t, []schedule.Interval{{Start: 0, End: 6}}, st.Intervals())
	})

	t.Run("rejects invalid and uncovered spans", func(t *testing.T) {
		st := buildSet([2]int{0, 10})
		assert.False(t, st.Reserve(5, 5))
		assert.False(t, st.Reserve(7, 3))
		assert.False(t, st.Reserve(8, 12))
		assert.Equal(t, []schedule.Interval{{Start: 0, End: 10}}, st.Intervals(), "failed reserve must not mutate")
	})
}

func TestSetInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := schedule.NewSet()

	for range 500 {
		s := rng.Intn(1440)
		e := s + rng.Intn(180) - 20 // sometimes invalid on purpose
		if rng.Intn(3) == 0 {
			st.Reserve(s, e)
		} else {
			st.Add(s, e)
		}
		requireMerged(t, st)
	}
}
