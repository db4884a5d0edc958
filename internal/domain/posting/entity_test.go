//go:build unit

package posting_test

import (
	"testing"

	"parkspot/internal/domain/posting"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosting(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := posting.NewPosting(uuid.New(), "2025-07-14", 540, 1020)
		require.NoError(t, err)
		assert.False(t, p.IsReserved())
		assert.Equal(t, 540, p.StartMin())
		assert.Equal(t, 1020, p.EndMin())
	})

	t.Run("不正な範囲NG", func(t *testing.T) {
		for _, span := range [][2]int{{-10, 60}, {600, 600}, {720, 600}} {
			_, err := posting.NewPosting(uuid.New(), "2025-07-14", span[0], span[1])
			require.ErrorIs(t, err, posting.ErrInvalidSpan)
		}
	})
}

func TestPostingContainsSpan(t *testing.T) {
	p, err := posting.NewPosting(uuid.New(), "2025-07-14", 540, 1020)
	require.NoError(t, err)

	cases := []struct {
		name     string
		s, e     int
		expected bool
	}{
		{"完全一致", 540, 1020, true},
		{"内側の区間", 600, 720, true},
		{"左端に接する", 540, 600, true},
		{"右端に接する", 960, 1020, true},
		{"左にはみ出す", 480, 600, false},
		{"右にはみ出す", 960, 1080, false},
		{"長さゼロ", 600, 600, false},
		{"逆転した区間", 720, 600, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, p.ContainsSpan(c.s, c.e))
		})
	}
}

func TestPostingFragments(t *testing.T) {
	p, err := posting.NewPosting(uuid.New(), "2025-07-14", 540, 1020)
	require.NoError(t, err)

	t.Run("中央を予約すると両側が残る", func(t *testing.T) {
		assert.Equal(t, [][2]int{{540, 600}, {720, 1020}}, p.Fragments(600, 720))
	})
	t.Run("左端から予約すると右側だけ残る", func(t *testing.T) {
		assert.Equal(t, [][2]int{{720, 1020}}, p.Fragments(540, 720))
	})
	t.Run("右端まで予約すると左側だけ残る", func(t *testing.T) {
		assert.Equal(t, [][2]int{{540, 720}}, p.Fragments(720, 1020))
	})
	t.Run("全体を予約すると何も残らない", func(t *testing.T) {
		assert.Empty(t, p.Fragments(540, 1020))
	})
}
