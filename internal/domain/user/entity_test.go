//go:build unit

package user_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "標準的なメールアドレスOK", raw: "host@example.com", valid: true},
		{name: "サブドメインOK", raw: "driver@mail.example.co.jp", valid: true},
		{name: "プラス記号OK", raw: "user+tag@example.com", valid: true},
		{name: "アットマークなしNG", raw: "not-an-email"},
		{name: "ドメインなしNG", raw: "user@"},
		{name: "TLDなしNG", raw: "user@localhost"},
		{name: "空文字NG", raw: ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, email.String())
			} else {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("host@example.com")
	require.NoError(t, err)

	t.Run("新規ユーザーはアクティブで作成される", func(t *testing.T) {
		u, err := user.NewUser(email, "hashed-password", "Host User")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "host@example.com", u.Email().String())
		assert.Equal(t, "hashed-password", u.HashedPassword())
		assert.Equal(t, "Host User", u.Name())
		assert.True(t, u.IsActive())
	})

	t.Run("名前なしNG", func(t *testing.T) {
		_, err := user.NewUser(email, "hashed-password", "")
		assert.ErrorIs(t, err, user.ErrMissingName)
	})
}

func TestReconstructUser(t *testing.T) {
	email, err := user.NewEmail("inactive@example.com")
	require.NoError(t, err)

	id := uuid.New()
	createdAt := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

	u := user.ReconstructUser(id, email, "stored-hash", "Stored User", false, createdAt)
	assert.Equal(t, id, u.ID())
	assert.Equal(t, "stored-hash", u.HashedPassword())
	assert.False(t, u.IsActive())
	assert.Equal(t, createdAt, u.CreatedAt())
}
