//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"
	commonhttp "parkspot/tests/common/httptest"
	"parkspot/tests/e2e"
	"parkspot/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("正常な登録", func() {
		token, userID := helper.RegisterUser(s.T(), s.Router, "host@example.com", "Host User")
		require.NotEmpty(s.T(), token)
		require.NotEqual(s.T(), "00000000-0000-0000-0000-000000000000", userID.String())
	})

	s.Run("重複メールアドレスは登録できない", func() {
		helper.RegisterUser(s.T(), s.Router, "dup@example.com", "First")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "dup@example.com",
			Password: helper.TestPassword,
			Name:     "Second",
		}, "")
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("短すぎるパスワードは拒否", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "short@example.com",
			Password: "short",
			Name:     "Short",
		}, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	s.Run("有効な認証情報でログインできる", func() {
		helper.RegisterUser(s.T(), s.Router, "login@example.com", "Login User")

		resp := helper.Login(s.T(), s.Router, "login@example.com", helper.TestPassword)
		require.NotNil(s.T(), resp)
		require.NotEmpty(s.T(), resp.AccessToken)
		require.Equal(s.T(), "login@example.com", resp.User.Email)
	})

	s.Run("間違ったパスワードは401", func() {
		helper.RegisterUser(s.T(), s.Router, "wrongpass@example.com", "Wrong Pass")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "wrongpass@example.com",
			Password: "not-the-password",
		}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("存在しないユーザーは401", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "nobody@example.com",
			Password: helper.TestPassword,
		}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("トークンで自分の情報を取得できる", func() {
		token, userID := helper.RegisterUser(s.T(), s.Router, "me@example.com", "Me User")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var view queries.AuthorizedUserView
		commonhttp.DecodeResponseBody(s.T(), w.Body, &view)
		require.Equal(s.T(), userID, view.ID)
		require.Equal(s.T(), "me@example.com", view.Email)
		require.True(s.T(), view.IsActive)
	})

	s.Run("トークンなしは401", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestPublicProfile() {
	s.Run("認証なしで名前だけが見える", func() {
		_, userID := helper.RegisterUser(s.T(), s.Router, "public@example.com", "Public User")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users/"+userID.String(), nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		var view queries.PublicUserView
		commonhttp.DecodeResponseBody(s.T(), w.Body, &view)
		require.Equal(s.T(), userID, view.ID)
		require.Equal(s.T(), "Public User", view.Name)
	})

	s.Run("存在しないユーザーは404", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users/"+uuid.NewString(), nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
