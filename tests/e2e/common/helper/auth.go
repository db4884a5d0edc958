//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	commonhttp "parkspot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// APIで新規ユーザーを登録してトークンとIDを返す
func RegisterUser(t *testing.T, router *gin.Engine, email, name string) (string, uuid.UUID) {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/register", request.RegisterRequest{
		Email:    email,
		Password: TestPassword,
		Name:     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var resp response.AuthResponse
	commonhttp.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)

	return resp.AccessToken, resp.User.ID
}

func Login(t *testing.T, router *gin.Engine, email, password string) *response.AuthResponse {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	if w.Code != http.StatusOK {
		return nil
	}

	var resp response.AuthResponse
	commonhttp.DecodeResponseBody(t, w.Body, &resp)
	return &resp
}
