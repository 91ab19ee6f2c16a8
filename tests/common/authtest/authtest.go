//go:build e2e

// Package authtest logs users in through the public API for e2e suites.
package authtest

import (
	"net/http"
	"testing"

	"tourbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates through POST /api/auth/login and returns the access
// token for use as a Bearer credential.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	require.NotEmpty(t, response.AccessToken, "login returned empty access token")

	return response.AccessToken
}
