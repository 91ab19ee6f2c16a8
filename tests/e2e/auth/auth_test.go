//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tourbook/internal/pkg/cookie"
	"tourbook/tests/common/dbtest"
	"tourbook/tests/common/httptest"
	"tourbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		Email    string `json:"email"`
		Role     string `json:"role"`
		IsActive bool   `json:"is_active"`
	} `json:"user"`
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: valid credentials",
			email:          dbtest.AdminEmail,
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: unknown user",
			email:          "nobody@tourbook.test",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: wrong password",
			email:          dbtest.AdminEmail,
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: empty email rejected by binding",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error case: short password rejected by binding",
			email:          dbtest.AdminEmail,
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := map[string]string{
				"email":    tt.email,
				"password": tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, "Response: %s", w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res loginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, tt.email, res.User.Email)
			require.Equal(t, "admin", res.User.Role)
			require.True(t, res.User.IsActive)

			require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
		})
	}

	s.Run("Error case: deactivated account cannot log in", func() {
		t := s.T()

		_, err := s.DB.Exec(t.Context(),
			"UPDATE users SET is_active = FALSE WHERE email = $1", dbtest.StaffEmail)
		require.NoError(t, err)

		reqBody := map[string]string{
			"email":    dbtest.StaffEmail,
			"password": dbtest.TestPassword,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: refresh cookie yields a new token pair", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]string{"email": dbtest.StaffEmail, "password": dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		refreshCookie := httptest.ExtractCookie(login, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
		require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
	})

	s.Run("Normal case: refresh token accepted in request body", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]string{"email": dbtest.StaffEmail, "password": dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		refreshCookie := httptest.ExtractCookie(login, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			map[string]string{"refresh_token": refreshCookie.Value}, "")
		require.Equal(t, http.StatusNoContent, w.Code, "Response: %s", w.Body.String())
	})

	s.Run("Error case: missing refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			map[string]string{"refresh_token": "not-a-jwt"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMeAndLogout() {
	s.Run("Normal case: authenticated user fetches own profile", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]string{"email": dbtest.StaffEmail, "password": dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		var loginRes loginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, login.Body, &loginRes))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, loginRes.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)

		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, dbtest.StaffEmail, me.Email)
		require.Equal(t, "staff", me.Role)
	})

	s.Run("Error case: anonymous profile request rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: logout clears the token cookies", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]string{"email": dbtest.AdminEmail, "password": dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		var loginRes loginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, login.Body, &loginRes))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, loginRes.AccessToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
