package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	user        *dmn.User
	registerErr error
	signInErr   error
}

func (f *fakeAuth) Register(context.Context, string, string) error {
	return f.registerErr
}

func (f *fakeAuth) SignIn(context.Context, string, string) (*dmn.User, string, error) {
	if f.signInErr != nil {
		return nil, "", f.signInErr
	}
	return f.user, "signed-token", nil
}

func post(engine http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func newIdentityEngine(auth *fakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewIdentityServer(auth).RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func TestRegister(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "Created", status: http.StatusCreated},
		{name: "Taken", err: dmn.ErrUsernameTaken, status: http.StatusConflict},
		{name: "Weak password", err: dmn.ErrWeakPassword, status: http.StatusBadRequest},
		{name: "Bad username", err: dmn.ErrUsernameFormat, status: http.StatusBadRequest},
		{name: "Store failure", err: assert.AnError, status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newIdentityEngine(&fakeAuth{registerErr: tc.err})
			w := post(engine, "/api/v1/auth/register", AuthRequest{Username: "ada_l", Password: "whatever"})
			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("Missing fields", func(t *testing.T) {
		engine := newIdentityEngine(&fakeAuth{})
		w := post(engine, "/api/v1/auth/register", gin.H{"username": "ada_l"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	user := &dmn.User{ID: uuid.New(), Username: "ada_l"}

	t.Run("Success", func(t *testing.T) {
		engine := newIdentityEngine(&fakeAuth{user: user})
		w := post(engine, "/api/v1/auth/login", AuthRequest{Username: "ada_l", Password: "pw"})
		require.Equal(t, http.StatusOK, w.Code)

		var response AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, AuthResponse{ID: user.ID.String(), Username: "ada_l", Token: "signed-token"}, response)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		engine := newIdentityEngine(&fakeAuth{signInErr: service.ErrInvalidCredentials})
		w := post(engine, "/api/v1/auth/login", AuthRequest{Username: "ada_l", Password: "pw"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenizer := token.NewJwtService("secret", "pathfinder")
	userID := uuid.New()

	engine := gin.New()
	engine.GET("/me", Authoriz(tokenizer), func(c *gin.Context) {
		id, err := UserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	valid, err := tokenizer.Generate(map[string]interface{}{service.ClaimUserID: userID.String()}, time.Hour)
	require.NoError(t, err)
	noUser, err := tokenizer.Generate(map[string]interface{}{"role": "guest"}, time.Hour)
	require.NoError(t, err)
	expired, err := tokenizer.Generate(map[string]interface{}{service.ClaimUserID: userID.String()}, -time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "Valid", header: "Bearer " + valid, status: http.StatusOK},
		{name: "Missing header", status: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic " + valid, status: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "No user claim", header: "Bearer " + noUser, status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}
