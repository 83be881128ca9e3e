package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbvaultapi/models"
	"dbvaultapi/services"
	"dbvaultapi/utils"
)

type fakeAuthService struct {
	registered map[string]bool
	// tokens maps accepted bearer tokens to users.
	tokens map[string]*models.User
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		registered: map[string]bool{},
		tokens:     map[string]*models.User{},
	}
}

func (f *fakeAuthService) Register(ctx context.Context, email, password string) error {
	if f.registered[email] {
		return utils.ErrConflict(utils.EmailAlreadyExist)
	}
	f.registered[email] = true
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return nil, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	if !f.registered[email] || password != "s3cret" {
		return nil, utils.ErrUnauthorized(utils.IncorrectEmailPassword)
	}
	return &services.LoginResult{Status: utils.Success, AccessToken: "token-" + email, TokenType: "bearer"}, nil
}

func (f *fakeAuthService) ResolveCurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	if user, ok := f.tokens[tokenString]; ok {
		return user, nil
	}
	return nil, utils.ErrUnauthorized(utils.InvalidCredentials)
}

func setupRouter(t *testing.T, auth services.AuthService, creds services.CredentialService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetAuthService(auth)
	SetCredentialService(creds)

	r := gin.New()
	RegisterHealthRoutes(r)
	RegisterUserRoutes(r)
	RegisterDBOperationRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := setupRouter(t, newFakeAuthService(), newFakeCredentialService())

	w := doJSON(t, r, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRegisterTwiceConflicts(t *testing.T) {
	r := setupRouter(t, newFakeAuthService(), newFakeCredentialService())
	body := `{"email":"user@example.com","password":"s3cret"}`

	w := doJSON(t, r, http.MethodPost, "/user/register", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"`+utils.UserRegisteredSuccessfully+`"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/user/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"`+utils.EmailAlreadyExist+`"}`, w.Body.String())
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	r := setupRouter(t, newFakeAuthService(), newFakeCredentialService())

	w := doJSON(t, r, http.MethodPost, "/user/register", `{"email":"not-an-email","password":"pw"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginReturnsTokenEnvelope(t *testing.T) {
	auth := newFakeAuthService()
	auth.registered["user@example.com"] = true
	r := setupRouter(t, auth, newFakeCredentialService())

	w := doJSON(t, r, http.MethodPost, "/user/login", `{"email":"user@example.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data services.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, utils.Success, resp.Data.Status)
	assert.Equal(t, "bearer", resp.Data.TokenType)
	assert.NotEmpty(t, resp.Data.AccessToken)
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	auth := newFakeAuthService()
	auth.registered["user@example.com"] = true
	r := setupRouter(t, auth, newFakeCredentialService())

	unknown := doJSON(t, r, http.MethodPost, "/user/login", `{"email":"nobody@example.com","password":"s3cret"}`, "")
	wrongPw := doJSON(t, r, http.MethodPost, "/user/login", `{"email":"user@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}
