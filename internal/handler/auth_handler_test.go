package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shobhanashankar/TourSafe/internal/middleware"
	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	signupUser  *model.User
	signupToken string
	signupErr   error
	loginUser   *model.User
	loginToken  string
	loginErr    error
	deviceErr   error

	registeredDevice string
}

func (f *fakeAuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	return f.signupUser, f.signupToken, f.signupErr
}

func (f *fakeAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	return f.loginUser, f.loginToken, f.loginErr
}

func (f *fakeAuthService) RegisterDevice(ctx context.Context, userID string, deviceToken string) error {
	f.registeredDevice = deviceToken
	return f.deviceErr
}

func testReporter(t *testing.T) *telemetry.Reporter {
	t.Helper()
	r, err := telemetry.Init("")
	assert.NoError(t, err)
	return r
}

func authTestRouter(t *testing.T, svc service.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc, testReporter(t))
	// The fake routes skip real token validation and inject the identity
	authMW := func(c *gin.Context) { c.Set(middleware.AuthUserKey, "u1"); c.Next() }
	h.RegisterAuthRoutes(router.Group("/api"), authMW)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &fakeAuthService{signupUser: &model.User{Name: "Asha", Email: "a@x.com"}, signupToken: "tok"}
	router := authTestRouter(t, svc)

	w := postJSON(router, "/api/users/signup", `{"name":"Asha","email":"a@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAuthHandler_Signup_DuplicateEmailIs400(t *testing.T) {
	svc := &fakeAuthService{signupErr: service.ErrEmailTaken}
	router := authTestRouter(t, svc)

	w := postJSON(router, "/api/users/signup", `{"name":"Asha","email":"a@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAuthHandler_Signup_InvalidBody(t *testing.T) {
	router := authTestRouter(t, &fakeAuthService{})

	w := postJSON(router, "/api/users/signup", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredentialsIs400(t *testing.T) {
	svc := &fakeAuthService{loginErr: service.ErrInvalidCredentials}
	router := authTestRouter(t, svc)

	w := postJSON(router, "/api/users/login", `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrInvalidCredentials.Error())
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeAuthService{loginUser: &model.User{Email: "a@x.com"}, loginToken: "tok2"}
	router := authTestRouter(t, svc)

	w := postJSON(router, "/api/users/login", `{"email":"a@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok2"`)
}

func TestAuthHandler_RegisterDevice(t *testing.T) {
	svc := &fakeAuthService{}
	router := authTestRouter(t, svc)

	w := postJSON(router, "/api/register-device", `{"token":"fcm-token"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fcm-token", svc.registeredDevice)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
