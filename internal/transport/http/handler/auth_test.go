package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-auth-profile/internal/application/auth"
	"github.com/go-auth-profile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) IdentitySignIn(ctx context.Context, token string) (*domain.UserProfile, error) {
	args := m.Called(ctx, token)
	if u, _ := args.Get(0).(*domain.UserProfile); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) RequestOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthSvc) VerifyOTP(ctx context.Context, email, code string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email, code)
	if u, _ := args.Get(0).(*domain.UserProfile); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(target string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	r := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// --- IdentitySignIn ---

func TestIdentitySignIn_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})
	r := httptest.NewRequest(http.MethodPost, "/auth/identity-signin", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.IdentitySignIn(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIdentitySignIn_VerificationFailure_Generic500(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("IdentitySignIn", mock.Anything, "bad").Return(nil, domain.ErrUnauthorized)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.IdentitySignIn(rr, postJSON("/auth/identity-signin", map[string]string{"token": "bad"}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp.Error) // no verification detail leaked
}

func TestIdentitySignIn_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	age := 25
	u := &domain.UserProfile{UserID: "u1", Email: "a@x.com", Name: "Alice", Age: &age, Role: domain.RoleStudent}
	svc.On("IdentitySignIn", mock.Anything, "tok").Return(u, nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.IdentitySignIn(rr, postJSON("/auth/identity-signin", map[string]string{"token": "tok"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SignInEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.ProfileComplete)
	assert.Equal(t, "a@x.com", resp.User.Email)
	svc.AssertExpectations(t)
}

func TestIdentitySignIn_ProjectionOmitsInternals(t *testing.T) {
	svc := &mockAuthSvc{}
	sub := "google-sub-1"
	u := &domain.UserProfile{UserID: "u1", Email: "a@x.com", GoogleSub: &sub}
	svc.On("IdentitySignIn", mock.Anything, "tok").Return(u, nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.IdentitySignIn(rr, postJSON("/auth/identity-signin", map[string]string{"token": "tok"}))

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	userObj := resp["user"].(map[string]interface{})
	_, hasSub := userObj["googleSub"]
	assert.False(t, hasSub)
	_, hasCreated := userObj["createdAt"]
	assert.False(t, hasCreated)
}

// --- RequestOTP ---

func TestRequestOTP_MissingEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestOTP", mock.Anything, "").Return(domain.ErrBadRequest)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/auth/request-otp", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequestOTP_GenericSuccessMessage(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestOTP", mock.Anything, "a@x.com").Return(nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/auth/request-otp", map[string]string{"email": "a@x.com"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, auth.RequestOTPMessage, resp.Message)
}

func TestRequestOTP_SendFailure_Generic500(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestOTP", mock.Anything, "a@x.com").Return(domain.ErrNotification)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.RequestOTP(rr, postJSON("/auth/request-otp", map[string]string{"email": "a@x.com"}))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// --- VerifyOTP ---

func TestVerifyOTP_InvalidCode(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "000000").Return(nil, domain.ErrInvalidOTP)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/auth/verify-otp", map[string]string{"email": "a@x.com", "otp": "000000"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "invalid otp", resp.Error)
}

func TestVerifyOTP_ExpiredCode_Distinguishable(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "123456").Return(nil, domain.ErrExpiredOTP)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/auth/verify-otp", map[string]string{"email": "a@x.com", "otp": "123456"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "otp expired", resp.Error)
}

func TestVerifyOTP_ProfileMissing_404(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "123456").Return(nil, domain.ErrNotFound)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/auth/verify-otp", map[string]string{"email": "a@x.com", "otp": "123456"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVerifyOTP_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	u := &domain.UserProfile{UserID: "u1", Email: "a@x.com", Name: "Alice"}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "123456").Return(u, nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/auth/verify-otp", map[string]string{"email": "a@x.com", "otp": "123456"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SignInEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.ProfileComplete) // age and role still unset
	svc.AssertExpectations(t)
}
