// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWTManager(t *testing.T) {
	if _, err := NewJWTManager("", time.Hour); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("NewJWTManager(\"\") error = %v, want ErrEmptySecret", err)
	}
	m, err := NewJWTManager(testSecret, 0)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	if m.timeout != time.Hour {
		t.Errorf("timeout = %v, want 1h", m.timeout)
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	token, err := m.GenerateToken("operator", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != "operator" || claims.Role != RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m, _ := NewJWTManager(testSecret, time.Minute)
	other, _ := NewJWTManager("ffffffffffffffffffffffffffffffff", time.Minute)
	foreign, _ := other.GenerateToken("operator", RoleAdmin)

	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", expired},
		{"alg none", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tt.token); err == nil {
				t.Error("ValidateToken() error = nil, want error")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	m, _ := NewJWTManager(testSecret, time.Minute)
	admin, _ := m.GenerateToken("operator", RoleAdmin)
	viewer, _ := m.GenerateToken("someone", "viewer")

	var gotClaims *Claims
	handler := RequireRole(m, RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + admin, http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusNoContent},
		{"lowercase scheme", "bearer " + admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/index/rebuild", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
	if gotClaims == nil || gotClaims.Subject != "operator" {
		t.Errorf("claims in context = %+v, want operator", gotClaims)
	}
}

func TestRequireRole_NilManagerAdmitsAll(t *testing.T) {
	handler := RequireRole(nil, RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", http.NoBody))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
