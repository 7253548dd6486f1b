package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestPasswordResetDoesNotLeakToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const token = "11111111-2222-3333-4444-555555555555"

	origIssue, origSend := issueResetToken, sendResetEmail
	defer func() { issueResetToken, sendResetEmail = origIssue, origSend }()

	var sentTo, sentToken string
	issueResetToken = func(email string) (string, error) {
		return token, nil
	}
	sendResetEmail = func(to, tok string) error {
		sentTo, sentToken = to, tok
		return nil
	}

	r := gin.New()
	r.POST("/auth/password-reset", RequestPasswordReset)

	req := httptest.NewRequest(http.MethodPost, "/auth/password-reset",
		strings.NewReader(`{"email":"lifter@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if sentTo != "lifter@example.com" || sentToken != token {
		t.Errorf("mailer got (%q, %q), want (%q, %q)", sentTo, sentToken, "lifter@example.com", token)
	}
	if strings.Contains(w.Body.String(), token) {
		t.Errorf("response body leaks the reset token: %s", w.Body.String())
	}
}
