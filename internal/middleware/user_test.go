package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestUserID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/profile", nil)
	if got := UserID(r); got != DefaultUser {
		t.Errorf("UserID = %q, want %q", got, DefaultUser)
	}

	r.Header.Set(UserHeader, "alex")
	if got := UserID(r); got != "alex" {
		t.Errorf("UserID = %q, want alex", got)
	}

	r.Header.Set(UserHeader, "   ")
	if got := UserID(r); got != DefaultUser {
		t.Errorf("UserID with blank header = %q, want %q", got, DefaultUser)
	}
}
