// internal/app/system/ratelimit/ratelimit_test.go
package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllow_EnforcesLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("4th request should be limited")
	}
	// Other keys are unaffected.
	if !l.Allow("5.6.7.8") {
		t.Error("different key should be allowed")
	}
}

func TestAllow_WindowExpires(t *testing.T) {
	l := New(1, 30*time.Millisecond)

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request should be limited")
	}
	time.Sleep(50 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestReset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("should be limited before reset")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("should be allowed after reset")
	}
}

func TestRemaining(t *testing.T) {
	l := New(5, time.Minute)
	if got := l.Remaining("k"); got != 5 {
		t.Errorf("fresh key remaining = %d, want 5", got)
	}
	l.Allow("k")
	l.Allow("k")
	if got := l.Remaining("k"); got != 3 {
		t.Errorf("remaining = %d, want 3", got)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{name: "forwarded for", xff: "203.0.113.7, 10.0.0.1", remote: "10.0.0.2:80", want: "203.0.113.7"},
		{name: "real ip", xri: "203.0.113.8", remote: "10.0.0.2:80", want: "203.0.113.8"},
		{name: "remote addr", remote: "203.0.113.9:4567", want: "203.0.113.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
