package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	// 5 reqs/sec, 10 reqs/min, 1s ban
	rl := NewRateLimiter(5, 10, 1*time.Second)
	ip := "127.0.0.1"

	// Initial requests should be allowed
	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(ip), "Request %d should be allowed", i)
	}

	// 6th request should fail due to per-second limit
	assert.False(t, rl.Allow(ip), "6th request should be blocked")
	assert.True(t, rl.IsBanned(ip), "IP should be banned")
}

func TestRateLimiter_BanExpiry(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 50, 2*time.Second)
	ip := "192.168.1.1"

	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow(ip), "Burst request %d should be allowed", i)
	}

	// 11th request should be blocked
	assert.False(t, rl.Allow(ip))
	assert.True(t, rl.IsBanned(ip))

	// Wait for ban to expire
	time.Sleep(2100 * time.Millisecond)

	assert.False(t, rl.IsBanned(ip))
	assert.True(t, rl.Allow(ip))
}

func TestRateLimiter_MinuteLimit(t *testing.T) {
	t.Parallel()

	// 100/sec but only 5/min
	rl := NewRateLimiter(100, 5, 1*time.Second)
	ip := "10.0.0.1"

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(ip))
	}

	// 6th request blocked by minute limit
	assert.False(t, rl.Allow(ip))
}

func TestRateLimiter_Concurrency(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(100, 200, 1*time.Second)
	var wg sync.WaitGroup
	successCount := 0
	var mu sync.Mutex

	// Concurrent requests from same IP
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("concurrent-test") {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Greater(t, successCount, 0)
	assert.LessOrEqual(t, successCount, 50)
}

func TestMessageRateLimiter(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(4)
	clientID := "client1"

	// First messages allowed without warning
	allowed, warning := ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.False(t, warning)

	ml.AllowMessage(clientID)

	// Past the warning threshold but still allowed
	allowed, warning = ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.True(t, warning)

	ml.AllowMessage(clientID)

	// Over the limit
	allowed, _ = ml.AllowMessage(clientID)
	assert.False(t, allowed)
	assert.Equal(t, 1, ml.GetWarningCount(clientID))

	// Removing the client resets its record
	ml.RemoveClient(clientID)
	allowed, warning = ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.False(t, warning)
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"wildcard allows anything", []string{"*"}, "http://evil.example.com", true},
		{"listed origin allowed", []string{"http://party.local"}, "http://party.local", true},
		{"case insensitive", []string{"http://Party.Local"}, "http://party.local", true},
		{"unlisted origin rejected", []string{"http://party.local"}, "http://other.local", false},
		{"empty origin allowed", []string{"http://party.local"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			oc := NewOriginChecker(tt.allowed)
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, oc.Check(r))
		})
	}
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.RemoteAddr = "10.1.2.3:51234"
	assert.Equal(t, "10.1.2.3", GetClientIP(r))

	r.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", GetClientIP(r))

	// X-Forwarded-For wins and the first hop is the client
	r.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "198.51.100.1", GetClientIP(r))
}
