package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter returns a limiter with a controllable clock.
func newTestLimiter(config *Config) (*Limiter, *time.Time) {
	config.CleanupInterval = 0
	l := NewLimiter(config)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/options", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
		assert.True(t, info.ResetTime.After(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)))
	}

	allowed, info := l.Allow("127.0.0.1", "/options", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
}

func TestLimiter_Refill(t *testing.T) {
	l, now := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: 10 * time.Second})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		l.Allow("c", "/", "GET")
	}
	allowed, _ := l.Allow("c", "/", "GET")
	require.False(t, allowed)

	*now = now.Add(time.Second)
	allowed, _ = l.Allow("c", "/", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/", "GET")
	assert.False(t, allowed)
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/resume", "GET")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.2", "/resume", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, DefaultLimit: 1})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("c", "/assist/generate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_EndpointGroups(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(30, 20),
	})
	defer l.Stop()

	// assist endpoints share one burst of 5
	paths := []string{"/assist/generate", "/assist/ats", "/assist/keywords", "/assist/job-match", "/assist/generate"}
	for _, p := range paths {
		allowed, info := l.Allow("c", p, "POST")
		require.True(t, allowed, p)
		assert.Equal(t, 30, info.Limit)
	}
	allowed, _ := l.Allow("c", "/assist/ats", "POST")
	assert.False(t, allowed)

	// other groups are unaffected
	allowed, _ = l.Allow("c", "/resume", "GET")
	assert.True(t, allowed)
	allowed, info := l.Allow("c", "/export/pdf", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 20, info.Limit)

	// other clients have their own buckets
	allowed, _ = l.Allow("other", "/assist/ats", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour})
	defer l.Stop()

	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("c", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer l.Stop()

	var allowedCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/resume", "GET"); ok {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(100), allowedCount.Load())
}

func TestLimiter_CleanupEntries(t *testing.T) {
	l, now := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute, IdleTTL: time.Hour})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow(fmt.Sprintf("client-%d", i), "/resume", "GET")
	}
	require.Equal(t, 3, l.Len())

	*now = now.Add(30 * time.Minute)
	l.Allow("client-0", "/resume", "GET")
	*now = now.Add(45 * time.Minute)
	l.cleanupEntries()
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(nil)
	assert.NotPanics(t, func() {
		l.Stop()
		l.Stop()
	})
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs(30, 20)

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{name: "assist prefix", path: "/assist/generate", method: "POST", wantPath: "/assist/"},
		{name: "exact beats prefix", path: "/export/pdf", method: "GET", wantPath: "/export/pdf"},
		{name: "export prefix", path: "/export/html", method: "GET", wantPath: "/export/"},
		{name: "any method prefix", path: "/resume/lists/skills/abc", method: "DELETE", wantPath: "/resume/"},
		{name: "exact resume put", path: "/resume", method: "PUT", wantPath: "/resume"},
		{name: "resume read uses default", path: "/resume", method: "GET", wantNil: true},
		{name: "wrong method", path: "/assist/generate", method: "GET", wantNil: true},
		{name: "health", path: "/health", method: "GET", wantPath: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_ASSIST_LIMIT", "7")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, map[string]bool{"1.1.1.1": true, "2.2.2.2": true}, cfg.Whitelist)
	require.NotNil(t, MatchEndpoint("/assist/ats", "POST", cfg.EndpointConfigs))
	assert.Equal(t, 7, MatchEndpoint("/assist/ats", "POST", cfg.EndpointConfigs).Limit)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
