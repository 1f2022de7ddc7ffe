package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("client-a", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be blocked")
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("client-b", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	_, err := limiter.Allow("client-a", config)
	require.NoError(t, err)

	require.NoError(t, limiter.Reset("client-a"))

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_GetRemaining(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 10}

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow("client-a", config)
		require.NoError(t, err)
	}

	count, err := limiter.GetRemaining("client-a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestMemoryRateLimiter_ZeroLimitIsUnlimited(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{}

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(fmt.Sprintf("burst-%d", i%3), config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
