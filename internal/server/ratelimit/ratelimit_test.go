package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/match", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
			{Path: "/jobs/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/match", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/match", "POST")
	assert.True(t, allowed)
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/match", "POST")
	limiter.Allow("1.2.3.4", "/match", "POST")

	allowed, info := limiter.Allow("1.2.3.4", "/match", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/match", "POST")
	limiter.Allow("1.2.3.4", "/match", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/match", "POST")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistBypasses(t *testing.T) {
	config := testConfig()
	config.Whitelist["1.2.3.4"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/match", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_BlacklistRejects(t *testing.T) {
	config := testConfig()
	config.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/match", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/match", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/match", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 60, config.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/jobs/abc-123/match", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, "/jobs/", config.Path)
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.LessOrEqual(t, config.Limit, 0)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/unknown", "DELETE", DefaultEndpointConfigs()))
}

func TestMatchEndpoint_MethodMatters(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/match", "GET", DefaultEndpointConfigs()))
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	// 10 tokens/second, capacity 1.
	bucket := newTokenBucket(1, 10)

	require.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(150 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestParseIPList(t *testing.T) {
	result := parseIPList("1.2.3.4, 5.6.7.8 ,")
	assert.True(t, result["1.2.3.4"])
	assert.True(t, result["5.6.7.8"])
	assert.Len(t, result, 2)
}
