package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "dismissals:user-1", RedisKey(PfxDismissals, "user-1"))
	assert.Equal(t, "a:b:c", RedisKey("a", "b", "c"))
}

func TestGetPrefix(t *testing.T) {
	assert.Equal(t, "feedPaging:marketplace", GetPrefix("feedPaging:marketplace:endingSoon:0"))
	assert.Equal(t, "healthcheck", GetPrefix("healthcheck:probe"))
	assert.Equal(t, "", GetPrefix("bare"))
}
