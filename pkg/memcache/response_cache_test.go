package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCacheSetGet(t *testing.T) {
	c := NewResponseCache(time.Minute)

	c.Set("key", []string{"a", "b"})
	got, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestResponseCacheMiss(t *testing.T) {
	c := NewResponseCache(time.Minute)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestResponseCacheExpiry(t *testing.T) {
	c := NewResponseCache(10 * time.Millisecond)

	c.Set("key", 1)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestResponseCacheDelete(t *testing.T) {
	c := NewResponseCache(time.Minute)

	c.Set("key", 1)
	c.Delete("key")

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestResponseCacheDefaultTTL(t *testing.T) {
	c := NewResponseCache(0)

	c.Set("key", 1)
	_, ok := c.Get("key")
	assert.True(t, ok)
}
