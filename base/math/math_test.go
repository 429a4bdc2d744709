package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilInt(t *testing.T) {
	assert.Equal(t, 0, CeilInt(0, 100))
	assert.Equal(t, 1, CeilInt(1, 100))
	assert.Equal(t, 1, CeilInt(100, 100))
	assert.Equal(t, 2, CeilInt(101, 100))
}

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, 1, MinInt(1, 2))
	assert.Equal(t, 2, MaxInt(1, 2))
}
