package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsagePercentage(t *testing.T) {
	assert.Equal(t, 50.0, UsagePercentage(500, 1000))
	assert.Equal(t, 100.0, UsagePercentage(1000, 1000))

	// 超支
	assert.Equal(t, 150.0, UsagePercentage(1500, 1000))

	// 限额为 0 不抛除零错误，直接返回 0
	assert.Equal(t, 0.0, UsagePercentage(500, 0))
	assert.Equal(t, 0.0, UsagePercentage(0, 0))
}
