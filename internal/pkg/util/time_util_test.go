package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "", FormatTimeAgo(time.Time{}, now))
	assert.Equal(t, "1d", FormatTimeAgo(now.Add(-2*time.Hour), now))
	assert.Equal(t, "1d", FormatTimeAgo(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "13d", FormatTimeAgo(now.AddDate(0, 0, -13), now))
	assert.Equal(t, "29d", FormatTimeAgo(now.AddDate(0, 0, -29), now))
	assert.Equal(t, "1m", FormatTimeAgo(now.AddDate(0, 0, -30), now))
	assert.Equal(t, "3m", FormatTimeAgo(now.AddDate(0, 0, -100), now))
	assert.Equal(t, "1y", FormatTimeAgo(now.AddDate(0, 0, -365), now))
	assert.Equal(t, "2y", FormatTimeAgo(now.AddDate(0, 0, -750), now))
}
