package util

import (
	"fmt"
	"time"
)

// FormatTimeAgo 把最近活跃时间压缩成列表里的 "3d" / "2m" / "1y" 形式
func FormatTimeAgo(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	diffDays := int(diff.Hours() / 24)

	switch {
	case diffDays == 0:
		return "1d"
	case diffDays < 30:
		return fmt.Sprintf("%dd", diffDays)
	case diffDays < 365:
		return fmt.Sprintf("%dm", diffDays/30)
	default:
		return fmt.Sprintf("%dy", diffDays/365)
	}
}
