package normalize

import (
	"strings"
	"time"
)

var dateLayouts = []string{"02/01/2006", "2006-01-02"}

var clockLayouts = []string{"15:04:05", "15:04"}

// FormatDateTime 把网关的日期/时间字符串格式化为展示用文本
// 日期支持 DD/MM/YYYY 和 YYYY-MM-DD（可带 ISO 时间后缀），时间为 HH:MM[:SS]
// 任一部分解析失败时原样返回输入，展示层不处理解析异常
func FormatDateTime(dateStr, timeStr string) string {
	d := strings.TrimSpace(dateStr)
	if d == "" || IsAbsent(d) {
		return dateStr
	}
	day, ok := parseDate(d)
	if !ok {
		return joinOriginal(dateStr, timeStr)
	}

	t := strings.TrimSpace(timeStr)
	if t == "" || IsAbsent(t) {
		return day.Format("02 Jan 2006")
	}
	clock, ok := parseClock(t)
	if !ok {
		return joinOriginal(dateStr, timeStr)
	}

	combined := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	return combined.Format("02 Jan 2006, 03:04 PM")
}

func parseDate(s string) (time.Time, bool) {
	// "2024-05-12T00:00:00" 这类 ISO 串只取日期部分
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, s); err == nil {
			return c, true
		}
	}
	return time.Time{}, false
}

func joinOriginal(dateStr, timeStr string) string {
	t := strings.TrimSpace(timeStr)
	if t == "" || IsAbsent(t) {
		return dateStr
	}
	return strings.TrimSpace(dateStr) + " " + t
}
