package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRecord 网关返回的一行原始数据
// 字段名/大小写因存储过程而异（同一语义字段历史上出现过多种键名），
// 值可能是 string/number/bool/null，部分路径把 SQL NULL 编码成字面 "NULL"
type RawRecord map[string]any

const (
	// DefaultString 字符串字段无法解析时的哨兵默认值
	DefaultString = "N/A"
	// UnknownName 姓名各部分全空时的占位
	UnknownName = "Unknown"
)

// truthyStrings 网关历史上用过的布尔真值字符串编码
var truthyStrings = map[string]bool{
	"1":    true,
	"true": true,
	"True": true,
	"Y":    true,
}

// IsAbsent 判断来源值是否等价于 SQL NULL
// 覆盖：nil、空串、字面 "NULL"/"null"。所有字段解析统一走这里，
// 不在各调用点各写一套
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		t := strings.TrimSpace(s)
		return t == "" || t == "NULL" || t == "null"
	}
	return false
}

// PickString 按优先级从候选键里取第一个有效值，string 化并去首尾空白
// 全部无效时返回 DefaultString
func (r RawRecord) PickString(keys ...string) string {
	if v, ok := r.pick(keys); ok {
		return strings.TrimSpace(stringify(v))
	}
	return DefaultString
}

// PickRaw 同 PickString，但无效时返回空串
// 用于日期、照片文件名这类不需要 N/A 占位的字段
func (r RawRecord) PickRaw(keys ...string) string {
	if v, ok := r.pick(keys); ok {
		return strings.TrimSpace(stringify(v))
	}
	return ""
}

// PickInt 按优先级取第一个能解析成整数的值，失败返回 0
func (r RawRecord) PickInt(keys ...string) int {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || IsAbsent(v) {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case int64:
			return int(n)
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i)
			}
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return i
			}
		}
	}
	return 0
}

// PickBool 宽容布尔：true、数值 1、遗留字符串编码算真，其余（含 "0"）一律为假
func (r RawRecord) PickBool(keys ...string) bool {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || IsAbsent(v) {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case float64:
			return b == 1
		case int:
			return b == 1
		case string:
			return truthyStrings[strings.TrimSpace(b)]
		}
		return false
	}
	return false
}

func (r RawRecord) pick(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && !IsAbsent(v) {
			return v, true
		}
	}
	return nil, false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON 数值默认按 float64 解出来；整数不带小数输出
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// JoinNameParts 过滤空值和 N/A 占位后用单个空格连接姓名各部分
// 全空时返回 UnknownName
func JoinNameParts(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == DefaultString {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return UnknownName
	}
	return strings.Join(out, " ")
}
