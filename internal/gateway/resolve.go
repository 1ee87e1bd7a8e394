package gateway

import (
	"societylink-data/internal/normalize"
)

// listContainerKeys 各存储过程包裹行列表用过的容器键，按优先级排列
var listContainerKeys = []string{"Data", "data", "Result", "Results", "results", "Records", "records"}

// ResolveRecordList 从任意形状的网关响应里取出行列表
// 网关没有统一的响应契约：有的过程直接返回数组，有的包一层容器键，
// 有的单行查询直接返回对象。形状差异在这里统一吸收，归一化层不再分支。
// 规则按优先级：
//  1. 本身是数组 → 原样返回
//  2. 对象且某个容器键的值是数组 → 返回该数组
//  3. 非空对象（没有容器键命中）→ 视为单行，包成单元素列表
//  4. 其余（null/标量/空对象）→ 空列表
//
// 查不到数据不是错误，空列表是正常结果；空态还是报错由调用方决定
func ResolveRecordList(parsed any) []normalize.RawRecord {
	switch v := parsed.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		for _, key := range listContainerKeys {
			if inner, ok := v[key].([]any); ok {
				return toRecords(inner)
			}
		}
		if len(v) == 0 {
			return []normalize.RawRecord{}
		}
		return []normalize.RawRecord{normalize.RawRecord(v)}
	}
	return []normalize.RawRecord{}
}

func toRecords(items []any) []normalize.RawRecord {
	out := make([]normalize.RawRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, normalize.RawRecord(m))
		}
	}
	return out
}
