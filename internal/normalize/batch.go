package normalize

import (
	"fmt"

	"go.uber.org/zap"
)

// NormalizeBatch 逐条归一化整批记录
// 单条失败（返回错误或 panic）只跳过该条并记日志，不中断整批；
// 输出保持输入的相对顺序（下游分页和列表 key 依赖这一点）
func NormalizeBatch[T any](records []RawRecord, fn func(RawRecord) (T, error), logger *zap.Logger) []T {
	out := make([]T, 0, len(records))
	for i, raw := range records {
		item, err := normalizeOne(raw, fn)
		if err != nil {
			logger.Warn("skipping malformed record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		out = append(out, item)
	}
	return out
}

func normalizeOne[T any](raw RawRecord, fn func(RawRecord) (T, error)) (item T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("normalize panic: %v", r)
		}
	}()
	return fn(raw)
}
