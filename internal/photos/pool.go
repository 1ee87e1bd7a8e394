package photos

import (
	"context"

	"golang.org/x/sync/errgroup"

	"societylink-data/internal/domain"
)

// EnrichVisitors 并发补全整批访客的照片 URL
// 有界并发（workers 封顶），结果按原下标写回各自的记录，
// 列表顺序不变——下游分页和列表 key 依赖原始顺序
func (r *Resolver) EnrichVisitors(ctx context.Context, visitors []*domain.Visitor, primaryFolder string, workers int) {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, v := range visitors {
		v := v
		if !UsableFileName(v.PhotoFile) {
			continue
		}
		g.Go(func() error {
			v.PhotoURL = r.ResolveWithFallback(ctx, v.PhotoFile, primaryFolder)
			return nil
		})
	}

	// 查找失败只留空照片字段，永不中断整批
	_ = g.Wait()
}
