package service

import (
	"context"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/normalize"
)

// UnitService 单元清单服务接口
type UnitService interface {
	ListUnits(ctx context.Context, req ListUnitsRequest) (*ListUnitsResponse, error)
}

type ListUnitsRequest struct {
	Wing string // 可选，按楼栋/翼过滤
}

type ListUnitsResponse struct {
	Items []*domain.Unit `json:"items"`
}

// unitService 实现
type unitService struct {
	gw     *gateway.Client
	guard  *FetchGuard
	logger *zap.Logger
}

// NewUnitService 创建 UnitService 实例
func NewUnitService(gw *gateway.Client, logger *zap.Logger) UnitService {
	return &unitService{
		gw:     gw,
		guard:  NewFetchGuard(),
		logger: logger,
	}
}

func (s *unitService) ListUnits(ctx context.Context, req ListUnitsRequest) (*ListUnitsResponse, error) {
	scope := "units:" + req.Wing
	gen := s.guard.Begin(scope)

	values := gateway.NewValues().AddOptString("Wing", req.Wing)
	records, err := s.gw.Invoke(ctx, procUnitGet, values)
	if err != nil {
		return nil, err
	}

	items := normalize.NormalizeBatch(records, normalize.NormalizeUnit, s.logger)
	if !s.guard.Current(scope, gen) {
		return nil, ErrStaleFetch
	}
	return &ListUnitsResponse{Items: items}, nil
}
