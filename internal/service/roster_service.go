package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/normalize"
)

// RosterService 名册服务接口（住户 + 租客）
type RosterService interface {
	ListOccupants(ctx context.Context, req ListOccupantsRequest) (*ListOccupantsResponse, error)
	ListTenants(ctx context.Context, req ListTenantsRequest) (*ListTenantsResponse, error)
}

type ListOccupantsRequest struct {
	UnitID string // 必填
}

type ListOccupantsResponse struct {
	Items []*domain.Occupant `json:"items"`
}

type ListTenantsRequest struct {
	UnitID string // 必填
}

type ListTenantsResponse struct {
	Items []*domain.Tenant `json:"items"`
}

// rosterService 实现
type rosterService struct {
	gw     *gateway.Client
	guard  *FetchGuard
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(gw *gateway.Client, logger *zap.Logger) RosterService {
	return &rosterService{
		gw:     gw,
		guard:  NewFetchGuard(),
		logger: logger,
	}
}

func (s *rosterService) ListOccupants(ctx context.Context, req ListOccupantsRequest) (*ListOccupantsResponse, error) {
	if req.UnitID == "" {
		return nil, fmt.Errorf("unit id is required")
	}

	scope := "occupants:" + req.UnitID
	gen := s.guard.Begin(scope)

	values := gateway.NewValues().AddString("Unit_Id", req.UnitID)
	records, err := s.gw.Invoke(ctx, procOccupantGet, values)
	if err != nil {
		return nil, err
	}

	items := normalize.NormalizeBatch(records, normalize.NormalizeOccupant, s.logger)
	if !s.guard.Current(scope, gen) {
		return nil, ErrStaleFetch
	}
	return &ListOccupantsResponse{Items: items}, nil
}

func (s *rosterService) ListTenants(ctx context.Context, req ListTenantsRequest) (*ListTenantsResponse, error) {
	if req.UnitID == "" {
		return nil, fmt.Errorf("unit id is required")
	}

	scope := "tenants:" + req.UnitID
	gen := s.guard.Begin(scope)

	values := gateway.NewValues().AddString("Unit_Id", req.UnitID)
	records, err := s.gw.Invoke(ctx, procTenantGet, values)
	if err != nil {
		return nil, err
	}

	items := normalize.NormalizeBatch(records, normalize.NormalizeTenant, s.logger)
	if !s.guard.Current(scope, gen) {
		return nil, ErrStaleFetch
	}
	return &ListTenantsResponse{Items: items}, nil
}
