package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/normalize"
)

// 静态字典组名（其余组按数字 group id 走网关引用列表）
const (
	LookupStates    = "states"
	LookupCountries = "countries"
)

// ErrUnknownLookupGroup 组名既不是静态组也不是数字 group id，属于客户端传参错误
var ErrUnknownLookupGroup = errors.New("unknown lookup group")

// LookupService 下拉字典服务接口
type LookupService interface {
	ListOptions(ctx context.Context, req ListOptionsRequest) (*ListOptionsResponse, error)
}

type ListOptionsRequest struct {
	// Group 静态组名（states/countries）或网关引用列表的数字 group id
	Group string
}

type ListOptionsResponse struct {
	Items []*domain.DropdownOption `json:"items"`
}

// lookupService 实现
type lookupService struct {
	gw     *gateway.Client
	logger *zap.Logger
}

// NewLookupService 创建 LookupService 实例
func NewLookupService(gw *gateway.Client, logger *zap.Logger) LookupService {
	return &lookupService{gw: gw, logger: logger}
}

func (s *lookupService) ListOptions(ctx context.Context, req ListOptionsRequest) (*ListOptionsResponse, error) {
	switch req.Group {
	case LookupStates:
		return &ListOptionsResponse{Items: staticOptions(stateNames)}, nil
	case LookupCountries:
		return &ListOptionsResponse{Items: staticOptions(countryNames)}, nil
	}

	groupID, err := strconv.Atoi(req.Group)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLookupGroup, req.Group)
	}

	values := gateway.NewValues().AddInt("Group_Id", groupID)
	records, err := s.gw.Invoke(ctx, procCommonListGet, values)
	if err != nil {
		return nil, err
	}

	items := normalize.NormalizeBatch(records, normalize.NormalizeDropdownOption, s.logger)
	return &ListOptionsResponse{Items: items}, nil
}

// staticOptions 静态表的 label 同时作为 value（网关那边也是按名字存的）
func staticOptions(names []string) []*domain.DropdownOption {
	out := make([]*domain.DropdownOption, 0, len(names))
	for _, name := range names {
		out = append(out, &domain.DropdownOption{Label: name, Value: name})
	}
	return out
}
