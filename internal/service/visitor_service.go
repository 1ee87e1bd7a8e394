package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/normalize"
	"societylink-data/internal/photos"
)

// VisitorService 访客管理服务接口
type VisitorService interface {
	ListVisitors(ctx context.Context, req ListVisitorsRequest) (*ListVisitorsResponse, error)
	CheckInVisitor(ctx context.Context, req CheckInVisitorRequest) (*CheckInVisitorResponse, error)
	CheckOutVisitor(ctx context.Context, req CheckOutVisitorRequest) (*CheckOutVisitorResponse, error)
}

type ListVisitorsRequest struct {
	UnitID string // 必填（单元范围显式传入，不读全局默认值）
	From   string // 可选 DD/MM/YYYY
	To     string // 可选 DD/MM/YYYY
}

type ListVisitorsResponse struct {
	Items []*domain.Visitor `json:"items"`
}

type CheckInVisitorRequest struct {
	UnitID     string
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Purpose    string
	VehicleNo  string
	GuestCount int
	PhotoFile  string
}

type CheckInVisitorResponse struct {
	VisitorID string               `json:"visitor_id"`
	Status    domain.VisitorStatus `json:"status"`
}

type CheckOutVisitorRequest struct {
	VisitorID string
}

type CheckOutVisitorResponse struct {
	VisitorID string `json:"visitor_id"`
}

// visitorService 实现
type visitorService struct {
	gw            *gateway.Client
	photos        *photos.Resolver
	guard         *FetchGuard
	photoWorkers  int
	primaryFolder string
	logger        *zap.Logger
	now           func() time.Time // 测试可替换
}

// NewVisitorService 创建 VisitorService 实例
func NewVisitorService(gw *gateway.Client, resolver *photos.Resolver, photoWorkers int, primaryFolder string, logger *zap.Logger) VisitorService {
	return &visitorService{
		gw:            gw,
		photos:        resolver,
		guard:         NewFetchGuard(),
		photoWorkers:  photoWorkers,
		primaryFolder: primaryFolder,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *visitorService) ListVisitors(ctx context.Context, req ListVisitorsRequest) (*ListVisitorsResponse, error) {
	if req.UnitID == "" {
		return nil, fmt.Errorf("unit id is required")
	}

	scope := "visitors:" + req.UnitID
	gen := s.guard.Begin(scope)

	values := gateway.NewValues().
		AddString("Unit_Id", req.UnitID).
		AddOptString("From_Date", req.From).
		AddOptString("To_Date", req.To)

	records, err := s.gw.Invoke(ctx, procVisitorGet, values)
	if err != nil {
		return nil, err
	}

	items := normalize.NormalizeBatch(records, normalize.NormalizeVisitor, s.logger)
	s.photos.EnrichVisitors(ctx, items, s.primaryFolder, s.photoWorkers)

	// 照片补全是慢路径；等完之后再校验代号，旧请求的结果在这里丢弃
	if !s.guard.Current(scope, gen) {
		s.logger.Debug("discarding stale visitor fetch",
			zap.String("unit_id", req.UnitID),
			zap.Uint64("generation", gen),
		)
		return nil, ErrStaleFetch
	}

	return &ListVisitorsResponse{Items: items}, nil
}

func (s *visitorService) CheckInVisitor(ctx context.Context, req CheckInVisitorRequest) (*CheckInVisitorResponse, error) {
	if req.UnitID == "" {
		return nil, fmt.Errorf("unit id is required")
	}
	if req.FirstName == "" && req.LastName == "" {
		return nil, fmt.Errorf("visitor name is required")
	}

	now := s.now()
	values := gateway.NewValues().
		AddString("Unit_Id", req.UnitID).
		AddString("First_Name", req.FirstName).
		AddOptString("Middle_Name", req.MiddleName).
		AddOptString("Last_Name", req.LastName).
		AddOptString("Mobile_No", req.Phone).
		AddOptString("Purpose", req.Purpose).
		AddOptString("Vehicle_No", req.VehicleNo).
		AddInt("Guest_Count", req.GuestCount).
		AddOptString("Photo", req.PhotoFile).
		AddString("Check_In_Date", now.Format("02/01/2006")).
		AddString("Check_In_Time", now.Format("15:04"))

	records, err := s.gw.Invoke(ctx, procVisitorInsert, values)
	if err != nil {
		return nil, err
	}

	resp := &CheckInVisitorResponse{Status: domain.VisitorCheckedIn}
	if len(records) > 0 {
		resp.VisitorID = records[0].PickString("Visitor_Id", "VisitorId", "Id", "ID")
	}
	s.logger.Info("visitor checked in",
		zap.String("unit_id", req.UnitID),
		zap.String("visitor_id", resp.VisitorID),
	)
	return resp, nil
}

func (s *visitorService) CheckOutVisitor(ctx context.Context, req CheckOutVisitorRequest) (*CheckOutVisitorResponse, error) {
	if req.VisitorID == "" {
		return nil, fmt.Errorf("visitor id is required")
	}

	now := s.now()
	values := gateway.NewValues().
		AddString("Visitor_Id", req.VisitorID).
		AddString("Check_Out_Date", now.Format("02/01/2006")).
		AddString("Check_Out_Time", now.Format("15:04"))

	if _, err := s.gw.Invoke(ctx, procVisitorCheckOut, values); err != nil {
		return nil, err
	}

	s.logger.Info("visitor checked out", zap.String("visitor_id", req.VisitorID))
	return &CheckOutVisitorResponse{VisitorID: req.VisitorID}, nil
}
