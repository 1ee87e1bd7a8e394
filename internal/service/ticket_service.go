package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/normalize"
)

// TicketService 帮助工单服务接口
type TicketService interface {
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*CreateTicketResponse, error)
}

type CreateTicketRequest struct {
	UnitID      string
	Subject     string
	Description string
	Category    string
	Priority    string
}

type CreateTicketResponse struct {
	Ticket *domain.HelpTicket `json:"ticket"`
}

// ticketService 实现
type ticketService struct {
	gw     *gateway.Client
	logger *zap.Logger
}

// NewTicketService 创建 TicketService 实例
func NewTicketService(gw *gateway.Client, logger *zap.Logger) TicketService {
	return &ticketService{gw: gw, logger: logger}
}

func (s *ticketService) CreateTicket(ctx context.Context, req CreateTicketRequest) (*CreateTicketResponse, error) {
	if req.UnitID == "" {
		return nil, fmt.Errorf("unit id is required")
	}
	if req.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}

	values := gateway.NewValues().
		AddString("Unit_Id", req.UnitID).
		AddString("Subject", req.Subject).
		AddOptString("Description", req.Description).
		AddOptString("Category", req.Category).
		AddOptString("Priority", req.Priority)

	records, err := s.gw.Invoke(ctx, procHelpTicketInsert, values)
	if err != nil {
		return nil, err
	}

	// 插入过程回传确认行；有的部署只回 id，归一化兜住两种情况
	ticket := &domain.HelpTicket{
		TicketID:    normalize.DefaultString,
		TicketNo:    normalize.DefaultString,
		UnitName:    normalize.DefaultString,
		Subject:     req.Subject,
		Category:    normalize.DefaultString,
		Priority:    normalize.DefaultString,
		CreatedAt:   "",
		Description: req.Description,
	}
	if len(records) > 0 {
		if t, err := normalize.NormalizeHelpTicket(records[0]); err == nil {
			ticket = t
		}
	}

	s.logger.Info("help ticket created",
		zap.String("unit_id", req.UnitID),
		zap.String("ticket_id", ticket.TicketID),
	)
	return &CreateTicketResponse{Ticket: ticket}, nil
}
