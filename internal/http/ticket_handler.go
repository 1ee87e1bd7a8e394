package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"societylink-data/internal/service"
)

// TicketHandler 帮助工单接口
type TicketHandler struct {
	tickets       service.TicketService
	defaultUnitID string
	logger        *zap.Logger
}

// NewTicketHandler 创建工单 Handler
func NewTicketHandler(tickets service.TicketService, defaultUnitID string, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		tickets:       tickets,
		defaultUnitID: defaultUnitID,
		logger:        logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *TicketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/society/api/v1/tickets" || r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.CreateTicket(w, r)
}

type createTicketBody struct {
	UnitID      string `json:"unit_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var body createTicketBody
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if body.UnitID == "" {
		body.UnitID = h.defaultUnitID
	}
	if body.UnitID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("unit_id is required"))
		return
	}
	if body.Subject == "" {
		writeJSON(w, http.StatusBadRequest, Fail("subject is required"))
		return
	}

	resp, err := h.tickets.CreateTicket(r.Context(), service.CreateTicketRequest{
		UnitID:      body.UnitID,
		Subject:     body.Subject,
		Description: body.Description,
		Category:    body.Category,
		Priority:    body.Priority,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}
