package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/models"
	"societylink-data/internal/service"
)

// VisitorHandler 访客接口（列表/签入/签出）
type VisitorHandler struct {
	visitors      service.VisitorService
	defaultUnitID string
	logger        *zap.Logger
}

// NewVisitorHandler 创建访客 Handler
// defaultUnitID 来自配置，query 未带 unit_id 时兜底（显式注入，不走全局常量）
func NewVisitorHandler(visitors service.VisitorService, defaultUnitID string, logger *zap.Logger) *VisitorHandler {
	return &VisitorHandler{
		visitors:      visitors,
		defaultUnitID: defaultUnitID,
		logger:        logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *VisitorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/society/api/v1/visitors" && r.Method == http.MethodGet:
		h.ListVisitors(w, r)
	case r.URL.Path == "/society/api/v1/visitors" && r.Method == http.MethodPost:
		h.CheckIn(w, r)
	case strings.HasPrefix(r.URL.Path, "/society/api/v1/visitors/") &&
		strings.HasSuffix(r.URL.Path, "/checkout") && r.Method == http.MethodPost:
		h.CheckOut(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type visitorListResult struct {
	Items      []*domain.Visitor `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

func (h *VisitorHandler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	unitID := q.Get("unit_id")
	if unitID == "" {
		unitID = h.defaultUnitID
	}
	if unitID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("unit_id is required"))
		return
	}

	resp, err := h.visitors.ListVisitors(r.Context(), service.ListVisitorsRequest{
		UnitID: unitID,
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items, pagination := paginate(resp.Items, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))
	writeJSON(w, http.StatusOK, Ok(visitorListResult{Items: items, Pagination: pagination}))
}

type checkInBody struct {
	UnitID     string `json:"unit_id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Purpose    string `json:"purpose"`
	VehicleNo  string `json:"vehicle_no"`
	GuestCount int    `json:"guest_count"`
	PhotoFile  string `json:"photo_file"`
}

func (h *VisitorHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var body checkInBody
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
	if body.FirstName == "" && body.LastName == "" {
		writeJSON(w, http.StatusBadRequest, Fail("visitor name is required"))
		return
	}

	resp, err := h.visitors.CheckInVisitor(r.Context(), service.CheckInVisitorRequest{
		UnitID:     body.UnitID,
		FirstName:  body.FirstName,
		MiddleName: body.MiddleName,
		LastName:   body.LastName,
		Phone:      body.Phone,
		Purpose:    body.Purpose,
		VehicleNo:  body.VehicleNo,
		GuestCount: body.GuestCount,
		PhotoFile:  body.PhotoFile,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

func (h *VisitorHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	// 必须是 /visitors/{id}/checkout 三段式；裸 /visitors/checkout 没有 id，按 400 处理
	rest := strings.TrimPrefix(r.URL.Path, "/society/api/v1/visitors/")
	id, ok := strings.CutSuffix(rest, "/checkout")
	if !ok || id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, Fail("visitor id is required"))
		return
	}

	resp, err := h.visitors.CheckOutVisitor(r.Context(), service.CheckOutVisitorRequest{VisitorID: id})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}
