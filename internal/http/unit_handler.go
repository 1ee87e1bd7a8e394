package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/models"
	"societylink-data/internal/service"
)

// UnitHandler 单元清单接口
type UnitHandler struct {
	units  service.UnitService
	logger *zap.Logger
}

// NewUnitHandler 创建单元 Handler
func NewUnitHandler(units service.UnitService, logger *zap.Logger) *UnitHandler {
	return &UnitHandler{units: units, logger: logger}
}

// ServeHTTP 实现 http.Handler 接口
func (h *UnitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/society/api/v1/units" || r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.ListUnits(w, r)
}

type unitListResult struct {
	Items      []*domain.Unit    `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

func (h *UnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.units.ListUnits(r.Context(), service.ListUnitsRequest{Wing: q.Get("wing")})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items, pagination := paginate(resp.Items, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))
	writeJSON(w, http.StatusOK, Ok(unitListResult{Items: items, Pagination: pagination}))
}
