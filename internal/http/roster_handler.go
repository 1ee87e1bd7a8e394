package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/models"
	"societylink-data/internal/service"
)

// RosterHandler 名册接口（住户/租客）
type RosterHandler struct {
	roster        service.RosterService
	defaultUnitID string
	logger        *zap.Logger
}

// NewRosterHandler 创建名册 Handler
func NewRosterHandler(roster service.RosterService, defaultUnitID string, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{
		roster:        roster,
		defaultUnitID: defaultUnitID,
		logger:        logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *RosterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/society/api/v1/occupants" && r.Method == http.MethodGet:
		h.ListOccupants(w, r)
	case r.URL.Path == "/society/api/v1/tenants" && r.Method == http.MethodGet:
		h.ListTenants(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *RosterHandler) unitID(r *http.Request) string {
	unitID := r.URL.Query().Get("unit_id")
	if unitID == "" {
		unitID = h.defaultUnitID
	}
	return unitID
}

type occupantListResult struct {
	Items      []*domain.Occupant `json:"items"`
	Pagination models.Pagination  `json:"pagination"`
}

func (h *RosterHandler) ListOccupants(w http.ResponseWriter, r *http.Request) {
	unitID := h.unitID(r)
	if unitID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("unit_id is required"))
		return
	}

	resp, err := h.roster.ListOccupants(r.Context(), service.ListOccupantsRequest{UnitID: unitID})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	q := r.URL.Query()
	items, pagination := paginate(resp.Items, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))
	writeJSON(w, http.StatusOK, Ok(occupantListResult{Items: items, Pagination: pagination}))
}

type tenantListResult struct {
	Items      []*domain.Tenant  `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

func (h *RosterHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	unitID := h.unitID(r)
	if unitID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("unit_id is required"))
		return
	}

	resp, err := h.roster.ListTenants(r.Context(), service.ListTenantsRequest{UnitID: unitID})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	q := r.URL.Query()
	items, pagination := paginate(resp.Items, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))
	writeJSON(w, http.StatusOK, Ok(tenantListResult{Items: items, Pagination: pagination}))
}
