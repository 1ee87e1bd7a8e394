package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"societylink-data/internal/export"
	"societylink-data/internal/service"
)

// ExportHandler 名册/访客记录 Excel 导出接口
type ExportHandler struct {
	visitors      service.VisitorService
	roster        service.RosterService
	defaultUnitID string
	logger        *zap.Logger
}

// NewExportHandler 创建导出 Handler
func NewExportHandler(visitors service.VisitorService, roster service.RosterService, defaultUnitID string, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		visitors:      visitors,
		roster:        roster,
		defaultUnitID: defaultUnitID,
		logger:        logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/society/api/v1/export/visitors":
		h.ExportVisitors(w, r)
	case "/society/api/v1/export/occupants":
		h.ExportOccupants(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ExportHandler) unitID(r *http.Request) string {
	unitID := r.URL.Query().Get("unit_id")
	if unitID == "" {
		unitID = h.defaultUnitID
	}
	return unitID
}

func (h *ExportHandler) ExportVisitors(w http.ResponseWriter, r *http.Request) {
	unitID := h.unitID(r)
	if unitID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("unit_id is required"))
		return
	}

	q := r.URL.Query()
	resp, err := h.visitors.ListVisitors(r.Context(), service.ListVisitorsRequest{
		UnitID: unitID,
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	data, err := export.GenerateVisitorLog(resp.Items)
	if err != nil {
		h.logger.Error("failed to generate visitor log export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate export"))
		return
	}
	writeExcel(w, fmt.Sprintf("visitor-log-%s.xlsx", time.Now().Format("20060102")), data)
}

func (h *ExportHandler) ExportOccupants(w http.ResponseWriter, r *http.Request) {
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

	data, err := export.GenerateOccupantRoster(resp.Items)
	if err != nil {
		h.logger.Error("failed to generate occupant roster export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate export"))
		return
	}
	writeExcel(w, fmt.Sprintf("occupant-roster-%s.xlsx", time.Now().Format("20060102")), data)
}

func writeExcel(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
