package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"societylink-data/internal/service"
)

// LookupHandler 下拉字典接口
type LookupHandler struct {
	lookups service.LookupService
	logger  *zap.Logger
}

// NewLookupHandler 创建字典 Handler
func NewLookupHandler(lookups service.LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{lookups: lookups, logger: logger}
}

// ServeHTTP 实现 http.Handler 接口
// 路由形如 /society/api/v1/lookups/{group}，group 是静态组名或数字 group id
func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	group := strings.TrimPrefix(r.URL.Path, "/society/api/v1/lookups/")
	if group == "" || strings.Contains(group, "/") {
		writeJSON(w, http.StatusBadRequest, Fail("lookup group is required"))
		return
	}

	resp, err := h.lookups.ListOptions(r.Context(), service.ListOptionsRequest{Group: group})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}
