package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"societylink-data/internal/gateway"
	"societylink-data/internal/service"
)

// writeServiceError 把服务层错误映射为 HTTP 状态 + 统一响应包
// 传输错误和坏载荷分开两条 message，前端弹窗能区分"连不上"和"回的东西不对"
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var te *gateway.TransportError
	var me *gateway.MalformedResponseError
	switch {
	case errors.Is(err, service.ErrUnknownLookupGroup):
		writeJSON(w, http.StatusBadRequest, Fail("unknown lookup group"))
	case errors.Is(err, service.ErrStaleFetch):
		writeJSON(w, http.StatusConflict, Fail("superseded by a newer request"))
	case errors.As(err, &te):
		logger.Error("upstream gateway unreachable", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail("upstream gateway unavailable, please retry"))
	case errors.As(err, &me):
		logger.Error("upstream gateway payload malformed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail("upstream gateway returned an unreadable response"))
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}
