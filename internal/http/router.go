package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler 支持 http.Handler 接口
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterSocietyRoutes 注册与前端对齐的全部路由
func (r *Router) RegisterSocietyRoutes(
	visitors *VisitorHandler,
	roster *RosterHandler,
	units *UnitHandler,
	lookups *LookupHandler,
	tickets *TicketHandler,
	exports *ExportHandler,
) {
	// visitors（列表 + 签入 + /{id}/checkout）
	r.HandleHandler("/society/api/v1/visitors", visitors)
	r.HandleHandler("/society/api/v1/visitors/", visitors)

	// rosters
	r.HandleHandler("/society/api/v1/occupants", roster)
	r.HandleHandler("/society/api/v1/tenants", roster)

	// units
	r.HandleHandler("/society/api/v1/units", units)

	// lookups/{group}
	r.HandleHandler("/society/api/v1/lookups/", lookups)

	// tickets
	r.HandleHandler("/society/api/v1/tickets", tickets)

	// excel export
	r.HandleHandler("/society/api/v1/export/visitors", exports)
	r.HandleHandler("/society/api/v1/export/occupants", exports)
}
