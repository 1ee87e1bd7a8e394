package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"societylink-data/internal/config"
	"societylink-data/internal/gateway"
	httpapi "societylink-data/internal/http"
	"societylink-data/internal/logger"
	"societylink-data/internal/photos"
	"societylink-data/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "societylink-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Gateway.AuthKey == "" || cfg.Gateway.HostKey == "" {
		log.Warn("gateway auth/host key not set, upstream calls will be rejected")
	}

	gw := gateway.NewClient(cfg.Gateway.URL, cfg.Gateway.AuthKey, cfg.Gateway.HostKey, cfg.Gateway.Timeout, log)
	photoResolver := photos.NewResolver(cfg.Images.URL, cfg.Images.Timeout, cfg.Images.FallbackFolders, log)

	visitors := service.NewVisitorService(gw, photoResolver, cfg.Images.Workers, cfg.Images.PrimaryFolder, log)
	roster := service.NewRosterService(gw, log)
	units := service.NewUnitService(gw, log)
	lookups := service.NewLookupService(gw, log)
	tickets := service.NewTicketService(gw, log)

	router := httpapi.NewRouter(log)
	router.RegisterSocietyRoutes(
		httpapi.NewVisitorHandler(visitors, cfg.DefaultUnitID, log),
		httpapi.NewRosterHandler(roster, cfg.DefaultUnitID, log),
		httpapi.NewUnitHandler(units, log),
		httpapi.NewLookupHandler(lookups, log),
		httpapi.NewTicketHandler(tickets, cfg.DefaultUnitID, log),
		httpapi.NewExportHandler(visitors, roster, cfg.DefaultUnitID, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("HTTP server exited", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
}
