package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares
func NewHandler(
	config *config.Config,
	reporter reporting.SalesReporter,
	cacheServices handler.CacheServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(reporter)...),
		router.WithRoutes(handler.Export(reporter, time.Now)...),
		router.WithRoutes(handler.Cache(cacheServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	reporter reporting.SalesReporter,
	cacheServices handler.CacheServices,
) (*Server, error) {
	if reporter == nil || cacheServices.Cache == nil {
		return nil, fmt.Errorf("servidor requer o serviço de relatórios e o cache de vendas")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reporter, cacheServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
