// Package scheduler contém os agendamentos de manutenção do conjunto de vendas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DatasetRefresher força a recarga do conjunto de vendas
type DatasetRefresher interface {
	Refresh(ctx context.Context) ([]domain.SalesRecord, error)
}

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService recarrega periodicamente o arquivo de vendas para
// que alterações no disco apareçam antes da expiração do cache
type DatasetRefreshService struct {
	scheduler            *gocron.Scheduler
	refresher            DatasetRefresher
	config               DatasetRefreshConfig
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
	lastRefreshRecords   int
	lastRefreshError     string
}

func NewDatasetRefreshService(refresher DatasetRefresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule, // Default: a cada 30 minutos
		Enabled:      cfg.DatasetRefresh.Enabled,      // Default: desabilitado
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("scheduler: configuração da recarga do conjunto de vendas carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: recarga agendada do conjunto de vendas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando recarga agendada do conjunto de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil {
			log.L.WithError(err).Error("scheduler: erro na recarga agendada do conjunto de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do conjunto de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: parando recarga agendada do conjunto de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset executa uma recarga. Chamadas concorrentes são ignoradas.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		log.L.Warn("scheduler: recarga do conjunto de vendas já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	records, err := s.refresher.Refresh(ctx)

	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	s.refreshRunning = false
	s.lastRefreshEndedAt = time.Now()
	if err != nil {
		s.lastRefreshError = err.Error()
		return err
	}

	s.lastRefreshError = ""
	s.lastRefreshRecords = len(records)

	log.L.WithField("records", len(records)).Info("scheduler: conjunto de vendas recarregado")

	return nil
}

// TriggerManualSync inicia uma recarga em segundo plano.
// Retorna false quando já existe uma recarga em andamento.
func (s *DatasetRefreshService) TriggerManualSync(ctx context.Context) bool {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		log.L.Info("scheduler: recarga já em andamento, ignorando solicitação manual")
		return false
	}
	s.refreshMutex.Unlock()

	log.L.Info("scheduler: iniciando recarga manual do conjunto de vendas")
	go func() {
		if err := s.RefreshDataset(context.WithoutCancel(ctx)); err != nil {
			log.L.WithError(err).Error("scheduler: erro na recarga manual do conjunto de vendas")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":         s.config.Enabled,
		"refresh_cron":            s.config.CronSchedule,
		"refresh_running":         s.refreshRunning,
		"last_refresh_started_at": s.lastRefreshStartedAt,
		"last_refresh_ended_at":   s.lastRefreshEndedAt,
		"last_refresh_records":    s.lastRefreshRecords,
		"last_refresh_error":      s.lastRefreshError,
	}
}
