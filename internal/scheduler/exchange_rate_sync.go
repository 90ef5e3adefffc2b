package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clash-paysheet/internal/config"
)

// RateRefresher atualiza a cotação guardada em cache
type RateRefresher interface {
	Refresh(ctx context.Context) bool
	LastRate() (float64, time.Time, bool)
}

// ExchangeRateSyncConfig representa a configuração do agendador de cotação
type ExchangeRateSyncConfig struct {
	CronSchedule string
	Pair         string
	CacheTTL     time.Duration
	SyncEnabled  bool
}

// ExchangeRateSyncService mantém a cotação USD-BRL aquecida no cache
type ExchangeRateSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExchangeRateSyncConfig
	refresher           RateRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSucceeded   bool
}

func NewExchangeRateSyncService(refresher RateRefresher, appConfig *config.Config) *ExchangeRateSyncService {
	syncConfig := ExchangeRateSyncConfig{
		CronSchedule: appConfig.ExchangeRateSync.CronSchedule,
		Pair:         appConfig.ExchangeRate.Pair,
		CacheTTL:     appConfig.ExchangeRate.CacheTTL,
		SyncEnabled:  appConfig.ExchangeRateSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"pair":          syncConfig.Pair,
		"cache_ttl":     syncConfig.CacheTTL.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de cotação carregada")

	return &ExchangeRateSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *ExchangeRateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de cotação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de cotação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncExchangeRate(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de cotação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de cotação")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ExchangeRateSyncService) syncExchangeRate(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ok := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSucceeded = ok
	s.syncMutex.Unlock()

	if !ok {
		logrus.WithField("pair", s.config.Pair).Warn("Cotação indisponível na sincronização agendada")
		return
	}
	logrus.WithField("pair", s.config.Pair).Info("Cotação sincronizada")
}

// TriggerManualSync inicia manualmente uma sincronização da cotação
func (s *ExchangeRateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de cotação")
	go s.syncExchangeRate(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ExchangeRateSyncService) GetStatus() map[string]any {
	var lastRate *float64
	rate, fetchedAt, hasRate := s.refresher.LastRate()
	if hasRate {
		lastRate = &rate
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"last_rate":              lastRate,
		"last_rate_fetched_at":   fetchedAt,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"pair":                   s.config.Pair,
		"cache_ttl":              s.config.CacheTTL.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_succeeded":    s.lastSyncSucceeded,
	}
}
