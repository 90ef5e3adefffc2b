package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clash-paysheet/infrastructure/repository"
	"github.com/vfg2006/clash-paysheet/internal/config"
)

// SessionCleanupConfig representa a configuração da limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule string
	SessionTTL   time.Duration
	Enabled      bool
}

// SessionCleanupService remove periodicamente as sessões de upload expiradas
type SessionCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 SessionCleanupConfig
	sessionRepo            repository.SheetSessionRepository
	now                    func() time.Time
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupCompletedAt time.Time
	lastCleanupRemoved     int
	totalRemoved           int
}

func NewSessionCleanupService(sessionRepo repository.SheetSessionRepository, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.SessionCleanup.CronSchedule,
		SessionTTL:   appConfig.Session.TTL,
		Enabled:      appConfig.SessionCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"session_ttl":   cleanupConfig.SessionTTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cleanupConfig,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanupExpiredSessions() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	removed, err := s.sessionRepo.DeleteExpired(s.now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões expiradas")
		return
	}

	s.cleanupMutex.Lock()
	s.lastCleanupCompletedAt = s.now()
	s.lastCleanupRemoved = removed
	s.totalRemoved += removed
	s.cleanupMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.sessionRepo.Count(),
	}).Info("Limpeza de sessões concluída")
}

// TriggerManualSync inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualSync() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.cleanupExpiredSessions()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":           s.config.Enabled,
		"cleanup_cron":              s.config.CronSchedule,
		"session_ttl":               s.config.SessionTTL.String(),
		"cleanup_running":           s.cleanupRunning,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
		"last_cleanup_removed":      s.lastCleanupRemoved,
		"total_removed":             s.totalRemoved,
		"active_sessions":           s.sessionRepo.Count(),
	}
}
