package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/clash-paysheet/internal/scheduler"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeExchangeRate   = "exchange-rate"
	CronJobTypeSessionCleanup = "session-cleanup"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ExchangeRateSyncService *scheduler.ExchangeRateSyncService
	SessionCleanupService   *scheduler.SessionCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeExchangeRate:
			if services.ExchangeRateSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de cotação não disponível", nil)
				return
			}
			services.ExchangeRateSyncService.TriggerManualSync()

		case CronJobTypeSessionCleanup:
			if services.SessionCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.SessionCleanupService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ExchangeRateSyncService != nil {
				services.ExchangeRateSyncService.TriggerManualSync()
			}
			if services.SessionCleanupService != nil {
				services.SessionCleanupService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: exchange-rate, session-cleanup, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ExchangeRateSyncService != nil {
			status[CronJobTypeExchangeRate] = services.ExchangeRateSyncService.GetStatus()
		}
		if services.SessionCleanupService != nil {
			status[CronJobTypeSessionCleanup] = services.SessionCleanupService.GetStatus()
		}

		writeJSON(w, r, status)
	})
}
