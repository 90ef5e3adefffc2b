package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi"
	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi/quoteclient"
	"github.com/vfg2006/clash-paysheet/infrastructure/repository"
	"github.com/vfg2006/clash-paysheet/infrastructure/spreadsheet"
	"github.com/vfg2006/clash-paysheet/internal/api"
	"github.com/vfg2006/clash-paysheet/internal/api/handler"
	"github.com/vfg2006/clash-paysheet/internal/config"
	"github.com/vfg2006/clash-paysheet/internal/scheduler"
	"github.com/vfg2006/clash-paysheet/internal/usecases/reporting"
	"github.com/vfg2006/clash-paysheet/internal/usecases/uploading"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := repository.NewSheetSessionRepository(time.Now)

	quoteClient := quoteclient.NewClient(cfg)
	rateProvider := awesomeapi.NewCachedRateProvider(
		awesomeapi.New(cfg, quoteClient),
		cfg.ExchangeRate.CacheTTL,
	)

	uploadService := uploading.NewService(spreadsheet.NewXLSXReader(), sessionRepo, cfg)
	reportService := reporting.NewService(sessionRepo, rateProvider)

	exchangeRateSyncService := scheduler.NewExchangeRateSyncService(rateProvider, cfg)
	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, cfg)

	// Inicia os agendadores em background
	if err := exchangeRateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de cotação")
	} else {
		logrus.Info("Agendador de sincronização de cotação iniciado com sucesso")
	}

	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		uploadService,
		reportService,
		handler.CronJobServices{
			ExchangeRateSyncService: exchangeRateSyncService,
			SessionCleanupService:   sessionCleanupService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
