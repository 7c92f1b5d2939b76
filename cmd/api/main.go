package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository"
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/api"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/config"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/scheduler"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/exporting"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/importing"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de dados")
	}
	logrus.WithField("path", store.Path()).Info("Arquivo de dados aberto com sucesso")

	saleRepo := repository.NewSaleRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	profileRepo := repository.NewProfileRepository(store)

	reporter := reporting.NewService(saleRepo, expenseRepo)
	recorder := recording.NewService(store, saleRepo, expenseRepo, profileRepo)
	importer := importing.NewService(saleRepo, expenseRepo, profileRepo)
	exporter := exporting.NewService(reporter)

	backupService := scheduler.NewBackupService(store, cfg)
	if err := backupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup")
	} else {
		logrus.Info("Agendador de backup iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		recorder,
		importer,
		exporter,
		backupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
