package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/datasource/csvfile"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func init() {
	// Valores monetários saem como números no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(log.Options{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Env:    cfg.App.Env,
	})
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, err := csvfile.NewFileLoader(cfg.Dataset.FilePath, csvfile.Config{
		Encoding:        cfg.Dataset.Encoding,
		CurrencySymbols: cfg.Dataset.CurrencySymbols,
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar leitura do arquivo de vendas")
	}

	datasetCache := cache.NewDatasetCache(loader, cache.Options{
		SlidingExpiration:  cfg.Cache.SlidingExpiration,
		AbsoluteExpiration: cfg.Cache.AbsoluteExpiration,
	})

	reporter := reporting.NewService(datasetCache, reporting.Config{
		TopN:             cfg.Report.TopN,
		RecentSalesLimit: cfg.Report.RecentSalesLimit,
	})

	// Carga inicial para validar o arquivo; a API sobe mesmo em caso de falha
	if _, err := datasetCache.Get(ctx); err != nil {
		log.L.WithError(err).Warn("Não foi possível carregar o arquivo de vendas na inicialização")
	}

	refreshService := scheduler.NewDatasetRefreshService(datasetCache, cfg)
	if err := refreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de recarga do conjunto de vendas")
	}

	server, err := api.New(cfg, reporter, handler.CacheServices{
		Cache:     datasetCache,
		Scheduler: refreshService,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
