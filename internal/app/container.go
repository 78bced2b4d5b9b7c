package app

import (
	"context"
	"log"
	"time"

	"talent-crm/internal/config"
	"talent-crm/internal/delivery/http/handler"
	"talent-crm/internal/delivery/http/routes"
	"talent-crm/internal/infrastructure/cache"
	"talent-crm/internal/repository"
	"talent-crm/internal/sampledata"
	"talent-crm/internal/usecase"
	"talent-crm/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	Cache  *cache.Redis
	Hub    *ws.Hub
	Routes *routes.Registry
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repos := sampledata.Repos{
		Candidates: repository.NewMemoryCandidateRepository(),
		Jobs:       repository.NewMemoryJobRepository(),
		Pipeline:   repository.NewMemoryPipelineRepository(),
		Tasks:      repository.NewMemoryTaskRepository(),
		Activities: repository.NewMemoryActivityRepository(),
	}
	if err := sampledata.Run(ctx, repos, sampledata.Defaults(), logger); err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	directoryUC := usecase.NewDirectoryUsecase(repos.Candidates, repos.Jobs)
	matchingUC := usecase.NewMatchingUsecase(repos.Candidates, repos.Jobs, redisCache, logger)
	pipelineUC := usecase.NewPipelineUsecase(repos.Pipeline, repos.Candidates, repos.Jobs, redisCache, logger)
	taskUC := usecase.NewTaskUsecase(repos.Tasks)
	dashboardUC := usecase.NewDashboardUsecase(repos.Pipeline, repos.Tasks, repos.Activities, redisCache, logger, cfg.Report.RecentLimit)

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(),
		Directory: handler.NewDirectoryHandler(directoryUC),
		Match:     handler.NewMatchHandler(matchingUC),
		Pipeline:  handler.NewPipelineHandler(pipelineUC),
		Tasks:     handler.NewTaskHandler(taskUC),
		Dashboard: handler.NewDashboardHandler(dashboardUC),
		WS:        ws.NewHandler(hub, logger),
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return nil
}
