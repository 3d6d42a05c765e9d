package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/studyquiz-api/internal/aiquiz"
	"github.com/saulo-duarte/studyquiz-api/internal/config"
	"github.com/saulo-duarte/studyquiz-api/internal/health"
	"github.com/saulo-duarte/studyquiz-api/internal/router"
	util "github.com/saulo-duarte/studyquiz-api/internal/utils"
)

type Container struct {
	Config          *config.AppConfig
	AIQuizContainer *aiquiz.AIQuizContainer
	HealthHandler   *health.Handler
}

// New loads configuration, initializes logging and builds the Gemini-backed
// services once for the lifetime of the process.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("init ai quiz: %w", err)
	}

	return Assemble(cfg, aiQuizContainer), nil
}

// Assemble wires a container around an already built quiz
// container.
func Assemble(cfg *config.AppConfig, aiQuizContainer *aiquiz.AIQuizContainer) *Container {
	return &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
		HealthHandler:   health.NewHandler(cfg.ServiceName, util.SystemClock),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		HealthHandler:  c.HealthHandler,
		AllowedOrigins: c.Config.AllowedOrigins,
		MaxBodyBytes:   c.Config.MaxBodyBytes,
	})
}
