package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/littlelemon/internal/app"
	"github.com/polkiloo/littlelemon/internal/config"
	"github.com/polkiloo/littlelemon/internal/logger"
	"github.com/polkiloo/littlelemon/internal/pkg/auth"
	"github.com/polkiloo/littlelemon/internal/server/http/router"
	"github.com/polkiloo/littlelemon/internal/storage/postgres"
	"github.com/polkiloo/littlelemon/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
