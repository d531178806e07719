package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/littlelemon/internal/app"
	"github.com/polkiloo/littlelemon/internal/config"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
	"github.com/polkiloo/littlelemon/internal/storage/postgres"
	"github.com/polkiloo/littlelemon/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		MonitorInterval: time.Millisecond,
		StaleOrderAge:   time.Minute,
		WorkerPoolSize:  1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	menuRepo := test.NewMenuRepositoryStub()
	cartRepo := &test.CartRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.RestaurantFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected restaurant facade instance")
	}
}
