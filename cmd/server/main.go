package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/facultyboard/server/internal/api"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/logger"
	"github.com/facultyboard/server/internal/pkg/store"
	"github.com/facultyboard/server/internal/pkg/store/xpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"
)

func main() {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperDatabaseURL, "postgres://localhost:5432/facultyboard")
	viper.SetDefault(constants.ViperAllowedOrigins, []string{"http://localhost:3000"})
	viper.AutomaticEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Fatal(ctx, logger.Init(viper.GetBool(constants.ViperDebug)))
	defer logger.Sync()

	pool, err := pgxpool.New(ctx, viper.GetString(constants.ViperDatabaseURL))
	logger.Fatal(ctx, err)
	defer pool.Close()

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10), ctx),
	)
	logger.Fatal(ctx, err)

	svc, err := api.NewAPIService(store.NewStore(xpgx.NewPool(pool)))
	logger.Fatal(ctx, err)

	go svc.Serve(viper.GetString(constants.ViperListenAddr))
	logger.Infof(ctx, "listening on %s", viper.GetString(constants.ViperListenAddr))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
