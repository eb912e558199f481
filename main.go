package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/felixbrock/matchadmin/internal/app"
	"github.com/felixbrock/matchadmin/internal/components"
	"github.com/felixbrock/matchadmin/internal/persistence"
)

func logger(config app.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(config.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if config.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

func querier(config app.Config) (app.TableQuerier, func(), error) {
	switch config.DBDriver {
	case app.DriverCSV:
		table, err := persistence.LoadCSVFile("interests", config.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		return table, func() {}, nil
	case app.DriverSQLite:
		table, err := persistence.OpenSQLite(config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return table, func() {
			if err := table.Close(); err != nil {
				slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
			}
		}, nil
	default:
		return persistence.TableRepo{
			BaseHeaders: persistence.SupabaseHeaders(config.DBApiKey),
			BaseUrl:     config.DBUrl,
			Limiter:     persistence.NewLimiter(config.DBRateLimit, config.DBRateBurst),
		}, func() {}, nil
	}
}

func main() {
	config, err := app.LoadConfig()
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(logger(config))

	db, closeDB, err := querier(config)
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	componentBuilder := app.ComponentBuilder{
		Login:     components.Login,
		Dashboard: components.Dashboard,
		Error:     components.Error,
	}

	a := app.App{
		Interests:        app.InterestAccessor{DB: db},
		ComponentBuilder: componentBuilder,
		Config:           config,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
