package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/config"
	"github.com/llehouerou/trialsearch/internal/errmsg"
	"github.com/llehouerou/trialsearch/internal/logging"
	"github.com/llehouerou/trialsearch/internal/search"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/trials"
)

// env is everything a command needs once the config is loaded.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *state.Store
	coord    *search.Coordinator
	closeLog func()
}

func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	logCfg := cfg.GetLogConfig()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		logCfg.Level = level
	}
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpOpenLog, err))
	}

	api := cfg.GetAPIConfig()
	client := trials.New(trials.Options{
		BaseURL:     api.BaseURL,
		ServiceKey:  api.ServiceKey,
		Rows:        api.Rows,
		Timeout:     api.Timeout,
		MinInterval: api.MinInterval,
		MaxRetries:  api.MaxRetries,
		Parser:      cfg.HighlightParser(),
	})

	sc := cfg.GetSearchConfig()
	store := state.NewStore()
	coord, err := search.New(client, store, search.Options{
		StaleTime:      sc.StaleTime,
		CacheSize:      sc.CacheSize,
		RequestTimeout: sc.RequestTimeout,
		Logger:         logger.Named("search"),
	})
	if err != nil {
		closeLog()
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logger.Info("starting",
		zap.String("command", cmd.Name()),
		zap.String("api", api.BaseURL),
		zap.Duration("stale_time", sc.StaleTime),
	)
	return &env{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		coord:    coord,
		closeLog: closeLog,
	}, nil
}

func (e *env) close() {
	e.logger.Info("exiting", zap.Int64("api_calls", e.coord.Calls()))
	e.closeLog()
}
