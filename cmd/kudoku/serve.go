package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/kudoku/internal/adapters/http"
	"svw.info/kudoku/internal/config"
	"svw.info/kudoku/internal/generator"
	"svw.info/kudoku/internal/hint"
	"svw.info/kudoku/internal/solver"
	"svw.info/kudoku/internal/usecase"
	"svw.info/kudoku/internal/validator"
)

var (
	serveAddr     string
	serveConfig   string
	serveParallel bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		Long: `Serve the JSON API: /api/solve, /api/generate, /api/validate,
/api/hint and /api/health.

Examples:
  kudoku serve
  kudoku serve --addr :9090
  kudoku serve --config kudoku.yaml`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides the config file")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a YAML config file")
	serveCmd.Flags().BoolVar(&serveParallel, "parallel", false, "Race root branches, overrides the config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if serveConfig != "" {
		var err error
		cfg, err = config.Load(serveConfig)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = serveParallel
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	opt := solver.Options{Parallel: cfg.Parallel, Seed: cfg.Seed}
	if cfg.TieBreak == "random" {
		opt.TieBreak = solver.TieRandom
	}
	eng := solver.New(opt)
	uc := usecase.NewService(eng, generator.New(eng), validator.New(), hint.New())

	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpadapter.RequestLogger(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{
		"addr":      cfg.Addr,
		"parallel":  cfg.Parallel,
		"tie_break": cfg.TieBreak,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
