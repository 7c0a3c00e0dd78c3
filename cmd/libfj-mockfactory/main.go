// Command libfj-mockfactory serves a Factory compatible API from YAML fixtures
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"libfj/internal/core/version"
	modkit "libfj/internal/modkit"
	"libfj/internal/platform/config"
	"libfj/internal/platform/logger"
	phttp "libfj/internal/platform/net/http"
	"libfj/internal/platform/net/middleware"
	mfmodule "libfj/internal/services/mockfactory/module"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.New().Prefix("MOCKFACTORY_")

	var (
		addr     string
		fixtures string
		showVer  bool
	)
	fs := pflag.NewFlagSet("libfj-mockfactory", pflag.ContinueOnError)
	fs.StringVarP(&addr, "addr", "a", cfg.MayString("ADDR", ":8080"), "listen address")
	fs.StringVarP(&fixtures, "fixtures", "f", cfg.MayString("FIXTURES", ""), "YAML fixture file (default: built in catalogue)")
	fs.BoolVar(&showVer, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if showVer {
		fmt.Println(version.Info("libfj-mockfactory"))
		return nil
	}

	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mod, err := mfmodule.New(ctx, modkit.Deps{Log: *l, Cfg: cfg}, fixtures)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	srv := phttp.NewServerAt(addr, func(m *chi.Mux) { m.Use(middleware.Defaults()...) })
	modkit.Mount(srv.Router(), mod)

	l.Info().Str("addr", srv.Addr()).Str("version", version.Info("libfj-mockfactory").Version).Msg("mock factory starting")
	return srv.Run(ctx)
}
