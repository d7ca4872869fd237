package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/aurora/internal/cli"
	"github.com/alexanderramin/aurora/internal/config"
	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/logging"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/seed"
	"github.com/alexanderramin/aurora/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// dashboardHistory is how many recent messages the dashboard loads.
const dashboardHistory = 50

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{}
	rootCmd := cli.NewRootCmd(app, bootstrap)
	err := rootCmd.ExecuteContext(ctx)
	if app.Close != nil {
		err = errors.Join(err, app.Close())
	}
	return err
}

// bootstrap loads config, opens the database and wires every service.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DatabasePath = opts.DBPath
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	format := logging.FormatConsole
	if opts.JSONLogs {
		format = logging.FormatJSON
	}
	logger, err := logging.New(os.Stderr, level, format)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", cfg.DatabasePath))

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	messageRepo := repository.NewSQLiteMessageRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewZapUseCaseObserver(logger)

	var override *domain.Profile
	if p, ok := cfg.ProfileOverride(); ok {
		override = &p
	}

	// Wire services
	tasks := service.NewTaskService(taskRepo, observer)
	profiles := service.NewProfileService(profileRepo, override)
	plans := service.NewPlanService(taskRepo, planRepo, uow, observer)
	chat := service.NewChatService(taskRepo, messageRepo, profiles, plans, uow, intelligence.NewGenerator(), observer)

	seedFn := func(ctx context.Context, reset bool) (bool, error) {
		loaded, err := seed.Load(ctx, uow, time.Now(), reset)
		if loaded {
			logger.Info("demo semester loaded", zap.Bool("reset", reset))
		}
		return loaded, err
	}
	// A fresh store starts with the demo semester.
	if _, err := seedFn(ctx, false); err != nil {
		database.Close()
		return nil, fmt.Errorf("seeding demo data: %w", err)
	}

	return &cli.App{
		Tasks:          tasks,
		Profiles:       profiles,
		Plans:          plans,
		Chat:           chat,
		Dashboard:      service.NewDashboardService(tasks, profiles, plans, chat, dashboardHistory),
		Import:         service.NewImportService(uow, time.Local, observer),
		Seed:           seedFn,
		Config:         cfg,
		ConfigPath:     cfgPath,
		TimerPresets:   cfg.TimerPresets(),
		ServerAddr:     cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
		Now:            time.Now,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Close: func() error {
			_ = logger.Sync()
			return database.Close()
		},
	}, nil
}
