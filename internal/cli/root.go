package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/aurora/internal/config"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// App holds references to all services used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Profiles  service.ProfileService
	Plans     service.PlanService
	Chat      service.ChatService
	Dashboard service.DashboardService
	Import    service.ImportService

	// Seed loads the demo semester; reset replaces existing data.
	Seed func(ctx context.Context, reset bool) (bool, error)

	// Config is the loaded configuration and ConfigPath the file it maps to.
	Config     *config.Config
	ConfigPath string

	TimerPresets   domain.TimerPresets
	ServerAddr     string
	AllowedOrigins []string
	Logger         *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// Close releases whatever Bootstrap opened. The caller of Execute owns it.
	Close func() error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// Options are the global flags shared by every command.
type Options struct {
	DBPath     string
	ConfigPath string
	Verbose    bool

	// JSONLogs is set for long-running commands whose logs are collected
	// rather than read. It has no flag.
	JSONLogs bool
}

// Register binds the global flags to fs.
func (o *Options) Register(fs *pflag.FlagSet) {
	fs.StringVar(&o.DBPath, "db", "", "SQLite database path (default ~/.aurora/aurora.db)")
	fs.StringVar(&o.ConfigPath, "config", "", "Config file path (default ~/.aurora/config.yaml)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug output to stderr")
}

// Bootstrap wires an App from the parsed global flags.
type Bootstrap func(ctx context.Context, opts Options) (*App, error)

// NewRootCmd creates the top-level "aurora" command and registers all
// subcommands against app. When boot is non-nil it runs before any command
// and its result replaces *app; tests pass a ready App and a nil boot.
func NewRootCmd(app *App, boot Bootstrap) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:           "aurora",
		Short:         "Study companion: weekly plans, an assistant and a focus timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if boot == nil {
				return nil
			}
			opts.JSONLogs = cmd.Name() == "serve"
			built, err := boot(cmd.Context(), opts)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}
	opts.Register(root.PersistentFlags())

	root.AddCommand(
		newPlanCmd(app),
		newTasksCmd(app),
		newTaskCmd(app),
		newAskCmd(app),
		newHistoryCmd(app),
		newResourcesCmd(app),
		newProfileCmd(app),
		newSeedCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
		newConfigCmd(app),
	)

	return root
}
