package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"ubizy/internal/assistant"
	"ubizy/internal/auth"
	"ubizy/internal/cli"
	"ubizy/internal/constants"
	"ubizy/internal/errors"
	"ubizy/internal/logger"
	"ubizy/internal/planner"
	"ubizy/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Storage path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." default:"~/.config/ubizy/ubizy.db"`
	Debug    bool   `help:"Enable debug logging."`
	Endpoint string `help:"Assistant API endpoint for the 'ask' command." env:"UBIZY_ASSISTANT_ENDPOINT" default:"https://api.ubizy.dev/v1/chat"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize ubizy storage."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Token  cli.TokenCmd  `cmd:"" help:"Manage the assistant API token."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Task   struct {
		Add      cli.TaskAddCmd      `cmd:"" help:"Add a new task."`
		List     cli.TaskListCmd     `cmd:"" help:"List all tasks."`
		Complete cli.TaskCompleteCmd `cmd:"" help:"Mark a task complete (or undo with --undo)."`
		Delete   cli.TaskDeleteCmd   `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Event struct {
		Add      cli.EventAddCmd      `cmd:"" help:"Add a new event."`
		List     cli.EventListCmd     `cmd:"" help:"List all events."`
		Complete cli.EventCompleteCmd `cmd:"" help:"Mark an event complete (or undo with --undo)."`
		Delete   cli.EventDeleteCmd   `cmd:"" help:"Delete an event."`
	} `cmd:"" help:"Manage events."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits with due status."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Record a habit completion (or undo with --undo)."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Today      cli.TodayCmd      `cmd:"" help:"Show tasks, events, and due habits for a day."`
	Upcoming   cli.UpcomingCmd   `cmd:"" help:"Show all items with urgency labels."`
	Categories cli.CategoriesCmd `cmd:"" help:"List categories in use."`
	Chat       cli.ChatCmd       `cmd:"" help:"Send a message to the built-in assistant."`
	Ask        cli.AskCmd        `cmd:"" help:"Ask the remote assistant service."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity companion: tasks, events, habits, and a chat assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":             constants.Version,
			"default_task_time":   constants.DefaultTaskTime,
			"default_event_start": constants.DefaultEventStart,
			"default_event_end":   constants.DefaultEventEnd,
		},
	)

	configPath := expandHome(CLI.Config)

	// Logs always live under the default config dir, even when storage is
	// Postgres or in-memory.
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: expandHome(filepath.Dir(constants.DefaultConfigPath)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	switch {
	case strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://"):
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use environment variables or a .pgpass file instead.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	case CLI.Config == ":memory:":
		store = storage.NewMemoryStore()
	default:
		store = storage.NewSQLiteStore(configPath)
	}

	svc := planner.New(store)
	appCtx := &cli.Context{
		Store:     store,
		Planner:   svc,
		Assistant: assistant.New(svc),
		Session:   auth.NewSession(),
		Endpoint:  CLI.Endpoint,
	}

	// Init handles its own storage setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
