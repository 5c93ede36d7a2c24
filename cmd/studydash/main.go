package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/cli/backups"
	"github.com/julianstephens/studydash/internal/cli/classes"
	"github.com/julianstephens/studydash/internal/cli/homework"
	"github.com/julianstephens/studydash/internal/cli/notes"
	"github.com/julianstephens/studydash/internal/cli/system"
	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/errors"
	"github.com/julianstephens/studydash/internal/i18n"
	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the JSON store, anything else SQLite." type:"path" env:"STUDYDASH_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd     `cmd:"" help:"Initialize studydash storage."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    system.TodayCmd    `cmd:"" help:"Show today's classes and upcoming homework."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check classes, homework and notes for conflicts."`
	Lang     system.LangCmd     `cmd:"" help:"Show or change the interface language."`
	Class    struct {
		Add    classes.ClassAddCmd    `cmd:"" help:"Add a new class."`
		Edit   classes.ClassEditCmd   `cmd:"" help:"Edit an existing class."`
		Delete classes.ClassDeleteCmd `cmd:"" help:"Delete a class with its homework and notes."`
		List   classes.ClassListCmd   `cmd:"" help:"List classes." default:"1"`
	} `cmd:"" help:"Manage classes."`
	Homework struct {
		Add    homework.HomeworkAddCmd    `cmd:"" help:"Add a homework item."`
		Edit   homework.HomeworkEditCmd   `cmd:"" help:"Edit a homework item."`
		Delete homework.HomeworkDeleteCmd `cmd:"" help:"Delete a homework item."`
		Toggle homework.HomeworkToggleCmd `cmd:"" help:"Mark a homework item done or pending."`
		List   homework.HomeworkListCmd   `cmd:"" help:"List homework." default:"1"`
	} `cmd:"" help:"Manage homework."`
	Note struct {
		Add    notes.NoteAddCmd    `cmd:"" help:"Add a note."`
		Edit   notes.NoteEditCmd   `cmd:"" help:"Edit a note."`
		Delete notes.NoteDeleteCmd `cmd:"" help:"Delete a note."`
		List   notes.NoteListCmd   `cmd:"" help:"List notes." default:"1"`
		Show   notes.NoteShowCmd   `cmd:"" help:"Show a note in full."`
	} `cmd:"" help:"Manage notes."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

// commands that open storage themselves
var selfLoading = map[string]bool{
	"init":   true,
	"doctor": true,
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Student planner for classes, homework and notes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"class_start":    constants.DefaultClassStart,
			"class_end":      constants.DefaultClassEnd,
		},
	)

	command := ""
	if ctx.Selected() != nil {
		command = ctx.Selected().Name
	}

	var console io.Writer = os.Stderr
	if command == "tui" {
		console = nil
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
		Console:   console,
	}); err != nil {
		errors.Fatal(err)
	}
	logger.Debug("starting", "command", ctx.Command(), "config", CLI.Config)

	store := storage.New(CLI.Config)
	appCtx := &cli.Context{
		Store:   store,
		Planner: planner.New(store),
		I18n:    i18n.New(store),
	}

	// Load the store before running the command (init and doctor handle their own loading)
	if !selfLoading[command] {
		if err := appCtx.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("failed to close storage", "error", cerr)
	}
	errors.Fatal(err)
	_ = logger.Close()
}
