// Command backup exports, imports or resets the registry.
//
// Usage:
//
//	backup -actor <admin-id> export -file dump.json [-history]
//	backup -actor <admin-id> import -file dump.json
//	backup -actor <admin-id> reset -yes
//
// The actor must be in the configured admin set; anyone else is denied the
// same way they would be through the command router.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/allocbot/allocbot-backend/internal/app"
	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/admin"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

func main() {
	actorID := flag.Int64("actor", 0, "acting admin user ID")
	flag.Parse()

	if *actorID <= 0 || flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: backup -actor <id> {export|import|reset} [flags]")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx = ctxutil.WithActorID(ctx, *actorID)
	ctx = ctxutil.WithRole(ctx, resolveRole(a, *actorID))

	var runErr error
	switch cmd := flag.Arg(0); cmd {
	case "export":
		runErr = runExport(ctx, a, flag.Args()[1:])
	case "import":
		runErr = runImport(ctx, a, flag.Args()[1:])
	case "reset":
		runErr = runReset(ctx, a, flag.Args()[1:])
	default:
		runErr = fmt.Errorf("unknown subcommand %q", cmd)
	}
	if runErr != nil {
		a.Log.Error("backup command failed",
			slog.String("subcommand", flag.Arg(0)),
			slog.String("error", runErr.Error()),
		)
		os.Exit(1)
	}
}

// resolveRole mirrors the router: admins come from config. Moderator status
// is irrelevant here, every subcommand is admin-gated anyway.
func resolveRole(a *app.App, actorID int64) domain.Role {
	if a.Cfg.Admin.IsAdmin(actorID) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func runExport(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fs.String("file", "", "output file path")
	withHistory := fs.Bool("history", false, "include the full history log")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("export: -file is required")
	}

	dump, err := a.Admin.Export(ctx, admin.ExportInput{IncludeHistory: *withHistory})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Marshalling happens after the export transaction committed.
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	if err := os.WriteFile(*file, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", *file, err)
	}

	a.Log.Info("export written",
		slog.String("file", *file),
		slog.String("dump_id", dump.DumpID.String()),
		slog.Int("items", len(dump.Items)),
	)
	return nil
}

func runImport(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "input file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("import: -file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read %s: %w", *file, err)
	}

	var dump admin.Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("parse %s: %w", *file, err)
	}

	if err := a.Admin.Import(ctx, &dump); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	a.Log.Info("import applied",
		slog.String("file", *file),
		slog.String("dump_id", dump.DumpID.String()),
		slog.Int("items", len(dump.Items)),
	)
	return nil
}

func runReset(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	confirmed := fs.Bool("yes", false, "confirm wiping the registry and its history")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirmed {
		return fmt.Errorf("reset: refusing to wipe without -yes")
	}

	if err := a.Admin.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	a.Log.Info("registry reset")
	return nil
}
