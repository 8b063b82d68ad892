// Command replay runs a batch of commands from a file, one per line, in the
// format accepted by command.ParseLine:
//
//	<actor-id> <action> [<target>] [key=value ...]
//
// Blank lines and lines starting with '#' are skipped. Every line runs under
// its own actor's permissions; a failing line does not stop the batch.
//
// Exit codes: 0 = all lines succeeded, 1 = at least one line failed.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/allocbot/allocbot-backend/internal/app"
	"github.com/allocbot/allocbot-backend/internal/command"
)

func main() {
	file := flag.String("file", "", "command file path")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -file <commands>")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	failed, err := replay(ctx, a, *file)
	if err != nil {
		a.Log.Error("replay failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func replay(ctx context.Context, a *app.App, path string) (failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		cmds  []command.Command
		lines []int
	)
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, parseErr := command.ParseLine(line)
		if parseErr != nil {
			a.Log.Warn("skipping malformed line",
				slog.Int("line", lineNo),
				slog.String("error", parseErr.Error()),
			)
			failed++
			continue
		}
		cmds = append(cmds, cmd)
		lines = append(lines, lineNo)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return failed, fmt.Errorf("read %s: %w", path, scanErr)
	}

	results := a.Router.RunBatch(ctx, cmds)
	for i, res := range results {
		if res.Ok() {
			continue
		}
		failed++
		a.Log.Warn("command failed",
			slog.Int("line", lines[i]),
			slog.String("action", cmds[i].Action.String()),
			slog.String("error", res.Err.Error()),
		)
	}

	a.Log.Info("replay finished",
		slog.String("file", path),
		slog.Int("commands", len(cmds)),
		slog.Int("failed", failed),
	)
	return failed, nil
}
