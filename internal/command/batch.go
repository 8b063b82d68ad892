package command

import (
	"context"
	"log/slog"
)

// RunBatch replays a sequence of commands one at a time and returns the
// per-command results in order. The batch is not a transaction: a failing
// command is recorded and the rest still run. Every command executes under
// its own actor's permissions.
func (r *Router) RunBatch(ctx context.Context, cmds []Command) []Result {
	results := make([]Result, 0, len(cmds))
	failed := 0

	for _, cmd := range cmds {
		res := r.Execute(ctx, cmd)
		if !res.Ok() {
			failed++
		}
		results = append(results, res)
	}

	r.log.InfoContext(ctx, "batch finished",
		slog.Int("commands", len(cmds)),
		slog.Int("failed", failed),
	)

	return results
}
