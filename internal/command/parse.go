package command

import (
	"strconv"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// ParseLine parses one replay line into a Command. The format is
//
//	<actor-id> <ACTION> [<target>] [key=value ...]
//
// Tokens are whitespace-separated; the target is the first token after the
// action without an '='. Values with spaces are not supported, items with
// spaces in their names are addressed by numeric ID instead. Blank lines and
// lines starting with '#' are the caller's job to skip.
func ParseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Command{}, domain.NewValidationError("line", "expected at least <actor-id> <action>")
	}

	actorID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || actorID <= 0 {
		return Command{}, domain.NewValidationError("actor", "must be a positive integer")
	}

	cmd := Command{
		ActorID: actorID,
		Action:  domain.Action(strings.ToUpper(fields[1])),
		Params:  map[string]string{},
	}

	for _, field := range fields[2:] {
		key, value, found := strings.Cut(field, "=")
		if !found {
			if cmd.Target != "" {
				return Command{}, domain.NewValidationError("target", "given more than once")
			}
			cmd.Target = field
			continue
		}
		if key == "" {
			return Command{}, domain.NewValidationError("params", "empty parameter name")
		}
		if _, dup := cmd.Params[key]; dup {
			return Command{}, domain.NewValidationError(key, "given more than once")
		}
		cmd.Params[key] = value
	}

	return cmd, nil
}
