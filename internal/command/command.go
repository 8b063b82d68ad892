package command

import (
	"strconv"
	"time"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/notify"
)

// Command is one parsed instruction from the transport: who wants what done
// to which target. Target addresses an entity by numeric ID or unique name
// depending on the action; Params carries the action-specific arguments as
// the transport parsed them.
type Command struct {
	ActorID int64
	Action  domain.Action
	Target  string
	Params  map[string]string
}

// Result is the outcome of one command: a payload on success, a typed error
// otherwise, plus the notifications the transport should deliver. Errors are
// ordinary results, not failures of the router itself.
type Result struct {
	Payload       any
	Notifications []notify.Message
	Err           error
}

// Ok reports whether the command succeeded.
func (r Result) Ok() bool { return r.Err == nil }

// param returns the named parameter, "" when absent.
func (c Command) param(key string) string { return c.Params[key] }

// int64Param parses an optional int64 parameter, nil when absent.
func (c Command) int64Param(key string) (*int64, error) {
	raw, ok := c.Params[key]
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an integer")
	}
	return &v, nil
}

// intParam parses an optional int parameter, 0 when absent.
func (c Command) intParam(key string) (int, error) {
	raw, ok := c.Params[key]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(key, "must be an integer")
	}
	return v, nil
}

// boolParam parses an optional bool parameter, false when absent.
func (c Command) boolParam(key string) (bool, error) {
	raw, ok := c.Params[key]
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(key, "must be true or false")
	}
	return v, nil
}

// timeParam parses an optional RFC 3339 timestamp parameter, nil when absent.
func (c Command) timeParam(key string) (*time.Time, error) {
	raw, ok := c.Params[key]
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an RFC 3339 timestamp")
	}
	return &v, nil
}

// strParamPtr returns an optional string parameter, nil when absent.
func (c Command) strParamPtr(key string) *string {
	raw, ok := c.Params[key]
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

// targetInt64 parses the command target as a required numeric ID.
func (c Command) targetInt64(field string) (int64, error) {
	v, err := strconv.ParseInt(c.Target, 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive integer")
	}
	return v, nil
}
