package rclone

import (
	"context"
	"encoding/json"
	"sort"
)

// Store enumerates the remotes known to an rclone configuration and
// describes single remotes. Implementations report failures as ConfigError.
type Store interface {
	ListRemotes(ctx context.Context) ([]string, error)
	Describe(ctx context.Context, remote string) (string, error)
}

// ConfigStore reads remote definitions through the rclone binary.
type ConfigStore struct {
	runner *Runner
}

func NewConfigStore(runner *Runner) *ConfigStore {
	return &ConfigStore{runner: runner}
}

// ListRemotes returns the remote names from `rclone config dump`, sorted.
// The "local" pseudo-remote is not part of the store; callers prepend it.
func (s *ConfigStore) ListRemotes(ctx context.Context) ([]string, error) {
	out, err := s.runner.Run(ctx, "config", "dump")
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	remotes, err := decodeRemoteNames(out)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	return remotes, nil
}

// Describe returns the textual definition of one remote from
// `rclone config show`.
func (s *ConfigStore) Describe(ctx context.Context, remote string) (string, error) {
	out, err := s.runner.Run(ctx, "config", "show", remote)
	if err != nil {
		return "", &ConfigError{Remote: remote, Err: err}
	}

	return string(out), nil
}

func decodeRemoteNames(dump []byte) ([]string, error) {
	var remotes map[string]json.RawMessage
	if err := json.Unmarshal(dump, &remotes); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(remotes))
	for name := range remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
