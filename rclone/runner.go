package rclone

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Runner invokes the external rclone binary. Every invocation is a single
// blocking process run; cancellation and timeouts come from the context.
type Runner struct {
	// Binary is the rclone executable, looked up on PATH when not absolute.
	Binary string
	// ConfigFile is forwarded as --config when set.
	ConfigFile string
}

func NewRunner(binary, configFile string) *Runner {
	if binary == "" {
		binary = "rclone"
	}
	return &Runner{Binary: binary, ConfigFile: configFile}
}

// Run executes the binary with the given arguments and returns captured
// stdout. A nonzero exit surfaces the trimmed stderr text.
func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	full := args
	if r.ConfigFile != "" {
		full = append([]string{"--config", r.ConfigFile}, args...)
	}

	log.Debugf("Running %s %s", r.Binary, strings.Join(full, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			return nil, fmt.Errorf("%s %s: %w", r.Binary, args[0], err)
		}
		return nil, fmt.Errorf("%s %s: %w: %s", r.Binary, args[0], err, diagnostic)
	}

	return stdout.Bytes(), nil
}
