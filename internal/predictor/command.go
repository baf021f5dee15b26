package predictor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/forgecast/internal/domain/models"
)

// CommandPredictor runs an external program that prints one float on stdout.
//
// The symbol is appended as the last argument, e.g. "python3 xg.py ETHUSDT".
type CommandPredictor struct {
	name string
	args []string
}

// NewCommandPredictor parses a command line such as "python3 xg.py --once".
// It fails when the line is empty or the executable cannot be found in PATH.
func NewCommandPredictor(commandLine string) (*CommandPredictor, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, errors.New("empty model command")
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("model command %q: %w", fields[0], err)
	}
	return &CommandPredictor{name: path, args: fields[1:]}, nil
}

// Predict executes the command and parses its trimmed stdout.
func (p *CommandPredictor) Predict(ctx context.Context, symbol models.Symbol) (float64, error) {
	args := append(append([]string{}, p.args...), symbol.String())
	cmd := exec.CommandContext(ctx, p.name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren may keep the pipes open after the process is killed.
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: %v", ErrDelegateTimeout, ctx.Err())
		}
		return 0, fmt.Errorf("%w: %v: %s", ErrDelegateFailure, err, strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(stdout.String())
	// Only the last line counts; models tend to print progress before the answer.
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = strings.TrimSpace(out[i+1:])
	}
	v, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse output %q: %v", ErrDelegateFailure, out, err)
	}
	return v, nil
}
