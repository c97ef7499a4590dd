package driver

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// DefaultCPP is the preprocessor binary used when none is configured.
const DefaultCPP = "cpp"

// Preprocess pipes text through `cpp -E -P -`. The result has no comments
// and no line markers; directives are already applied.
func Preprocess(ctx context.Context, cpp, text string) (string, error) {
	if cpp == "" {
		cpp = DefaultCPP
	}
	fields := strings.Fields(cpp)
	if len(fields) == 0 {
		return "", &PreprocessError{Cmd: cpp, Err: errors.New("empty command")}
	}
	args := append(fields[1:len(fields):len(fields)], "-E", "-P", "-")

	// #nosec G204 -- preprocessor binary comes from the user's config or flags
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &PreprocessError{
			Cmd:    cpp,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
