package walk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FormatObserver returns a match observer that writes one line per match to
// w, rendered from template. See formatMatch for the placeholders.
func FormatObserver(template string, w io.Writer) MatchObserver {
	return func(args *SearchArgs) {
		fmt.Fprintln(w, formatMatch(template, args.MatchedFilePath()))
	}
}

// ExecObserver returns a match observer that runs the command rendered from
// template for each match. Command output goes to w; failures are reported
// to logger and do not stop the walk.
func ExecObserver(ctx context.Context, template string, w io.Writer, logger Logger) MatchObserver {
	if logger == nil {
		logger = NopLogger{}
	}
	return func(args *SearchArgs) {
		cmd := formatMatch(template, args.MatchedFilePath())
		if err := executeCommand(ctx, cmd, w); err != nil {
			logger.Error(fmt.Sprintf("command for %s failed: %v", args.MatchedFilePath(), err))
		}
	}
}

// formatMatch replaces placeholders in a template with parts of path:
//
//	{}      full path        {""}      quoted full path
//	{base}  file name        {"base"}  quoted file name
//	{dir}   parent directory {"dir"}   quoted parent directory
func formatMatch(template, path string) string {
	base := filepath.Base(path)
	dir := filepath.Dir(path)

	r := strings.NewReplacer(
		`{""}`, strconv.Quote(path),
		`{"base"}`, strconv.Quote(base),
		`{"dir"}`, strconv.Quote(dir),
		"{}", path,
		"{base}", base,
		"{dir}", dir,
	)
	return r.Replace(template)
}

// executeCommand runs cmdStr, split on whitespace, and copies its stdout to w.
func executeCommand(ctx context.Context, cmdStr string, w io.Writer) error {
	args := strings.Fields(cmdStr)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("command error: %s: %w", strings.TrimSpace(stderr.String()), err)
		}
		return err
	}

	if stdout.Len() > 0 {
		_, err := w.Write(stdout.Bytes())
		return err
	}
	return nil
}
