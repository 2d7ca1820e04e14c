package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/filter"
	"github.com/studiowebux/cfgedit/internal/session"
)

// FormatOptions contains options for reformatting a document in CLI mode
type FormatOptions struct {
	FilePath string
	Indent   int
	Logger   *slog.Logger
}

// Format parses a document and prints exactly the bytes the editor would
// save for it
func Format(opts FormatOptions, out io.Writer) error {
	mgr := session.NewManager(opts.Logger, opts.Indent)
	if err := mgr.Open(opts.FilePath); err != nil {
		return err
	}

	formatted, err := mgr.Serialized()
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("cannot serialize %s", opts.FilePath), err)
	}

	_, err = out.Write(formatted)
	return err
}

// QueryOptions contains options for querying a document in CLI mode
type QueryOptions struct {
	FilePath   string
	Expression string // JMESPath query or $(shell command)
	Logger     *slog.Logger
}

// Query evaluates an expression against a document and prints the result.
// An interrupt cancels a running shell command.
func Query(opts QueryOptions, out io.Writer) error {
	mgr := session.NewManager(opts.Logger, -1)
	if err := mgr.Open(opts.FilePath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := filter.Query(ctx, mgr.Root(), opts.Expression)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}
