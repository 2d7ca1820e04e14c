// Package filter evaluates read-only queries against the open document.
package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/cfgedit/internal/value"
)

const (
	// QueryShellTimeout is the maximum time allowed for query shell command execution
	QueryShellTimeout = 30 * time.Second
)

var (
	// Shell command pattern: $(command)
	shellPattern = regexp.MustCompile(`^\$\((.+)\)$`)
)

// Query evaluates expression against doc and returns the result as
// indented JSON. An expression of the form $(command) runs command with
// the serialized document on stdin and returns its output instead.
// The document is never modified.
func Query(ctx context.Context, doc *value.Value, expression string) (string, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return "", fmt.Errorf("empty query")
	}
	if doc == nil {
		return "", fmt.Errorf("no document loaded")
	}

	if matches := shellPattern.FindStringSubmatch(expression); len(matches) > 1 {
		body, err := value.Serialize(doc, value.DefaultIndent)
		if err != nil {
			return "", fmt.Errorf("failed to serialize document: %w", err)
		}
		out, err := executeShellCommand(ctx, body, matches[1])
		if err != nil {
			return "", fmt.Errorf("failed to execute query shell command: %w", err)
		}
		return out, nil
	}

	return applyJMESPath(doc.Interface(), expression)
}

// applyJMESPath applies a JMESPath expression to a decoded document
func applyJMESPath(data interface{}, expression string) (string, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	if result == nil {
		return "null", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// executeShellCommand executes a shell command with body piped to stdin
func executeShellCommand(ctx context.Context, body []byte, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryShellTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = bytes.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := err.Error()
		if stderr.Len() > 0 {
			errMsg = strings.TrimSpace(stderr.String())
		}
		return "", fmt.Errorf("command '%s' failed: %s", command, errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsShellCommand checks if a query is a shell command (starts with $(...))
func IsShellCommand(query string) bool {
	return shellPattern.MatchString(strings.TrimSpace(query))
}
