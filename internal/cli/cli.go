package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ptable/pkg/pipeline"
	"github.com/matzehuels/ptable/pkg/render/table/sink"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "ptable"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseList splits a comma-separated flag value, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string leaves the choice to the config file.
func parseFormats(s string) []string {
	return parseList(s)
}

// outputBase derives the output base path and formats. An output with a
// known extension selects that format when no formats were requested.
// Without an output, the config file name (or appName) is used.
func outputBase(output, configPath string, formats []string) (string, []string) {
	if output == "" {
		if configPath == "" {
			return pipeline.DefaultOutput, formats
		}
		return strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath)), formats
	}
	f, err := sink.FormatFromPath(output)
	if err != nil {
		return output, formats
	}
	if len(formats) == 0 {
		formats = []string{string(f)}
	}
	return strings.TrimSuffix(output, filepath.Ext(output)), formats
}
