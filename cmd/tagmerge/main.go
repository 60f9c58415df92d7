// Command tagmerge merges the properties of a content document into a
// decorator template.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/grahms/tagmerge"
)

const version = "0.1.0"

// CLI defines the command-line interface for tagmerge.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"TAGMERGE_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"console" enum:"console,json" env:"TAGMERGE_LOG_FORMAT" help:"Log output format (${enum})"`

	Merge   MergeCmd   `cmd:"" help:"Merge a content document into a decorator template"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// MergeCmd processes a decorator template.
type MergeCmd struct {
	Template  string `arg:"" type:"existingfile" help:"Decorator template to process"`
	Content   string `short:"c" type:"existingfile" help:"Content document (YAML or XHTML) to merge"`
	Format    string `default:"auto" enum:"auto,yaml,xhtml" help:"Content format (${enum})"`
	Namespace string `short:"n" default:"sitemesh" env:"TAGMERGE_NAMESPACE" help:"Tag namespace of the write tag"`
	Strict    bool   `help:"Fail on malformed markup instead of copying it through"`
	Output    string `short:"o" type:"path" help:"Output file (default stdout)"`
}

// Run executes the merge command.
func (c *MergeCmd) Run(log zerolog.Logger) error {
	tmpl, err := os.ReadFile(c.Template)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	src, err := loadSource(c.Content, c.Format)
	if err != nil {
		return err
	}

	opts := []func(*tagmerge.Processor){
		tagmerge.WithLogger(log),
		tagmerge.WithWarningHandler(tagmerge.LogWarnings(log.With().Str("file", c.Template).Logger())),
	}
	if c.Strict {
		opts = append(opts, tagmerge.WithStrictWarnings())
	}

	out, err := tagmerge.Merge(string(tmpl), src, c.Namespace, opts...)
	if err != nil {
		return fmt.Errorf("merging %s: %w", c.Template, err)
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Debug().Str("template", c.Template).Int("bytes", len(out)).Msg("merged")
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("tagmerge version %s\n", version)
	return nil
}

func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tagmerge"),
		kong.Description("Merge content properties into decorator templates"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(newLogger(CLI.LogLevel, CLI.LogFormat))
	ctx.FatalIfErrorf(err)
}
