package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorewood/mdformat/internal/format"
	"github.com/gorewood/mdformat/internal/output"
	"github.com/gorewood/mdformat/internal/render"
)

// formatFlags holds the flags of the format command.
type formatFlags struct {
	headings   bool
	bold       bool
	italics    bool
	codeBlocks bool
	html       bool
	title      string
	output     string
}

// formatResult is the JSON shape of the format command.
type formatResult struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html,omitempty"`
	Lines    int    `json:"lines"`
	Output   string `json:"output,omitempty"`
}

// bindFormatFlags registers the format command flags on fs.
func bindFormatFlags(fs *pflag.FlagSet, flags *formatFlags) {
	fs.BoolVar(&flags.headings, "headings", true, "Turn heading-like lines into ## headings")
	fs.BoolVar(&flags.bold, "bold", true, "Bold ALL-CAPS words")
	fs.BoolVar(&flags.italics, "italics", true, "Italicize quoted phrases")
	fs.BoolVar(&flags.codeBlocks, "code-blocks", true, "Fence indented lines")
	fs.BoolVar(&flags.html, "html", false, "Render the formatted markdown as an HTML document")
	fs.StringVar(&flags.title, "title", "", "Document title for --html (default: input file name)")
	fs.StringVarP(&flags.output, "output", "o", "", "Write the result to a file instead of stdout")
}

// apply overrides opts with every heuristic flag set explicitly in fs, so
// --bold re-enables a heuristic config.yaml turned off and --bold=false
// turns one off.
func (f formatFlags) apply(fs *pflag.FlagSet, opts format.Options) format.Options {
	if fs.Changed("headings") {
		opts.Headings = f.headings
	}
	if fs.Changed("bold") {
		opts.Bold = f.bold
	}
	if fs.Changed("italics") {
		opts.Italics = f.italics
	}
	if fs.Changed("code-blocks") {
		opts.CodeBlocks = f.codeBlocks
	}
	return opts
}

// newFormatCmd creates the format command.
func newFormatCmd() *cobra.Command {
	var flags formatFlags
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format plain text as markdown",
		Long: `Format plain text as markdown.

Reads the named file, or stdin when no file or "-" is given, and writes the
formatted markdown to stdout. Heuristic flags override config.yaml in both
directions: --bold=false turns bold off, --bold turns it back on.

Examples:
  mdformat format notes.txt                # Format a file
  cat notes.txt | mdformat format          # Format stdin
  mdformat format notes.txt --bold=false  # Skip ALL-CAPS emphasis
  mdformat format notes.txt --html -o a.html
  mdformat format notes.txt --json         # {"markdown": ..., "lines": N}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}
	bindFormatFlags(cmd.Flags(), &flags)
	return cmd
}

// runFormat executes the format command.
func runFormat(cmd *cobra.Command, args []string, flags formatFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	text, name, err := readInput(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.title != "" && !flags.html {
		printer.Warn("--title has no effect without --html")
	}

	markdown := format.Format(text, flags.apply(cmd.Flags(), cfg.FormatOptions()))
	result := formatResult{
		Markdown: markdown,
		Lines:    strings.Count(markdown, "\n") + 1,
	}

	content := markdown
	if flags.html {
		title := flags.title
		if title == "" && name != "" {
			title = filepath.Base(name)
		}
		page, renderErr := render.NewConverter().ToHTML(cmd.Context(), title, markdown)
		if renderErr != nil {
			err := output.NewSystemErrorWithCause("rendering HTML: "+renderErr.Error(), renderErr)
			printer.Error(err)
			return err
		}
		result.HTML = page
		content = page
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(withTrailingNewline(content)), 0o600); err != nil {
			sysErr := output.NewSystemErrorWithCause("writing output: "+err.Error(), err)
			printer.Error(sysErr)
			return sysErr
		}
		result.Output = flags.output
	}

	switch {
	case printer.IsJSON():
		return printer.WriteJSON(result)
	case flags.output != "":
		return printer.Success(map[string]any{"message": "Wrote " + flags.output})
	default:
		printer.Print(withTrailingNewline(content))
		return nil
	}
}

// readInput returns the text to format and the name of its source file,
// which is empty for stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("reading stdin: "+err.Error(), err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", output.NewUserErrorWithCause("reading input: "+err.Error(), err)
	}
	return string(data), args[0], nil
}

// withTrailingNewline terminates s with a newline unless it already ends
// with one.
func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
