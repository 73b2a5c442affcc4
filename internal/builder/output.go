package builder

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/llmstxt/internal/config"
	"github.com/itsmostafa/llmstxt/internal/llms"
	"github.com/itsmostafa/llmstxt/internal/markdown"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for recoverable problems
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// headerBoxStyle for the header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Logger writes build progress. Errors always go to the error writer;
// everything else is silenced by quiet, and Debug needs verbose.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	verbose bool
}

// NewLogger creates a Logger. A nil errOut means out.
func NewLogger(out, errOut io.Writer, quiet, verbose bool) *Logger {
	if errOut == nil {
		errOut = out
	}
	return &Logger{out: out, errOut: errOut, quiet: quiet, verbose: verbose}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewLogger(io.Discard, io.Discard, true, false)
}

// Info writes a progress line.
func (l *Logger) Info(format string, args ...any) {
	l.line(l.out, l.quiet, dimStyle.Render("•"), format, args...)
}

// Success writes a line for a completed step.
func (l *Logger) Success(format string, args ...any) {
	l.line(l.out, l.quiet, successStyle.Render("✓"), format, args...)
}

// Warn writes a line for a problem that does not stop the build.
func (l *Logger) Warn(format string, args ...any) {
	l.line(l.out, l.quiet, warnStyle.Render("!"), format, args...)
}

// Error writes to the error writer, even when quiet.
func (l *Logger) Error(format string, args ...any) {
	l.line(l.errOut, false, errorStyle.Render("✗"), format, args...)
}

// Debug writes a dimmed line when verbose.
func (l *Logger) Debug(format string, args ...any) {
	l.line(l.out, l.quiet || !l.verbose, dimStyle.Render("·"), "%s", dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Block writes pre-rendered output unless quiet.
func (l *Logger) Block(render func(w io.Writer)) {
	if l.quiet {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	render(l.out)
}

func (l *Logger) line(w io.Writer, muted bool, marker, format string, args ...any) {
	if muted {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(w, "%s %s\n", marker, msg)
}

// debugWriter adapts Debug to an io.Writer, one message per write.
type debugWriter struct{ l *Logger }

func (d debugWriter) Write(p []byte) (int, error) {
	d.l.Debug("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// FormatHeader renders the build header with configuration info
func FormatHeader(w io.Writer, cfg config.Config) {
	domain := cfg.Domain
	if domain == "" {
		domain = dimStyle.Render("(relative links)")
	}

	content := fmt.Sprintf("%s %s  %s %s\n%s %s\n%s %d  %s %d",
		dimStyle.Render("Docs:"), titleStyle.Render(cfg.DocsDir),
		dimStyle.Render("Out:"), titleStyle.Render(cfg.OutDir),
		dimStyle.Render("Domain:"), domain,
		dimStyle.Render("Depth:"), cfg.Depth,
		dimStyle.Render("Min files:"), cfg.MinFilesPerChunk,
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummary renders the build summary box
func FormatSummary(w io.Writer, r *Report) {
	var status string
	if n := r.FailureCount(); n > 0 {
		status = errorStyle.Render(fmt.Sprintf("%d FAILED", n))
	} else {
		status = successStyle.Render("OK")
	}

	line1 := fmt.Sprintf("%s %d  %s %d  %s %d  %s %.1fs",
		dimStyle.Render("Documents:"), r.Documents,
		dimStyle.Render("Chunks:"), r.Chunks,
		dimStyle.Render("Pages:"), r.Count(KindPage),
		dimStyle.Render("Duration:"), r.Duration().Seconds(),
	)

	full := dimStyle.Render("not generated")
	if o, ok := r.Output(fullTextFile); ok {
		full = fmt.Sprintf("%s, ~%s tokens", markdown.FormatSize(o.Bytes), markdown.FormatTokens(o.Tokens))
	}
	line2 := fmt.Sprintf("%s %s  %s", dimStyle.Render(fullTextFile+":"), full, status)

	content := titleStyle.Render("Build Complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatChunkPlan renders the chunk hierarchy without writing any file
func FormatChunkPlan(w io.Writer, chunks []llms.DirectoryChunk) {
	if len(chunks) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No chunks: no documents found"))
		return
	}

	for _, c := range chunks {
		name := c.DirPath
		if c.IsRoot() {
			name = "(root)"
		}
		fmt.Fprintf(w, "%s %s\n",
			titleStyle.Render(name),
			dimStyle.Render(fmt.Sprintf("→ %s  depth %d, %d files", llms.ChunkOutputPath(c.DirPath), c.DepthLevel, len(c.Files))),
		)
		if !c.IsRoot() {
			parent := c.ParentPath
			if parent == "" {
				parent = "(root)"
			}
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("parent:"), parent)
		}
		if len(c.SiblingPaths) > 0 {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("siblings:"), strings.Join(c.SiblingPaths, ", "))
		}
		if len(c.ChildPaths) > 0 {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("children:"), strings.Join(c.ChildPaths, ", "))
		}
	}
}
