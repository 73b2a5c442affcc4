// Package builder turns a directory of markdown pages into llms.txt index
// files, llms-full.txt and LLM-friendly page copies.
package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/itsmostafa/llmstxt/internal/config"
	"github.com/itsmostafa/llmstxt/internal/llms"
	"github.com/itsmostafa/llmstxt/internal/markdown"
	"github.com/itsmostafa/llmstxt/internal/sidebar"
	"golang.org/x/sync/errgroup"
)

const (
	fullTextFile  = "llms-full.txt"
	rootIndexPage = "index.md"
)

// Builder runs builds for one configuration.
type Builder struct {
	cfg config.Config
	log *Logger
}

// New creates a Builder. cfg is expected to be normalized.
func New(cfg config.Config, log *Logger) *Builder {
	if log == nil {
		log = Discard()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Builder{cfg: cfg, log: log}
}

// Site is a loaded documentation set, ready to render.
type Site struct {
	DocsDir string
	OutDir  string

	// Root is the root index page, the source of the root title. It is nil
	// when the docs have no index.md.
	Root *llms.Document

	// Documents are the listed pages in path order.
	Documents []llms.Document

	Sidebar []llms.SidebarNode
	Chunks  []llms.DirectoryChunk
}

// Load discovers and prepares every page and computes the chunk plan.
// Pages that cannot be read or parsed are recorded in report and skipped.
func (b *Builder) Load(ctx context.Context, report *Report) (*Site, error) {
	docsDir, err := filepath.Abs(b.cfg.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve docs directory: %w", err)
	}
	info, err := os.Stat(docsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path %s is not a directory", docsDir)
	}

	outDir, err := filepath.Abs(b.cfg.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if outDir == docsDir {
		return nil, fmt.Errorf("output directory %s is the docs directory; page copies would overwrite the sources", outDir)
	}

	patterns, err := b.ignorePatterns()
	if err != nil {
		return nil, err
	}
	files, err := discover(docsDir, outDir, patterns)
	if err != nil {
		return nil, err
	}
	b.log.Debug("discovered %d markdown files", len(files))

	prepared, err := b.prepare(ctx, docsDir, files, report)
	if err != nil {
		return nil, err
	}

	site := &Site{DocsDir: docsDir, OutDir: outDir}
	for i := range prepared {
		doc := prepared[i]
		if doc == nil {
			continue
		}
		if files[i] == rootIndexPage {
			site.Root = doc
			if b.cfg.ExcludeIndexPage {
				continue
			}
		}
		site.Documents = append(site.Documents, *doc)
	}

	site.Sidebar = b.resolveSidebar(ctx)
	site.Chunks = llms.ChunkDocuments(site.Documents, docsDir, b.cfg.ChunkConfig())

	report.Documents = len(site.Documents)
	report.Chunks = len(site.Chunks)
	return site, nil
}

// prepare reads and prepares files concurrently. The result is index
// aligned with files; failed entries are nil.
func (b *Builder) prepare(ctx context.Context, docsDir string, files []string, report *Report) ([]*llms.Document, error) {
	docs := make([]*llms.Document, len(files))

	var g errgroup.Group
	g.SetLimit(b.cfg.Concurrency)
	for i, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			abs := filepath.Join(docsDir, filepath.FromSlash(rel))
			src, err := os.ReadFile(abs)
			if err != nil {
				b.fail(report, rel, "read", err)
				return nil
			}

			doc, err := markdown.Prepare(rel, src, markdown.PrepareOptions{
				SourcePath: abs,
				StripHTML:  b.cfg.StripHTML,
			})
			if err != nil {
				b.fail(report, rel, "prepare", err)
				return nil
			}
			docs[i] = &doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// resolveSidebar returns the configured sidebar, transformed by the sidebar
// script when one is set. A failing script falls back to the static sidebar.
func (b *Builder) resolveSidebar(ctx context.Context) []llms.SidebarNode {
	static := b.cfg.Sidebar
	if b.cfg.SidebarScript == "" {
		return static.Nodes()
	}

	src, err := os.ReadFile(b.cfg.SidebarScript)
	if err != nil {
		b.log.Warn("Sidebar script unavailable, using static sidebar: %v", err)
		return static.Nodes()
	}

	s, err := sidebar.FromScript(ctx, string(src), static, sidebar.ScriptOptions{
		Output: debugWriter{b.log},
	})
	if err != nil {
		b.log.Warn("Sidebar script failed, using static sidebar: %v", err)
		return static.Nodes()
	}
	return s.Nodes()
}

// Plan loads the site without writing anything.
func (b *Builder) Plan(ctx context.Context) (*Site, *Report, error) {
	report := NewReport(b.cfg.DocsDir, b.cfg.OutDir)
	site, err := b.Load(ctx, report)
	report.Finish()
	if err != nil {
		return nil, report, err
	}
	return site, report, nil
}

// Run performs a full build. Failures of single outputs are recorded in the
// returned report; the error is reserved for conditions that stop the build.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	report := NewReport(b.cfg.DocsDir, b.cfg.OutDir)
	b.log.Block(func(w io.Writer) { FormatHeader(w, b.cfg) })

	site, err := b.Load(ctx, report)
	if err != nil {
		return nil, err
	}
	b.log.Info("Loaded %d documents in %d chunks", len(site.Documents), len(site.Chunks))
	b.checkTemplate()

	if len(site.Documents) == 0 {
		b.log.Warn("No markdown files found in %s", site.DocsDir)
	} else if err := b.write(ctx, site, report); err != nil {
		return nil, err
	}

	report.Finish()
	if b.cfg.ReportFile != "" {
		if err := report.Save(b.cfg.ReportFile); err != nil {
			return nil, err
		}
		b.log.Debug("wrote build report %s", b.cfg.ReportFile)
	}

	b.log.Block(func(w io.Writer) { FormatSummary(w, report) })
	return report, nil
}

// write renders and writes every enabled output concurrently.
func (b *Builder) write(ctx context.Context, site *Site, report *Report) error {
	if err := os.MkdirAll(site.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := b.renderOptions(site)
	links := b.cfg.LinkOptions()

	var g errgroup.Group
	g.SetLimit(b.cfg.Concurrency)

	if b.cfg.GenerateLLMsTxt {
		for _, chunk := range site.Chunks {
			g.Go(func() error {
				return b.emit(ctx, site, report, KindIndex, llms.ChunkOutputPath(chunk.DirPath), func() string {
					return llms.RenderChunk(chunk, opts)
				})
			})
		}
	}

	if b.cfg.GenerateLLMsFullTxt {
		g.Go(func() error {
			return b.emit(ctx, site, report, KindFull, fullTextFile, func() string {
				return llms.RenderFullText(site.Documents, links)
			})
		})
	}

	if b.cfg.GenerateLLMFriendlyDocsForEachPage {
		hint := ""
		if b.cfg.InjectLLMHint {
			hint = llmHint(b.cfg.Domain)
		}
		for _, doc := range site.Documents {
			g.Go(func() error {
				return b.emit(ctx, site, report, KindPage, doc.Path, func() string {
					if hint != "" {
						doc.Body = hint + "\n\n" + doc.Body
					}
					return llms.RenderPage(doc, links)
				})
			})
		}
	}

	return g.Wait()
}

// emit renders one output and writes it to rel under the output directory.
func (b *Builder) emit(ctx context.Context, site *Site, report *Report, kind OutputKind, rel string, render func() string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := render()
	dst := filepath.Join(site.OutDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		b.fail(report, rel, "write", err)
		return nil
	}
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		b.fail(report, rel, "write", err)
		return nil
	}

	report.AddOutput(Output{
		Kind:   kind,
		Path:   rel,
		Bytes:  int64(len(content)),
		Tokens: markdown.CountTokens(content),
	})
	if kind == KindPage {
		b.log.Debug("wrote %s", rel)
	} else {
		b.log.Success("Generated %s", rel)
	}
	return nil
}

// builtinVariables are the placeholders every template can use.
var builtinVariables = []string{"title", "description", "details", "navigation", "toc"}

// checkTemplate warns about custom template placeholders that have no value
// and would expand to nothing.
func (b *Builder) checkTemplate() {
	if b.cfg.CustomTemplate == "" {
		return
	}
	for _, name := range llms.TemplatePlaceholders(b.cfg.CustomTemplate) {
		if _, ok := b.cfg.CustomTemplateVariables[name]; ok {
			continue
		}
		if !slices.Contains(builtinVariables, name) {
			b.log.Warn("Template placeholder {%s} has no value and will be empty", name)
		}
	}
}

func (b *Builder) renderOptions(site *Site) llms.RenderOptions {
	return llms.RenderOptions{
		LinkOptions:       b.cfg.LinkOptions(),
		Title:             b.cfg.Title,
		Description:       b.cfg.Description,
		Details:           b.cfg.Details,
		SiteTitle:         b.cfg.SiteTitle,
		SiteDescription:   b.cfg.SiteDescription,
		RootDocument:      site.Root,
		CustomTemplate:    b.cfg.CustomTemplate,
		CustomVariables:   b.cfg.CustomTemplateVariables,
		IncludeNavigation: b.cfg.IncludeNavigation,
		Sidebar:           site.Sidebar,
	}
}

func (b *Builder) fail(report *Report, item, stage string, err error) {
	report.AddFailure(item, stage, err)
	b.log.Error("%s: %v", item, err)
}

// llmHint is the comment placed at the top of each page copy.
func llmHint(domain string) string {
	return fmt.Sprintf("<!-- Documentation index for LLMs: %s -->", llms.IndexLink("", domain))
}
