// Package config loads llmstxt build settings from llms.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/itsmostafa/llmstxt/internal/llms"
	"github.com/itsmostafa/llmstxt/internal/sidebar"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given. It may be absent.
const DefaultFile = "llms.yaml"

// Environment variables that override file settings.
const (
	EnvDomain = "LLMSTXT_DOMAIN"
	EnvDepth  = "LLMSTXT_DEPTH"
	EnvOutDir = "LLMSTXT_OUT_DIR"
)

// Config holds the settings of one build. The zero value is not useful;
// start from Default.
type Config struct {
	DocsDir string `yaml:"docsDir"`
	OutDir  string `yaml:"outDir"`

	// Domain is prepended to every generated link.
	Domain string `yaml:"domain"`

	// Root index overrides
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Details     string `yaml:"details"`

	// Site metadata, used for the root index when neither the overrides
	// nor the index page front matter provide a title or description.
	SiteTitle       string `yaml:"siteTitle"`
	SiteDescription string `yaml:"siteDescription"`

	// Chunking
	Depth            int `yaml:"depth"`
	MinFilesPerChunk int `yaml:"minFilesPerChunk"`

	// Rendering
	IncludeNavigation       bool              `yaml:"includeNavigation"`
	LinksExtension          string            `yaml:"linksExtension"`
	CleanURLs               bool              `yaml:"cleanUrls"`
	CustomTemplate          string            `yaml:"customTemplate"`
	CustomTemplateFile      string            `yaml:"customTemplateFile"`
	CustomTemplateVariables map[string]string `yaml:"customTemplateVariables"`

	// Sidebar
	Sidebar       sidebar.Sidebar `yaml:"sidebar"`
	SidebarScript string          `yaml:"sidebarScript"`

	// Discovery
	IgnoreFiles      []string `yaml:"ignoreFiles"`
	ExcludeIndexPage bool     `yaml:"excludeIndexPage"`
	ExcludeBlog      bool     `yaml:"excludeBlog"`
	ExcludeTeam      bool     `yaml:"excludeTeam"`
	StripHTML        bool     `yaml:"stripHTML"`

	// Outputs
	GenerateLLMsTxt                    bool   `yaml:"generateLLMsTxt"`
	GenerateLLMsFullTxt                bool   `yaml:"generateLLMsFullTxt"`
	GenerateLLMFriendlyDocsForEachPage bool   `yaml:"generateLLMFriendlyDocsForEachPage"`
	InjectLLMHint                      bool   `yaml:"injectLLMHint"`
	ReportFile                         string `yaml:"reportFile"`

	// Concurrency bounds the number of outputs written at once.
	Concurrency int `yaml:"concurrency"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	chunk := llms.DefaultChunkConfig()
	return Config{
		DocsDir:                            "docs",
		OutDir:                             "dist",
		Depth:                              chunk.Depth,
		MinFilesPerChunk:                   chunk.MinFilesPerChunk,
		IncludeNavigation:                  true,
		LinksExtension:                     ".md",
		ExcludeIndexPage:                   true,
		StripHTML:                          true,
		GenerateLLMsTxt:                    true,
		GenerateLLMsFullTxt:                true,
		GenerateLLMFriendlyDocsForEachPage: true,
		Concurrency:                        runtime.NumCPU(),
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides and normalizes the result. An empty path reads
// DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no config file, defaults only
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.ApplyEnv()

	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from LLMSTXT_* environment variables.
func (c *Config) ApplyEnv() {
	c.Domain = envOr(EnvDomain, c.Domain)
	c.Depth = envInt(EnvDepth, c.Depth)
	c.OutDir = envOr(EnvOutDir, c.OutDir)
}

// Normalize applies defaults to unset or out of range values and loads
// customTemplateFile. It is safe to call more than once.
func (c *Config) Normalize() error {
	if c.DocsDir == "" {
		c.DocsDir = "docs"
	}
	if c.OutDir == "" {
		c.OutDir = "dist"
	}
	c.Domain = strings.TrimRight(c.Domain, "/")

	if c.Depth < 1 {
		c.Depth = 1
	}
	if c.MinFilesPerChunk < 1 {
		c.MinFilesPerChunk = llms.DefaultChunkConfig().MinFilesPerChunk
	}
	if c.LinksExtension == "" && !c.CleanURLs {
		c.LinksExtension = ".md"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.NumCPU()
	}

	if c.CustomTemplate == "" && c.CustomTemplateFile != "" {
		data, err := os.ReadFile(c.CustomTemplateFile)
		if err != nil {
			return fmt.Errorf("failed to read custom template: %w", err)
		}
		c.CustomTemplate = string(data)
	}
	return nil
}

// ChunkConfig returns the chunking settings.
func (c Config) ChunkConfig() llms.ChunkConfig {
	return llms.ChunkConfig{
		Depth:            c.Depth,
		MinFilesPerChunk: c.MinFilesPerChunk,
	}
}

// LinkOptions returns the link generation settings.
func (c Config) LinkOptions() llms.LinkOptions {
	return llms.LinkOptions{
		Domain:    c.Domain,
		Extension: c.LinksExtension,
		CleanURLs: c.CleanURLs,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
