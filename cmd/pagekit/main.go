package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/fs"
	"github.com/fwojciec/pagekit/goquery"
	"github.com/fwojciec/pagekit/htmltomarkdown"
	pkhttp "github.com/fwojciec/pagekit/http"
	"github.com/fwojciec/pagekit/importer"
	"github.com/fwojciec/pagekit/lingua"
	"github.com/fwojciec/pagekit/readability"
	"github.com/fwojciec/pagekit/sample"
	pkslog "github.com/fwojciec/pagekit/slog"
	"github.com/fwojciec/pagekit/sqlite"
	"github.com/fwojciec/pagekit/template"
	"github.com/fwojciec/pagekit/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagekit"),
		kong.Description("Import landing pages into editable documents and regenerate them as HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagekit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		m.ConfigPath = cli.Config
	}
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEKIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Pages = sqlite.NewPageService(m.DB)
	deps.Generator = template.NewGenerator()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewSiteWriter = func(dir string) pagekit.SiteWriter { return fs.NewSiteWriter(dir) }

	var extractor pagekit.PageExtractor = newExtractor(cfg)
	var fetcher pagekit.Fetcher = newFetcher(cfg)
	if cli.Verbose {
		extractor = pkslog.NewLoggingExtractor(extractor, logger)
		fetcher = pkslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	deps.Importer = &importer.Importer{
		Samples:     sample.NewResolver(),
		Fetcher:     fetcher,
		Extractor:   extractor,
		Concurrency: cfg.Import.Concurrency,
	}

	if cmd == "serve" {
		var imp pagekit.Importer = deps.Importer
		if cli.Verbose {
			imp = pkslog.NewLoggingImporter(imp, logger)
		}
		s := pkhttp.NewServer()
		s.Importer = imp
		s.Pages = deps.Pages
		s.Generator = deps.Generator
		s.Logger = logger
		deps.Server = s
	}

	return kongCtx.Run(deps)
}

// newExtractor builds the section extractor with the configured limits and
// metadata enrichment.
func newExtractor(cfg *Config) *goquery.Extractor {
	opts := []goquery.Option{goquery.WithLimits(cfg.Limits)}
	switch cfg.Metadata {
	case MetadataReadability:
		opts = append(opts, goquery.WithMetadataReader(readability.NewMetadataReader()))
	case MetadataTrafilatura:
		opts = append(opts, goquery.WithMetadataReader(trafilatura.NewMetadataReader()))
	}
	if cfg.DetectLanguage {
		opts = append(opts, goquery.WithLanguageDetector(lingua.NewDetector()))
	}
	return goquery.NewExtractor(opts...)
}

func newFetcher(cfg *Config) *pkhttp.Fetcher {
	opts := []pkhttp.Option{
		pkhttp.WithLimiter(pkhttp.NewDomainLimiter(cfg.Fetch.RPS)),
		pkhttp.WithRetryDelays(cfg.RetryDelays()),
	}
	if cfg.Fetch.Timeout > 0 {
		opts = append(opts, pkhttp.WithTimeout(cfg.Fetch.Timeout))
	}
	if cfg.Fetch.DenyPrivateHosts {
		opts = append(opts, pkhttp.WithDenyPrivateHosts())
	}
	return pkhttp.NewFetcher(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEKIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagekit.db"
	}
	dir := filepath.Join(home, ".pagekit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagekit.db")
}
