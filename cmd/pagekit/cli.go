package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagekit"
	pkhttp "github.com/fwojciec/pagekit/http"
	"github.com/fwojciec/pagekit/importer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Pages     pagekit.PageService
	Importer  *importer.Importer
	Generator pagekit.Generator
	Converter pagekit.Converter
	Server    *pkhttp.Server

	// NewSiteWriter returns the writer that publishes into dir.
	NewSiteWriter func(dir string) pagekit.SiteWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log fetch, extraction and import details to stderr"`
	DB      string `name:"db" env:"PAGEKIT_DB" help:"Database path (default: ~/.pagekit/pagekit.db)"`
	Config  string `help:"Config file path (default: ~/.pagekit/config.yaml)"`

	Import   ImportCmd   `cmd:"" help:"Import landing pages from URLs"`
	Extract  ExtractCmd  `cmd:"" help:"Extract a page from a local HTML file"`
	List     ListCmd     `cmd:"" help:"List saved pages"`
	Show     ShowCmd     `cmd:"" help:"Show a saved page"`
	Generate GenerateCmd `cmd:"" help:"Write a saved page as a static site"`
	Preview  PreviewCmd  `cmd:"" help:"Print a saved page as Markdown"`
	Serve    ServeCmd    `cmd:"" help:"Serve the JSON API"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved page"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URLs []string `arg:"" name:"url" help:"Landing page URLs"`
	Save bool     `short:"s" help:"Save imported pages to the database"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file to extract"`
	URL  string `help:"Source URL recorded on the page"`
	Save bool   `short:"s" help:"Save the extracted page to the database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Only list pages with this status (draft or published)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Page ID"`
	JSON bool   `help:"Print the full page document as JSON"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	ID  string `arg:"" help:"Page ID"`
	Dir string `arg:"" help:"Output directory"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	ID string `arg:"" help:"Page ID"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Page ID"`
	Force bool   `help:"Confirm deletion"`
}
