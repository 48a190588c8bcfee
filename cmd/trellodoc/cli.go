package main

import (
	"context"
	"io"

	"github.com/fwojciec/trellodoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   trellodoc.Fetcher
	Extractor trellodoc.RegionExtractor
	Writer    trellodoc.ConfigWriter

	// Regions lists the documentation pages to scrape, in processing order.
	Regions []string

	// DocsURL is the base URL of the documentation site; each region's page
	// lives at DocsURL/<region>/index.html.
	DocsURL string
}

// GenerateCmd handles the descriptor generation operation.
type GenerateCmd struct {
	Output  string
	Verbose bool
}
