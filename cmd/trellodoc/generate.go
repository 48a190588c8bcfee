package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/trellodoc"
)

// Run executes the generation pipeline: fetch each region's documentation
// page, extract its method subsections, fold the records into the descriptor
// document, and write the result. A fetch failure is fatal to the whole run;
// a malformed subsection was already skipped during extraction.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	asm := trellodoc.NewAssembler()

	for _, region := range deps.Regions {
		url := regionURL(deps.DocsURL, region)

		page, err := deps.Fetcher.Fetch(deps.Ctx, url)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error fetching region %s (%s): %v\n", region, url, err)
			return err
		}

		raws, err := deps.Extractor.ExtractMethods(page, region)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error extracting region %s: %s\n", region, trellodoc.ErrorMessage(err))
			return err
		}

		for _, raw := range raws {
			if _, err := asm.Add(raw); err != nil {
				fmt.Fprintf(deps.Stderr, "error in region %s: %s\n", region, trellodoc.ErrorMessage(err))
				return err
			}
		}

		if c.Verbose {
			fmt.Fprintf(deps.Stdout, "%s: %d methods\n", region, len(raws))
		}
	}

	cfg := asm.Config()
	if err := deps.Writer.WriteConfig(deps.Ctx, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing output: %s\n", trellodoc.ErrorMessage(err))
		return err
	}

	if c.Output != "-" {
		fmt.Fprintf(deps.Stdout, "Wrote %d methods to %s\n", len(cfg.Methods), c.Output)
	}

	return nil
}

// regionURL builds the documentation page URL for a region.
func regionURL(base, region string) string {
	return strings.TrimSuffix(base, "/") + "/" + region + "/index.html"
}
