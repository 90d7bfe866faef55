package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	var mu sync.Mutex
	progress := func(p importer.Progress) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(deps.Stderr, "  [%d/%d] %s %s\n", p.Completed, p.Total, p.Source, p.URL)
	}

	pages := deps.Importer.ImportAll(deps.Ctx, c.URLs, progress)

	for i, page := range pages {
		if c.Save {
			if err := deps.Pages.CreatePage(deps.Ctx, page); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
				return err
			}
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, pagekit.FormatPage(page))
	}

	if c.Save {
		fmt.Fprintf(deps.Stdout, "\nSaved %d pages\n", len(pages))
	}
	return nil
}
