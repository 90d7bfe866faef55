package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pagekit"
)

// Run executes the extract command. Like import, a file that cannot be
// extracted yields the fallback template.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	b, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	page := deps.Importer.ImportHTML(deps.Ctx, string(b), c.URL)

	if c.Save {
		if err := deps.Pages.CreatePage(deps.Ctx, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, pagekit.FormatPage(page))
	return nil
}
