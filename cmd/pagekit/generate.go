package main

import (
	"fmt"

	"github.com/fwojciec/pagekit"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.ID)
	if err != nil {
		return err
	}

	html, err := deps.Generator.Generate(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	if err := deps.NewSiteWriter(c.Dir).Write(deps.Ctx, page, html, deps.Generator.Stylesheet()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %q to %s\n", page.Title, c.Dir)
	return nil
}
