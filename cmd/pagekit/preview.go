package main

import (
	"fmt"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/htmltomarkdown"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.ID)
	if err != nil {
		return err
	}

	md, err := htmltomarkdown.Preview(deps.Generator, deps.Converter, page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
