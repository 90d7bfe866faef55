package main

import (
	"fmt"

	"github.com/fwojciec/pagekit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagekit.Errorf(pagekit.EINVALID, "use --force to confirm deletion")
	}

	page, err := findPage(deps, c.ID)
	if err != nil {
		return err
	}

	if err := deps.Pages.DeletePage(deps.Ctx, page.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %q (%s)\n", page.Title, page.ID)
	return nil
}
