package main

import (
	"fmt"

	"github.com/fwojciec/pagekit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter pagekit.PageFilter
	if c.Status != "" {
		status := pagekit.Status(c.Status)
		if status != pagekit.StatusDraft && status != pagekit.StatusPublished {
			fmt.Fprintf(deps.Stderr, "error: invalid status %q\n", c.Status)
			return pagekit.Errorf(pagekit.EINVALID, "invalid status %q", c.Status)
		}
		filter.Status = &status
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'pagekit import --save' to create one.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n", p.ID, p.Status, p.Meta.Confidence, p.Title, p.Meta.SourceURL)
	}

	return nil
}
