package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagekit"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		b, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintln(deps.Stdout, string(b))
		return nil
	}

	fmt.Fprintln(deps.Stdout, pagekit.FormatPage(page))
	return nil
}

// findPage loads a page by ID, reporting a missing page with a hint.
func findPage(deps *Dependencies, id string) (*pagekit.Page, error) {
	page, err := deps.Pages.FindPageByID(deps.Ctx, id)
	if pagekit.ErrorCode(err) == pagekit.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'pagekit list' to see available pages.\n", id)
		return nil, err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagekit.ErrorMessage(err))
		return nil, err
	}
	return page, nil
}
