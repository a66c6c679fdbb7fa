package cmd

import (
	"fmt"
)

// ListToolsCmd prints every registered tool, optionally narrowed by a name
// pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"Name pattern ('*' or prefix)"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	pattern := c.Pattern
	if pattern == "" {
		pattern = "*"
	}
	// Registration order is fixed, so the output stays deterministic for
	// scripting.
	for _, t := range svc.MatchTools(pattern) {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Printf("%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
