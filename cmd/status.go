package cmd

import (
	"context"
	"fmt"
)

// StatusCmd checks OpenViking reachability from the CLI and prints the same
// health summary the viking_status tool produces.
type StatusCmd struct{}

func (c *StatusCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	out, err := svc.ExecuteTool(context.Background(), "viking_status", nil)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
