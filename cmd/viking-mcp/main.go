package main

import (
	"os"

	"github.com/karve/viking-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
