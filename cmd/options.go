package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"viking-mcp service configuration YAML/JSON path"`

	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the viking tools"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Exec      *ExecCmd      `command:"exec"       description:"Execute a registered tool"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one MCP tool"`
	Status    *StatusCmd    `command:"status"     description:"Check OpenViking reachability and health"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "status":
		o.Status = &StatusCmd{}
	}
}
