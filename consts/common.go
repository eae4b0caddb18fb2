package consts

const (
	Name    = "poll"
	Version = "1.0.0"
)

// Exit codes. Help and version output count as an asked-for outcome.
const (
	ExitAskedEventOrInfo = 0
	ExitUnaskedEvent     = 1
	ExitNoEvent          = 2
	ExitUsageError       = 3
	ExitExecutionError   = 4
)

const HelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}

USAGE:
   {{.HelpName}} [--timeout=<timeout>] {{.ArgsUsage}}
   {{.HelpName}} (--help | --version)

OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
{{.Description}}`

const (
	LogFieldGroups  = "groups"
	LogFieldTimeout = "timeout"
	LogFieldReady   = "ready"
)
