//go:build unix

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luci/go-render/render"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mentalisttraceur/poll/consts"
	"github.com/mentalisttraceur/poll/errs"
	"github.com/mentalisttraceur/poll/events"
	"github.com/mentalisttraceur/poll/logs"
	"github.com/mentalisttraceur/poll/poller"
	"github.com/mentalisttraceur/poll/report"
	"github.com/mentalisttraceur/poll/utils"
)

// The timeout stays a string flag: the strict digits-only parse (and
// its diagnostic) belongs to us, not to the flag package.
var flagTimeout = &cli.StringFlag{
	Name:    "timeout",
	Aliases: []string{"t"},
	Usage:   "upper limit on waiting (in milliseconds)",
}

type Wrapper struct {
	app *cli.App
}

func NewWrapper() *Wrapper {
	wrapper := &Wrapper{
		app: &cli.App{
			Name:        consts.Name,
			Usage:       "wait until at least one event happens on at least one file descriptor",
			Version:     consts.Version,
			ArgsUsage:   "[[<descriptor>]... [<event>]...]...",
			Description: describeExitsAndEvents(),
		},
	}
	wrapper.modifyDefaultHelp()
	wrapper.withFlags()
	wrapper.withAction()
	wrapper.withAuthor()
	return wrapper
}

func (wrapper *Wrapper) Run(args []string) error {
	return wrapper.app.Run(normalizeArgs(args))
}

func (wrapper *Wrapper) modifyDefaultHelp() {
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
	}
	cli.VersionPrinter = func(ctx *cli.Context) {
		fmt.Fprintf(ctx.App.Writer, "%s %s\n", ctx.App.Name, ctx.App.Version)
	}
	cli.AppHelpTemplate = consts.HelpTemplate
}

func (wrapper *Wrapper) withFlags() {
	wrapper.app.Flags = []cli.Flag{
		flagTimeout,
	}
}

func (wrapper *Wrapper) withAction() {
	wrapper.app.OnUsageError = func(ctx *cli.Context, err error, _ bool) error {
		if strings.Contains(err.Error(), "needs an argument") {
			return errs.NewNeedTimeoutErr().WithErr(err)
		}
		return errs.NewBadOptionErr().WithErr(err)
	}
	wrapper.app.Action = func(ctx *cli.Context) error {
		return run(ctx.String("timeout"), ctx.IsSet("timeout"), ctx.Args().Slice(), poller.NewUnixPoller(), os.Stdout)
	}
}

func (wrapper *Wrapper) withAuthor() {
	wrapper.app.Authors = []*cli.Author{
		{
			Name:  "Alexander Kozhevnikov",
			Email: "mentalisttraceur@gmail.com",
		},
	}
}

// run is the whole tool: parse timeout, group tokens, merge, poll
// once, report. Every failure maps onto the exit code taxonomy
// through errs.
func run(timeoutArg string, timeoutSet bool, tokens []string, p poller.Poller, w io.Writer) error {
	timeout := -1 // wait forever unless told otherwise
	if timeoutSet {
		// an explicitly empty value is still a bad timeout
		value, ok := utils.ParseNonNegativeInt(timeoutArg, 32)
		if !ok {
			return errs.NewBadTimeoutErr(timeoutArg)
		}
		timeout = int(value)
	}

	if len(tokens) == 0 {
		return errs.NewNeedPollErr()
	}

	groups, err := poller.ParseTokens(tokens)
	if err != nil {
		return err
	}
	groups = poller.Merge(groups)
	logs.Debug("polling",
		zap.String(consts.LogFieldGroups, render.Render(groups)),
		zap.Int(consts.LogFieldTimeout, timeout))

	ready, err := p.Wait(groups, timeout)
	if err != nil {
		return errs.NewPollFailedErr().WithErr(err)
	}
	logs.Debug("poll returned", zap.Int(consts.LogFieldReady, ready))
	if ready == 0 {
		return errs.NewNoEventErr()
	}

	asked, err := report.Write(w, groups, ready)
	if err != nil {
		return errs.NewWriteOutputErr().WithErr(err)
	}
	if !asked {
		return errs.NewUnaskedEventErr()
	}
	return nil
}

// normalizeArgs rewrites the attached short timeout form (-t500) into
// --timeout=500, since the flag layer cannot split option and value
// itself. Scanning stops where option parsing would: at "--" or the
// first positional token.
func normalizeArgs(args []string) []string {
	normalized := make([]string, len(args))
	copy(normalized, args)
	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		if len(arg) > 2 && strings.HasPrefix(arg, "-t") && arg[2] != '=' {
			normalized[i] = "--timeout=" + arg[2:]
			continue
		}
		if arg == "-t" || arg == "--timeout" {
			i++ // the next argument is the flag value
		}
	}
	return normalized
}

func describeExitsAndEvents() string {
	var b strings.Builder
	b.WriteString("EXITS:\n")
	fmt.Fprintf(&b, "   %d  got at least one event that was asked for\n", consts.ExitAskedEventOrInfo)
	fmt.Fprintf(&b, "   %d  got only always-polled events that were not asked for\n", consts.ExitUnaskedEvent)
	fmt.Fprintf(&b, "   %d  got no events within <timeout> milliseconds\n", consts.ExitNoEvent)
	fmt.Fprintf(&b, "   %d  error in how the poll command was called\n", consts.ExitUsageError)
	fmt.Fprintf(&b, "   %d  error when trying to carry out the poll command\n", consts.ExitExecutionError)
	b.WriteString("\nNORMAL EVENTS:\n   ")
	b.WriteString(strings.Join(events.RequestableNames(), " "))
	b.WriteString("\n\nALWAYS-POLLED EVENTS:\n   ")
	b.WriteString(strings.Join(events.ResultOnlyNames(), " "))
	b.WriteString("\n")
	return b.String()
}
