// Command rlexer scans and parses statements from the command line or an
// interactive prompt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Bowery/prompt"
	"github.com/hashicorp/go-hclog"
	"github.com/mkideal/cli"
	"github.com/rqlite/rlexer/cmd"
	"github.com/rqlite/rlexer/cmd/rlexer/history"
	"github.com/rqlite/rlexer/sql"
)

type argT struct {
	cli.Helper
	Tokens   bool   `cli:"t,tokens" usage:"print the token stream instead of parsing"`
	Format   string `cli:"f,format" usage:"output format (text, json, or proto)" dft:"text"`
	Compress bool   `cli:"z,compress" usage:"force gzip compression of proto output"`
	LogLevel string `cli:"l,log-level" usage:"log level (trace, debug, info, warn, or error)" dft:"warn"`
	Version  bool   `cli:"v,version" usage:"display CLI version"`
}

const cliHelp = `.help                      Show this message
.history                   Show statement history
.tokens <statement>        Print the tokens of a statement
.exit                      Exit this program
.quit                      Exit this program
`

func main() {
	cli.SetUsageStyle(cli.ManualStyle)
	os.Exit(cli.Run(new(argT), func(ctx *cli.Context) error {
		argv := ctx.Argv().(*argT)
		if argv.Help {
			ctx.WriteUsage()
			return nil
		}
		if argv.Version {
			ctx.String("Version %s, commit %s, branch %s, built on %s\n", cmd.Version,
				cmd.Commit, cmd.Branch, cmd.Buildtime)
			return nil
		}
		if _, err := newFormatter(argv.Format, argv.Compress); err != nil {
			return err
		}

		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "rlexer",
			Level:  hclog.LevelFromString(argv.LogLevel),
			Output: os.Stderr,
		})

		if args := ctx.Args(); len(args) > 0 {
			return run(ctx, argv, logger, strings.Join(args, " "))
		}
		return repl(ctx, argv, logger)
	}, "scan and parse SQL-like statements"))
}

// repl reads statements from the prompt until the user exits.
func repl(ctx *cli.Context, argv *argT, logger hclog.Logger) error {
	hist, err := history.Load()
	if err != nil {
		logger.Warn("failed to load history", "error", err)
	}
	defer func() {
		if err := history.Save(hist); err != nil {
			logger.Warn("failed to save history", "error", err)
		}
	}()

	ctx.String("Welcome to the rlexer CLI.\nEnter \".help\" for usage hints.\n")
FOR_READ:
	for {
		line, err := prompt.Basic("rlexer> ", false)
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hist = append(hist, line)

		var (
			index   = strings.Index(line, " ")
			command = line
		)
		if index >= 0 {
			command = line[:index]
		}
		switch strings.ToUpper(command) {
		case ".QUIT", ".EXIT":
			break FOR_READ
		case ".HELP":
			ctx.String("%s", cliHelp)
		case ".HISTORY":
			for i, h := range hist {
				ctx.String("%4d  %s\n", i+1, h)
			}
		case ".TOKENS":
			err = writeTokens(ctx, strings.TrimSpace(line[len(command):]))
		default:
			err = run(ctx, argv, logger, line)
		}
		if err != nil {
			ctx.String("%s %v\n", ctx.Color().Red("ERR!"), err)
		}
	}
	ctx.String("bye~\n")
	return nil
}

// run handles a single statement according to the command line flags.
func run(ctx *cli.Context, argv *argT, logger hclog.Logger, line string) error {
	if argv.Tokens {
		return writeTokens(ctx, line)
	}

	p := sql.NewParser(line)
	p.SetLogger(logger.Named("parser"))
	stmt, err := p.Parse()
	if err != nil {
		return err
	}
	logger.Debug("parsed statement", "type", fmt.Sprintf("%T", stmt))

	f, err := newFormatter(argv.Format, argv.Compress)
	if err != nil {
		return err
	}
	return f.write(ctx, stmt)
}
