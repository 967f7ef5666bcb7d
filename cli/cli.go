package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/classcond/cli/cmd"
	"github.com/ardnew/classcond/pkg"
)

// CLI is the top-level command-line interface for classcond.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	cmd.Options `embed:""`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Extract cmd.Extract `cmd:"" default:"withargs" help:"Extract class attributes from templates (default)."`
	Parse   cmd.Parse   `cmd:""                    help:"Resolve one class expression."`
	Classes cmd.Classes `cmd:""                    help:"List distinct class names found in templates."`
	Eval    cmd.Eval    `cmd:""                    help:"Report which classes apply under a component state."`
	Repl    cmd.Repl    `cmd:""                    help:"Resolve class expressions interactively."`
}

// Run executes the classcond CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args...)
}

// run is [Run] with extra kong options, used to redirect output in tests.
func run(
	ctx context.Context,
	exit func(code int),
	extra []kong.Option,
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Version(),
		cmd.ConfigIdentifier:  configFilePath,
		cmd.CacheIdentifier:   cachePath(),
		cmd.HistoryIdentifier: cachePath(baseHistory),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars()).
		CloneWith(cli.Options.Vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	opts := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(&cli.Options),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath+".yaml"),
		vars,
	}

	parser, err := kong.New(&cli, append(opts, extra...)...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
