package main

import (
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

// CLI is the demo's command surface
// Flags may also come from gameshell.{json,yaml,toml} in the working
// directory; explicit flags and environment override file values.
type CLI struct {
	Log struct {
		Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info"`
		File  string `help:"Also write logs to this file"`
	} `embed:"" prefix:"log-"`

	Run    RunCmd    `cmd:"" default:"withargs" help:"Run the interactive box-mover demo"`
	Keys   KeysCmd   `cmd:"" help:"Print the canonical key table (name and index)"`
	Config ConfigCmd `cmd:"" help:"Configuration helpers"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gameshell-demo"),
		kong.Description("Fixed-timestep shell demo: interpolated box mover in the terminal"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "gameshell.json"),
		kong.Configuration(kongyaml.Loader, "gameshell.yaml"),
		kong.Configuration(kongtoml.Loader, "gameshell.toml"),
	)

	logger, closers, err := SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
