package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/lixenwraith/gameshell/input"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a configuration template"`
}

// ConfigInitCmd scaffolds a config file the CLI will pick up on start
type ConfigInitCmd struct {
	Format string `help:"Output format" enum:"toml,yaml,json" default:"toml"`
	Output string `help:"Destination path (defaults to gameshell.<format>)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInitCmd) Run() error {
	root := map[string]any{
		"log-level": "info",
		"log-file":  "",
		"run": map[string]any{
			"tick-hz":  30.0,
			"frame-hz": 60.0,
			"sustain":  "500ms",
			"sound":    true,
			"keymap":   "",
		},
	}

	var data []byte
	var err error
	switch c.Format {
	case "toml":
		data, err = toml.Marshal(root)
	case "yaml":
		data, err = yaml.Marshal(root)
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = "gameshell." + c.Format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}

	fmt.Println("wrote", dest)
	return nil
}

// KeysCmd prints the canonical key table for keymap authors
type KeysCmd struct{}

func (KeysCmd) Run() error {
	ks := input.Default()
	for i, name := range ks.Names() {
		fmt.Printf("%4d  %s\n", i, name)
	}
	return nil
}
