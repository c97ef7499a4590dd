package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cstyle/internal/style"
)

// loadConfig reads --config or discovers cstyle.toml from the working
// directory. Unknown keys are reported on stderr unless --quiet.
func loadConfig(cmd *cobra.Command) (style.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return style.Config{}, err
	}
	var cfg style.Config
	if path != "" {
		cfg, err = style.Load(path)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = style.Discover(wd)
		}
	}
	if err != nil {
		return style.Config{}, fmt.Errorf("config: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		for _, key := range cfg.Undecoded {
			fmt.Fprintf(cmd.ErrOrStderr(), "config: %s: unknown key %q ignored\n", cfg.Path, key)
		}
	}
	return cfg, nil
}
