package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindConfig wires cmd's persistent flags into viper, reading
// .revtree.yaml (or the file named by --config) and REVTREE_*
// environment variables on top, grounded on google-skia-buildbot's
// viper.BindPFlag/SetEnvPrefix use for its own CLI tools.
func bindConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("revtree")
	v.AutomaticEnv()

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".revtree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("read config: %w", err)
		}
	}

	for _, name := range []string{"verbose", "match-window"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return fmt.Errorf("bind %s: %w", name, err)
			}
		}
	}

	globalConfig = v
	return nil
}

var globalConfig *viper.Viper

func configVerbose() bool {
	if globalConfig == nil {
		return false
	}
	return globalConfig.GetBool("verbose")
}

func configMatchWindow() time.Duration {
	if globalConfig == nil {
		return 0
	}
	return globalConfig.GetDuration("match-window")
}
