package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// planFlagAliases accept the unlockpath.toml key names as flag names.
var planFlagAliases = map[string]string{
	"iteration-limit": "limit",
	"candidate-cap":   "candidates",
	"batch-size":      "batch",
}

func addPlanFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), planFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
