// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

const metricsAddrFlag = "metrics-addr"

// rootCommand builds a fresh command tree bound to a. Global settings (token,
// owner, storage) are parsed by the config package before the tree runs.
func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mylg-client",
		Short: "Read and edit projects through the local sync cache",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: no command given", ErrUsage)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.updateCommand(),
		a.eventsCommand(),
		a.watchCommand(),
	)
	return root
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [owner]",
		Short: "List project summaries of an owner",
		Long: `List project summaries of owner, or of the default owner when omitted.
When the API cannot be reached a cached list is printed with a warning.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd.Context(), args)
		},
	}
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show the full project record and its freshness",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.get(cmd.Context(), args[0])
		},
	}
}

func (a *App) updateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "update <project-id> <json>",
		Short:   "Patch project fields",
		Example: `  mylg-client update p1 '{"title":"New roof"}'`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *App) eventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "events <project-id> <json-array>",
		Short:   "Replace the project timeline",
		Example: `  mylg-client events p1 '[{"date":"2026-05-01","description":"Install"}]'`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.events(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *App) watchCommand() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch [owner]",
		Short: "Refresh the project list until interrupted",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args, metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, metricsAddrFlag, "", "serve Prometheus metrics on host:port while watching")
	return cmd
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
