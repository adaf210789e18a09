// Package cli runs the wutils cobra commands without letting cobra claim
// any argument for itself.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCommand returns a root command that treats every argument as input.
// Flag parsing is disabled, so "-h", "--help" and "-x" reach runE unchanged.
func NewCommand(use, short, long string, args cobra.PositionalArgs, runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Long:               long,
		Args:               args,
		RunE:               runE,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
}

// Execute runs rootCmd with args.
// Cobra routes a leading "__complete" to its hidden completion command
// regardless of options, so such calls go straight to the root command.
func Execute(ctx context.Context, rootCmd *cobra.Command, args []string) error {
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if len(args) == 0 || !isCompletionRequest(args[0]) {
		return rootCmd.ExecuteContext(ctx)
	}

	rootCmd.SetContext(ctx)
	if err := rootCmd.ValidateArgs(args); err != nil {
		return err
	}
	return rootCmd.RunE(rootCmd, args)
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}
