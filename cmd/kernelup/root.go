package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mik90/kernelup/internal/config"
	"github.com/mik90/kernelup/internal/kernel"
	"github.com/mik90/kernelup/internal/messages"
)

var newUpdaterFunc = newUpdater

// rootOptions holds the flag values shared across subcommands.
type rootOptions struct {
	manualEdit bool
	configPath string
	yes        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, _, err := newUpdaterFunc(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return updater.Update(opts.manualEdit)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, messages.RootFlagYes)
	cmd.Flags().BoolVarP(&opts.manualEdit, "manual-edit", "m", false, messages.RootFlagManualEdit)
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newCleanCmd(opts))
	return cmd
}

// newUpdater resolves the config file, loads it, and wires up a real
// updater whose subprocess output streams to the command's writers.
func newUpdater(opts *rootOptions, out io.Writer, errOut io.Writer) (*kernel.Updater, *config.Config, error) {
	path := opts.configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, nil, err
		}
		path = discovered
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	_, _ = fmt.Fprintf(out, messages.ConfigUsingFileFmt+"\n", path)

	runner := kernel.ExecRunner{Stdout: out, Stderr: errOut}
	return kernel.New(cfg, kernel.RealSystem{}, runner, out), cfg, nil
}
