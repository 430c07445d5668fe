package main

import (
	"github.com/spf13/cobra"

	"github.com/mik90/kernelup/internal/messages"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, _, err := newUpdaterFunc(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return updater.List()
		},
	}
}
