package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mik90/kernelup/internal/messages"
	"github.com/mik90/kernelup/internal/terminal"
)

var (
	isInteractiveFunc = terminal.IsInteractive
	confirmFunc       = confirmPrompt
)

// confirmPrompt shows a yes/no prompt and returns the choice.
func confirmPrompt(title string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().Title(title).Value(&confirmed).Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func newCleanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CleanUse,
		Short: messages.CleanShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, _, err := newUpdaterFunc(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !opts.yes && isInteractiveFunc() {
				pending, err := updater.PendingEvictions()
				if err != nil {
					return err
				}
				if pending > 0 {
					title := fmt.Sprintf(messages.CleanConfirmPromptFmt, pending, updater.InstallDir())
					confirmed, err := confirmFunc(title)
					if err != nil {
						return err
					}
					if !confirmed {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.CleanAborted)
						return nil
					}
				}
			}
			return updater.Clean()
		},
	}
}
