package main

import (
	"fmt"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:     "messages",
	Aliases: []string{"msg"},
	Short:   "Manage contact messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages with counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := app.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		app.view.ContactMessages(snap.ContactMessages)
		fmt.Fprintf(cmd.OutOrStdout(), "\nnew %d, read %d, replied %d\n",
			snap.ContactStats.New, snap.ContactStats.Read, snap.ContactStats.Replied)
		return nil
	},
}

var messagesStatusCmd = &cobra.Command{
	Use:   "status <id> <new|read|replied>",
	Short: "Change the status of a contact message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status := domain.ContactMessageStatus(args[1])
		if !status.IsValid() {
			return fmt.Errorf("unknown message status %q", args[1])
		}
		return app.ctrl.UpdateMessageStatus(cmd.Context(), id, status)
	},
}

func init() {
	messagesCmd.AddCommand(messagesListCmd, messagesStatusCmd)
	rootCmd.AddCommand(messagesCmd)
}
