package main

import (
	"fmt"
	"strconv"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/spf13/cobra"
)

var requestsCmd = &cobra.Command{
	Use:     "requests",
	Aliases: []string{"req"},
	Short:   "Manage service requests",
}

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active service requests (or archived with --archived)",
	Args:  cobra.NoArgs,
	RunE:  runRequestsList,
}

var requestsStatusCmd = &cobra.Command{
	Use:   "status <id|case-code> <status>",
	Short: "Change the status of a service request",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequestsStatus,
}

var requestsPriceCmd = &cobra.Command{
	Use:   "price <id|case-code> <amount>",
	Short: "Set the price of a service request",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequestsPrice,
}

var requestsReadCmd = &cobra.Command{
	Use:   "read <id|case-code>",
	Short: "Mark a service request as read (--unread to revert)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsRead,
}

var requestsArchiveCmd = &cobra.Command{
	Use:   "archive <id|case-code>",
	Short: "Archive a completed service request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsArchive,
}

var requestsHistoryCmd = &cobra.Command{
	Use:   "history <id|case-code>",
	Short: "Show the status history of a service request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsHistory,
}

var (
	flagArchived bool
	flagUnread   bool
)

func init() {
	requestsListCmd.Flags().BoolVar(&flagArchived, "archived", false, "list archived requests")
	requestsReadCmd.Flags().BoolVar(&flagUnread, "unread", false, "mark as unread instead")

	requestsCmd.AddCommand(requestsListCmd, requestsStatusCmd, requestsPriceCmd,
		requestsReadCmd, requestsArchiveCmd, requestsHistoryCmd)
	rootCmd.AddCommand(requestsCmd)
}

func runRequestsList(cmd *cobra.Command, args []string) error {
	snap, err := app.snapshot(cmd.Context())
	if err != nil {
		return err
	}
	if flagArchived {
		app.view.ServiceRequests(snap.ArchivedRequests)
		return nil
	}
	app.view.ServiceRequests(snap.ServiceRequests)
	return nil
}

func runRequestsStatus(cmd *cobra.Command, args []string) error {
	req, err := app.findRequest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	target := domain.ServiceRequestStatus(args[1])
	if !target.IsValid() {
		return fmt.Errorf("unknown status %q", args[1])
	}
	if !domain.ButtonTransitionAllowed(req.Status, target) {
		return fmt.Errorf("cannot move %s from %s to %s", req.CaseID, req.Status, target)
	}
	if target == domain.StatusArchived {
		return app.ctrl.Archive(cmd.Context(), req.ID)
	}
	return app.ctrl.UpdateStatus(cmd.Context(), req.ID, target)
}

func runRequestsPrice(cmd *cobra.Command, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil || price < 0 {
		return fmt.Errorf("invalid price %q", args[1])
	}
	req, err := app.findRequest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return app.ctrl.UpdatePrice(cmd.Context(), req.ID, price)
}

func runRequestsRead(cmd *cobra.Command, args []string) error {
	req, err := app.findRequest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return app.ctrl.MarkRead(cmd.Context(), req.ID, !flagUnread)
}

func runRequestsArchive(cmd *cobra.Command, args []string) error {
	req, err := app.findRequest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !domain.CanTransition(req.Status, domain.StatusArchived) {
		return fmt.Errorf("only completed requests can be archived; %s is %s", req.CaseID, req.Status)
	}
	return app.ctrl.Archive(cmd.Context(), req.ID)
}

func runRequestsHistory(cmd *cobra.Command, args []string) error {
	req, err := app.findRequest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	history, err := app.api.ServiceRequestHistory(cmd.Context(), req.ID)
	if err != nil {
		return err
	}
	app.view.History(req.CaseID, history)
	return nil
}
