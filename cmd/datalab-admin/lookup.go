package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/pricing"
	"github.com/datalab-ge/datalab-api/internal/tracking"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track <case-code>",
	Short: "Look a case up by code; KB codes resolve from the local board store",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrack,
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Estimate a recovery price",
	Args:  cobra.NoArgs,
	RunE:  runPrice,
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Business metrics for a timeframe, computed from the loaded data",
	Args:  cobra.NoArgs,
	RunE:  runAnalytics,
}

var (
	flagDevice    string
	flagProblem   string
	flagUrgency   string
	flagTimeframe string
	flagExport    bool
)

func init() {
	priceCmd.Flags().StringVar(&flagDevice, "device", "", "hdd, ssd, raid, usb or sd")
	priceCmd.Flags().StringVar(&flagProblem, "problem", "", "logical, physical, water or fire")
	priceCmd.Flags().StringVar(&flagUrgency, "urgency", "", "standard, urgent or emergency")

	analyticsCmd.Flags().StringVar(&flagTimeframe, "timeframe", string(analytics.DefaultTimeframe), "week, month or year")
	analyticsCmd.Flags().BoolVar(&flagExport, "export", false, "write the report to a JSON file in the working directory")

	rootCmd.AddCommand(trackCmd, priceCmd, analyticsCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	var local tracking.LocalTasks
	if tracking.IsLocalCode(args[0]) {
		store, err := app.localStore()
		if err != nil {
			return err
		}
		local = store
	}

	record, err := tracking.NewResolver(local, app.api, app.log.Named("tracking")).Resolve(cmd.Context(), args[0])
	switch {
	case errors.Is(err, tracking.ErrNotFoundLocal), errors.Is(err, tracking.ErrNotFoundRemote):
		return fmt.Errorf("case %s not found", args[0])
	case err != nil:
		return err
	}
	app.view.Case(record)
	return nil
}

func runPrice(cmd *cobra.Command, args []string) error {
	sel := pricing.Selection{
		DeviceType:  flagDevice,
		ProblemType: flagProblem,
		Urgency:     flagUrgency,
	}
	if !sel.Complete() {
		return fmt.Errorf("%w: --device, --problem and --urgency are all required", pricing.ErrIncompleteSelection)
	}
	est, err := pricing.Calculate(sel)
	if err != nil {
		return err
	}
	app.view.Estimate(est)
	return nil
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	tf, err := analytics.ParseTimeframe(flagTimeframe)
	if err != nil {
		return err
	}
	snap, err := app.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	requests := make([]domain.ServiceRequestDTO, 0, len(snap.ServiceRequests)+len(snap.ArchivedRequests))
	requests = append(requests, snap.ServiceRequests...)
	requests = append(requests, snap.ArchivedRequests...)

	now := time.Now()
	report := analytics.Compute(requests, snap.Testimonials, tf, now)
	app.view.Analytics(report)

	if !flagExport {
		return nil
	}
	data, err := analytics.Export(report, now)
	if err != nil {
		return err
	}
	name := analytics.ExportFilename(tf, now)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	app.view.Success("Exported " + name)
	return nil
}
