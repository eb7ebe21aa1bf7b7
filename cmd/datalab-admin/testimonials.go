package main

import (
	"github.com/spf13/cobra"
)

var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "Manage testimonials",
}

var testimonialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all testimonials, active or not",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := app.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		app.view.Testimonials(snap.Testimonials)
		return nil
	},
}

func setActiveCmd(use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: use + " a testimonial on the public site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.ctrl.SetTestimonialActive(cmd.Context(), id, active)
		},
	}
}

func init() {
	testimonialsCmd.AddCommand(testimonialsListCmd, setActiveCmd("activate", true), setActiveCmd("deactivate", false))
	rootCmd.AddCommand(testimonialsCmd)
}
