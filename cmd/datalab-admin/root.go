package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/datalab-ge/datalab-api/internal/admin"
	"github.com/datalab-ge/datalab-api/internal/client"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/console"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/localstore"
	"github.com/datalab-ge/datalab-api/internal/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consoleApp holds everything a command needs; it is filled in by the root pre-run hook
type consoleApp struct {
	cfg   *config.Config
	log   *zap.Logger
	api   *client.Client
	ctrl  *admin.Controller
	view  *console.View
	store *localstore.Store
}

var (
	app consoleApp

	flagAPIURL string
	flagAPIKey string
	flagLocale string
	flagDark   string
)

var rootCmd = &cobra.Command{
	Use:               "datalab-admin",
	Short:             "DataLab admin console: requests, messages, testimonials, Kanban and analytics",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return app.close()
	},
	RunE: runSummary,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", "", "API base URL (overrides client.apiBaseUrl / BACKEND_URL)")
	pf.StringVar(&flagAPIKey, "api-key", "", "admin API key (overrides client.apiKey)")
	pf.StringVar(&flagLocale, "locale", "", "display locale: ka or en")
	pf.StringVar(&flagDark, "dark", "", "dark color scheme: true or false")

	rootCmd.AddCommand(summaryCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if flagAPIURL != "" {
		cfg.Client.APIBaseURL = flagAPIURL
	}
	if flagAPIKey != "" {
		cfg.Client.APIKey = flagAPIKey
	}
	if flagLocale != "" {
		cfg.Display.Locale = flagLocale
	}
	if flagDark != "" {
		cfg.Display.DarkMode = strings.EqualFold(flagDark, "true")
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return err
	}

	api, err := client.NewFromConfig(&cfg.Client)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}

	view := console.NewView(os.Stdout, cfg.Display)
	app = consoleApp{
		cfg:  cfg,
		log:  log,
		api:  api,
		view: view,
		ctrl: admin.NewController(api, view, log.Named("admin")),
	}
	return nil
}

// localStore opens the manual task store on first use
func (a *consoleApp) localStore() (*localstore.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := localstore.OpenConfig(&a.cfg.LocalStore)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	a.store = store
	return store, nil
}

func (a *consoleApp) close() error {
	var err error
	if a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	return err
}

// snapshot returns the current data, loading it when nothing has been fetched yet
func (a *consoleApp) snapshot(ctx context.Context) (*admin.Snapshot, error) {
	if snap := a.ctrl.Snapshot(); snap != nil {
		return snap, nil
	}
	if err := a.ctrl.Refresh(ctx); err != nil {
		return nil, err
	}
	return a.ctrl.Snapshot(), nil
}

// findRequest resolves a request by UUID or case code across active and archived lists
func (a *consoleApp) findRequest(ctx context.Context, ref string) (*domain.ServiceRequestDTO, error) {
	snap, err := a.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	for _, list := range [][]domain.ServiceRequestDTO{snap.ServiceRequests, snap.ArchivedRequests} {
		for i := range list {
			if list[i].ID.String() == ref || strings.EqualFold(list[i].CaseID, ref) {
				return &list[i], nil
			}
		}
	}
	return nil, fmt.Errorf("service request %q not found", ref)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"refresh"},
	Short:   "Reload all admin data and print an overview",
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := app.ctrl.Refresh(cmd.Context()); err != nil {
		return err
	}
	app.view.Summary(app.ctrl.Snapshot())
	return nil
}
