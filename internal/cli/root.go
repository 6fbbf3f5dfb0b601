package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/app"
	"github.com/dulpromax/dulpromax-b2b/internal/config"
	"github.com/dulpromax/dulpromax-b2b/internal/logger"
	"github.com/spf13/cobra"
)

// runtime carries what every command needs once flags are parsed.
type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	appOpts []app.Option

	baseURL string
	output  string
	timeout time.Duration

	app *app.App
}

// NewRootCmd assembles the catalogctl command tree. The runtime is built
// lazily so flag overrides apply before the API client is constructed.
func NewRootCmd(cfg *config.Config, log logger.Logger, opts ...app.Option) *cobra.Command {
	if log == nil {
		log = logger.NopLogger{}
	}
	rt := &runtime{cfg: cfg, log: log, appOpts: opts}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Command line client for the DulProMax B2B catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&rt.baseURL, "base-url", "", "Catalog API base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVarP(&rt.output, "output", "o", formatJSON, "Output format: json or yaml")
	root.PersistentFlags().DurationVar(&rt.timeout, "timeout", 0, "Per-request timeout (overrides HTTP_TIMEOUT_SECONDS)")

	root.AddCommand(
		newHealthCmd(rt),
		newPingCmd(rt),
		newWelcomeCmd(rt),
		newCategoriesCmd(rt),
		newProductsCmd(rt),
		newSnapshotCmd(rt),
	)
	closeAfterRun(root, rt)
	return root
}

// closeAfterRun makes every runnable command release the runtime, including
// when it fails. Cobra skips post-run hooks after a RunE error.
func closeAfterRun(cmd *cobra.Command, rt *runtime) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if cerr := rt.close(); err == nil {
				err = cerr
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, rt)
	}
}

// Execute runs the command tree against ctx.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if args != nil {
		cmd.SetArgs(args)
	}
	return cmd.ExecuteContext(ctx)
}

func (rt *runtime) init(ctx context.Context) error {
	if rt.app != nil {
		return nil
	}
	if rt.cfg == nil {
		return fmt.Errorf("config must not be nil")
	}
	if err := validateFormat(rt.output); err != nil {
		return err
	}

	cfg := *rt.cfg
	if u := strings.TrimSpace(rt.baseURL); u != "" {
		cfg.APIBaseURL = u
	}
	if rt.timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	if rt.timeout > 0 {
		cfg.HTTPTimeout = rt.timeout
	}

	a, err := app.New(ctx, &cfg, rt.log, rt.appOpts...)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	rt.app = a
	return nil
}

func (rt *runtime) close() error {
	if rt.app == nil {
		return nil
	}
	err := rt.app.Close()
	rt.app = nil
	return err
}

func (rt *runtime) print(w io.Writer, v any) error {
	return render(w, rt.output, v)
}
