package app

import (
	"context"
	"fmt"

	"github.com/dulpromax/dulpromax-b2b/internal/config"
	"github.com/dulpromax/dulpromax-b2b/internal/logger"
	"github.com/dulpromax/dulpromax-b2b/internal/storage"
	"github.com/dulpromax/dulpromax-b2b/pkg/apiclient"
	"github.com/dulpromax/dulpromax-b2b/pkg/publishers"
)

// App is the catalog runtime. It is built once at process start and owns the
// API client, the snapshot store and the change-event fanout.
type App struct {
	cfg    *config.Config
	client *apiclient.Client
	store  storage.Store
	fanout *publishers.Fanout
	log    logger.Logger
}

// Option customizes App construction.
type Option func(*options)

type options struct {
	clientOpts []apiclient.Option
	registry   publishers.Registry
}

// WithClientOptions forwards extra options to the API client.
func WithClientOptions(opts ...apiclient.Option) Option {
	return func(o *options) { o.clientOpts = append(o.clientOpts, opts...) }
}

// WithPublisherRegistry replaces the default publisher builders.
func WithPublisherRegistry(reg publishers.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// New builds the runtime from config.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	o := options{registry: publishers.DefaultRegistry()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	clientOpts := append([]apiclient.Option{
		apiclient.WithTimeout(cfg.HTTPTimeout),
		apiclient.WithLogger(log),
	}, o.clientOpts...)
	client := apiclient.New(cfg.APIBaseURL, clientOpts...)

	store, err := storage.NewStore(cfg.SnapshotStorageType, cfg.SnapshotPath, storage.Options{})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.DebugObj("storage initialized", "storage_config", map[string]any{
		"type": cfg.SnapshotStorageType,
		"path": cfg.SnapshotPath,
	})

	fanout, err := buildFanout(ctx, cfg, o.registry, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		cfg:    cfg,
		client: client,
		store:  store,
		fanout: fanout,
		log:    log,
	}, nil
}

// buildFanout loads the optional publishers file. No file means no events.
func buildFanout(ctx context.Context, cfg *config.Config, reg publishers.Registry, log logger.Logger) (*publishers.Fanout, error) {
	if cfg.PublishersFile == "" {
		return publishers.NewFanout(nil, log), nil
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabled := publisherReg.Enabled()
	pubClients, err := publishers.BuildAll(ctx, reg, enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.DebugObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})

	return publishers.NewFanout(pubClients, log), nil
}

// Client returns the API client.
func (a *App) Client() *apiclient.Client { return a.client }

// Store returns the snapshot store.
func (a *App) Store() storage.Store { return a.store }

// Config returns the configuration the runtime was built with.
func (a *App) Config() *config.Config { return a.cfg }

// Logger returns the injected logger.
func (a *App) Logger() logger.Logger { return a.log }

// Emit fans a change event out to the configured publishers. Delivery
// failures are logged and never returned.
func (a *App) Emit(ctx context.Context, evt publishers.Event) {
	if a == nil || a.fanout.Size() == 0 {
		return
	}
	delivered, err := a.fanout.Publish(ctx, evt)
	if err != nil {
		a.log.ErrorObj("catalog event publish failed", "event_error", map[string]any{
			"event_id":  evt.EventID,
			"resource":  evt.Resource,
			"action":    evt.Action,
			"delivered": delivered,
			"error":     err.Error(),
		})
		return
	}
	a.log.DebugObj("catalog event published", "event_meta", map[string]any{
		"event_id":  evt.EventID,
		"delivered": delivered,
	})
}

// Close releases the snapshot store.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	if err := a.store.Close(); err != nil {
		a.log.ErrorObj("storage close failed", "error", err)
		return err
	}
	return nil
}
