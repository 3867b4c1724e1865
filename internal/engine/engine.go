package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/safephone/scamscan/internal/classifier"
	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
	"github.com/safephone/scamscan/internal/store"
)

// Engine coordinates every check type over a shared registry and report
// store.
//
// Design decision: We use a coordinator rather than exposing the
// classifiers directly because:
//  1. Commands construct one value and get every check type
//  2. The store is injected into exactly the classifiers that need it
//  3. Batch execution and logging live in one place
type Engine struct {
	registry *registry.Registry
	store    *store.Store

	urls   *classifier.URLClassifier
	emails *classifier.EmailClassifier
	apps   *classifier.AppClassifier
	wifi   *classifier.WifiClassifier
	phones *classifier.PhoneClassifier

	logger      *slog.Logger
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for batch-level logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithConcurrency sets the maximum number of concurrent checks in batch
// operations. Default is 10.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New creates an Engine over the given registry and report store.
func New(reg *registry.Registry, st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		registry:    reg,
		store:       st,
		urls:        classifier.NewURLClassifier(reg),
		emails:      classifier.NewEmailClassifier(reg, st),
		apps:        classifier.NewAppClassifier(),
		wifi:        classifier.NewWifiClassifier(),
		phones:      classifier.NewPhoneClassifier(reg, st),
		concurrency: 10,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Registry returns the official-entity registry backing the engine.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Store returns the community report store backing the engine.
func (e *Engine) Store() *store.Store {
	return e.store
}

// CheckURL classifies a single URL.
func (e *Engine) CheckURL(rawURL string) model.URLVerdict {
	return e.urls.Classify(rawURL)
}

// CheckURLs classifies a batch of URLs concurrently, preserving input
// order. Individual verdicts never fail, so the only error is context
// cancellation.
func (e *Engine) CheckURLs(ctx context.Context, rawURLs []string) ([]model.URLVerdict, error) {
	start := time.Now()
	verdicts := make([]model.URLVerdict, len(rawURLs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, raw := range rawURLs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			verdicts[i] = e.urls.Classify(raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return verdicts, err
	}

	e.logger.Debug("url batch complete",
		"total", len(rawURLs),
		"elapsed", time.Since(start),
	)
	return verdicts, nil
}

// CheckEmail classifies a sender address.
func (e *Engine) CheckEmail(ctx context.Context, rawEmail string) model.EmailVerdict {
	return e.emails.Classify(ctx, rawEmail)
}

// CheckApp classifies a single installed app.
func (e *Engine) CheckApp(app model.AppRecord) model.AppVerdict {
	return e.apps.Classify(app)
}

// CheckApps classifies every app in the list and summarizes the results.
func (e *Engine) CheckApps(apps []model.AppRecord) ([]model.AppVerdict, model.AppScanSummary) {
	verdicts := e.apps.ClassifyAll(apps)
	return verdicts, model.SummarizeApps(verdicts)
}

// CheckAppsUnverified returns the verdict used when the app inventory
// cannot be read at all.
func (e *Engine) CheckAppsUnverified() model.AppVerdict {
	return e.apps.Unverified()
}

// CheckWifi classifies the given network status.
func (e *Engine) CheckWifi(status model.WifiStatus) model.WifiVerdict {
	return e.wifi.Classify(status)
}

// CheckWifiUnverified returns the verdict used when the network state
// cannot be read at all.
func (e *Engine) CheckWifiUnverified() model.WifiVerdict {
	return e.wifi.Unverified()
}

// CheckPhone classifies a caller number against reports and official
// contacts.
func (e *Engine) CheckPhone(ctx context.Context, rawNumber string) model.PhoneVerdict {
	return e.phones.Classify(ctx, rawNumber)
}
