package poller

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"airgauge-hq/airgauge/pkg/config"
	"airgauge-hq/airgauge/pkg/device"
	"airgauge-hq/airgauge/pkg/storage"
	"airgauge-hq/airgauge/pkg/telemetry/metrics"
	"airgauge-hq/airgauge/pkg/thresholds"
)

// Poller is the watch daemon: it polls every configured device on a cron
// schedule, persists readings, updates the metrics collector, and logs
// threshold violations. The config file is watched for changes and
// reloaded without a restart.
type Poller struct {
	store     *storage.Store
	collector *metrics.Collector
	logger    *slog.Logger

	mu     sync.RWMutex
	cfg    *config.Config
	client *device.Client

	cron       *cron.Cron
	httpServer *http.Server

	shutdownOnce sync.Once
	shutdownChan chan struct{}
}

// New creates a poller over an already-loaded configuration and an open
// store.
func New(cfg *config.Config, store *storage.Store, collector *metrics.Collector, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		store:        store,
		collector:    collector,
		logger:       logger,
		cfg:          cfg,
		client:       device.NewClient(timeout(cfg)),
		shutdownChan: make(chan struct{}),
	}
}

func timeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Network.TimeoutSec * float64(time.Second))
}

// Run starts the schedule, the metrics endpoint, and the config watcher,
// performs one immediate collection pass, and blocks until the context is
// canceled or a fatal error occurs.
func (p *Poller) Run(ctx context.Context) error {
	cfg := p.snapshot()

	p.cron = cron.New()
	if _, err := p.cron.AddFunc(cfg.Watch.Schedule, func() {
		p.CollectAll(ctx)
	}); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", cfg.Watch.Schedule, err)
	}

	watcher, err := p.watchConfig(cfg.Path)
	if err != nil {
		return err
	}
	defer watcher.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", p.collector.Handler())
	p.httpServer = &http.Server{
		Addr:         cfg.Watch.MetricsListen,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		p.logger.Info("metrics endpoint listening", "address", cfg.Watch.MetricsListen)
		if err := p.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	p.logger.Info("watch started",
		"schedule", cfg.Watch.Schedule,
		"devices", len(cfg.Devices),
	)
	p.CollectAll(ctx)
	p.cron.Start()

	select {
	case <-ctx.Done():
		p.logger.Info("shutdown requested")
		return p.shutdown()
	case err := <-errChan:
		p.shutdown()
		return err
	case <-p.shutdownChan:
		return p.shutdown()
	}
}

// Stop requests a graceful shutdown from outside Run.
func (p *Poller) Stop() {
	p.shutdownOnce.Do(func() { close(p.shutdownChan) })
}

func (p *Poller) shutdown() error {
	stopCtx := p.cron.Stop()
	<-stopCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown error: %w", err)
	}
	p.logger.Info("watch stopped")
	return nil
}

// CollectAll polls every configured device once. Failures are logged and
// counted; they never stop the pass.
func (p *Poller) CollectAll(ctx context.Context) {
	cfg := p.snapshot()
	for _, d := range cfg.Devices {
		p.collectDevice(ctx, cfg, d)
	}
}

func (p *Poller) collectDevice(ctx context.Context, cfg *config.Config, d config.Device) {
	name := device.DisplayName(d)

	endpoint, err := device.Endpoint(d)
	if err != nil {
		p.collector.RecordFetchError(name)
		p.logger.Error("device not pollable", "device", name, "error", err)
		return
	}

	reading, err := p.fetchClient().Fetch(ctx, endpoint)
	if err != nil {
		p.collector.RecordFetchError(name)
		p.logger.Error("fetch failed", "device", name, "error", err)
		return
	}

	if err := p.store.SaveReading(ctx, name, reading); err != nil {
		p.logger.Error("store failed", "device", name, "error", err)
		return
	}
	p.collector.Observe(name, reading)

	alerts := thresholds.Evaluate(reading.Metrics(), cfg.Thresholds)
	for _, a := range alerts {
		switch a.Severity {
		case thresholds.SeverityCritical:
			p.logger.Error("threshold exceeded", "device", name, "alert", a.Message)
		default:
			p.logger.Warn("threshold exceeded", "device", name, "alert", a.Message)
		}
	}

	p.logger.Info("reading stored",
		"device", name,
		"pm25", floatAttr(reading.PM25()),
		"co2", floatAttr(reading.CO2()),
		"alerts", len(alerts),
	)
}

func floatAttr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// watchConfig reloads the configuration when its file changes. The parent
// directory is watched because editors typically replace the file by
// rename, which drops a watch on the file itself.
func (p *Poller) watchConfig(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	target := filepath.Base(path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				p.reload(path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return watcher, nil
}

// reload swaps in a freshly loaded configuration. A broken file is logged
// and the previous configuration stays active. Schedule and listen address
// changes require a restart; devices, thresholds, and the network timeout
// take effect immediately.
func (p *Poller) reload(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		p.logger.Error("config reload failed, keeping previous", "error", err)
		return
	}

	p.mu.Lock()
	old := p.cfg
	p.cfg = cfg
	if cfg.Network.TimeoutSec != old.Network.TimeoutSec {
		p.client = device.NewClient(timeout(cfg))
	}
	p.mu.Unlock()

	p.logger.Info("config reloaded", "devices", len(cfg.Devices))
}

func (p *Poller) snapshot() *config.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

func (p *Poller) fetchClient() *device.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client
}
