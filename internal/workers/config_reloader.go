// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
)

// ConfigReloader rebuilds the API response resolver from the environment and
// the config file, and publishes it through the shared [apiconfig.Store].
//
// Reloads are triggered by SIGHUP and, when a config file is set, by writes
// to that file. A reload that fails to load or compile keeps the current
// resolver in place.
type ConfigReloader struct {
	path        string
	store       *apiconfig.Store
	serializers *serializer.Registry
	load        func(path string) (config.APIResponse, error)
	watchFile   bool

	logger *logger.Logger
	done   chan struct{}
}

// ReloaderOption configures a [ConfigReloader].
type ReloaderOption func(*ConfigReloader)

// WithoutFileWatch disables reloads on config file writes; only SIGHUP
// triggers a reload.
func WithoutFileWatch() ReloaderOption {
	return func(r *ConfigReloader) {
		r.watchFile = false
	}
}

// NewConfigReloader returns a reloader of the file at path. An empty path
// reloads from the environment only.
func NewConfigReloader(path string, store *apiconfig.Store, serializers *serializer.Registry, logger *logger.Logger, opts ...ReloaderOption) *ConfigReloader {
	r := &ConfigReloader{
		path:        path,
		store:       store,
		serializers: serializers,
		load:        config.LoadAPIResponse,
		watchFile:   path != "",
		logger:      logger,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reload loads the API response configuration and publishes a new resolver.
func (r *ConfigReloader) Reload() error {
	cfg, err := r.load(r.path)
	if err != nil {
		return fmt.Errorf("error loading api response config: %w", err)
	}

	resolver, err := apiconfig.New(cfg.Defaults, cfg.Paths, apiconfig.WithSerializerCheck(func(name string) error {
		_, err := r.serializers.Lookup(name)
		return err
	}))
	if err != nil {
		return fmt.Errorf("error compiling api response config: %w", err)
	}

	r.store.Swap(resolver)
	r.logger.Info().Int("rules", resolver.Rules()).Msg("api response config reloaded")
	return nil
}

// Run starts listening for reload triggers and returns. The listener stops
// when ctx is done; Done is closed afterwards.
func (r *ConfigReloader) Run(ctx context.Context) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	var events <-chan fsnotify.Event
	var watchErrors <-chan error
	var watcher *fsnotify.Watcher
	if r.watchFile {
		var err error
		if watcher, err = r.newWatcher(); err != nil {
			r.logger.Error().Err(err).Str("path", r.path).Msg("config file watch disabled")
		} else {
			events, watchErrors = watcher.Events, watcher.Errors
		}
	}

	go func() {
		defer close(r.done)
		defer signal.Stop(signals)
		if watcher != nil {
			defer watcher.Close()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				r.reload("sighup")
			case event, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				if r.isConfigWrite(event) {
					r.reload("file")
				}
			case err, ok := <-watchErrors:
				if !ok {
					watchErrors = nil
					continue
				}
				r.logger.Warn().Err(err).Msg("config file watch error")
			}
		}
	}()
}

// Done is closed once the listener started by Run has stopped.
func (r *ConfigReloader) Done() <-chan struct{} {
	return r.done
}

func (r *ConfigReloader) reload(trigger string) {
	if err := r.Reload(); err != nil {
		r.logger.Error().Err(err).Str("trigger", trigger).Msg("api response config reload failed, keeping current config")
	}
}

// newWatcher watches the directory of the config file so that editors
// replacing the file by rename are still observed.
func (r *ConfigReloader) newWatcher() (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if err = watcher.Add(filepath.Dir(r.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("error watching %s: %w", filepath.Dir(r.path), err)
	}
	return watcher, nil
}

func (r *ConfigReloader) isConfigWrite(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(r.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
