package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/session"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

// buildSession opens the persisted session store at the configured path.
func buildSession(cfg *internal.Config) (*session.Store, error) {
	storage := session.NewFileStorage(cfg.Session.Path)
	store, err := session.NewStore(storage, logger.L())
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// buildClient wires the API client to the store: the token is read from the
// store at dispatch time, and a 401 clears the session.
func buildClient(cfg *internal.Config, store *session.Store) (*api.Client, error) {
	return api.NewClient(
		api.Config{
			BaseURL:   cfg.API.BaseURL,
			Timeout:   cfg.API.Timeout,
			UserAgent: cfg.API.UserAgent,
		},
		api.TokenSourceFunc(store.Token),
		api.WithUnauthorizedHook(store.Logout),
		api.WithLogger(logger.L()),
	)
}

// clientSetup is the shared preamble for every CLI command that talks to the
// backend.
func clientSetup() (*internal.Config, *session.Store, *api.Client, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, nil, nil, err
	}
	setupLogging(cfg)

	store, err := buildSession(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := buildClient(cfg, store)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, store, client, nil
}

// printJSON renders command output as indented JSON on stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireAuth fails fast when no session exists instead of letting the
// backend answer 401.
func requireAuth(store *session.Store) error {
	if !store.IsAuthenticated() {
		return fmt.Errorf("not logged in, run: hrms-client login")
	}
	return nil
}
