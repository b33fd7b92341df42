// Shared helpers for lawdesk CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/internal/session"
	"github.com/lexhall/lawdesk/internal/session/httpauth"
	"github.com/lexhall/lawdesk/internal/storage"
	"github.com/lexhall/lawdesk/pkg/types"
)

// newLogger builds the CLI logger: console output on stderr, warnings only
// unless --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// openAdapter resolves the data directory and opens the configured storage
// backend. The caller must defer adapter.Close().
func openAdapter() (storage.Adapter, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	adapter, err := storage.Open(types.Config{Backend: configBackend, DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return adapter, nil
}

// openPractice opens the storage adapter and wires the entity stores over
// it. The caller must defer adapter.Close().
func openPractice() (*practice.Practice, storage.Adapter, error) {
	adapter, err := openAdapter()
	if err != nil {
		return nil, nil, err
	}
	return practice.New(adapter, newLogger()), adapter, nil
}

// sessionGate builds and starts the session gate over the configured
// identity service. Returns nil when no auth URL is configured.
func sessionGate(ctx context.Context, adapter storage.Adapter) *session.Gate {
	if configAuth.URL == "" {
		return nil
	}
	client := httpauth.New(configAuth, adapter)
	gate := session.New(client, client, newLogger())
	gate.Start(ctx)
	return gate
}

// guardSession enforces the session gate for protected commands. Local-only
// setups (no auth URL, or auth.required false) pass through.
func guardSession(ctx context.Context, adapter storage.Adapter) error {
	if !configAuth.Required {
		return nil
	}
	gate := sessionGate(ctx, adapter)
	if gate == nil {
		return nil
	}
	if err := gate.Guard(); err != nil {
		return fmt.Errorf("%w: run `lawdesk login` first", err)
	}
	return nil
}

// printJSON writes v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printTable writes rows as tab-aligned columns with a header line.
func printTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// strPtrIfChanged returns a pointer to v when the named flag was set on
// cmd, nil otherwise. Patch structs treat nil as "leave unchanged".
func strPtrIfChanged(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}
