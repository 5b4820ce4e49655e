// Package cli provides the interactive storefront client.
//
// It wires configuration, the catalog envelope client, the category
// service, the retrieval state machine and an interactive REPL that renders
// categories, pages through them and falls back to the local menu when the
// catalog cannot be retrieved.
//
// Key features:
//   - Initial load on start (paged or all pages)
//   - Page navigation: next, prev, page N
//   - Refetch / reset
//   - Menu view with the local fallback catalog
//   - Online/offline watcher and an optional scheduled refresh
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
