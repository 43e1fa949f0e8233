// Package cli provides the interactive admin console for the site backend.
//
// It wires configuration, the persisted session, API services, and an
// interactive REPL. Public commands (news listing, contact form) work
// without authentication; management commands divert to the login prompt
// when no credential is stored.
//
// Key features:
//   - Login / Logout with a file-backed session that survives restarts
//   - List received contact messages
//   - Create news articles with an optional PDF attachment
//   - Delete news articles (with confirmation)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
