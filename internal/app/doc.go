// Package app provides the orchestration layer for tempview.
//
// # Overview
//
// This package wires together configuration, preferences, the refresh
// scheduler, and the UI. It is the composition root where all dependencies
// are initialized and connected; business logic lives in the domain packages
// (templog, monitor, state, ui).
//
// # Startup sequence
//
//  1. Load configuration from ~/.config/tempview/config.toml
//  2. Load presentation preferences from ~/.config/tempview/prefs.toml
//  3. Create the shared state.Store and seed the monitored file path
//  4. Launch the background poller at the refresh interval (default 180 s)
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Error handling
//
// Fatal errors (returned from Run): unreadable or invalid configuration.
// Recoverable errors (recorded in the store, schedule continues): every
// refresh failure, including a missing or malformed log file. The display
// surfaces those instead of the reading; the process never exits over them.
package app
