/*
Package session owns the mutable configuration state of the storybook.

All mutations flow through a single entry point, Manager.Update, which
normalizes the state, persists it immediately, and keeps concurrent access
to the same session serialized. Storage failures degrade gracefully: a
failed read falls back to the documented defaults and a failed write is
dropped after logging, never surfaced.
*/
package session
