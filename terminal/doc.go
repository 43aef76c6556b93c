// Package terminal styles line-oriented game output with direct ANSI sequences.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - TTY detection so piped output stays plain
//   - Nil-safe palette: a nil or disabled palette returns text unchanged
//
// No cursor control or raw mode is used; prompts stay on the line the player
// types on and stdin remains readable by a plain token scanner.
package terminal
