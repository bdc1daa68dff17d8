// Package cli provides the interactive recruitment console.
//
// It wires configuration, the local collection store, the event bus and
// the company service, then runs a REPL until the user exits. Pipeline
// commands take the person id as their first argument:
//
//	select 1
//	reject 2 Position filled
//	recruit s1
//
// Commands that need more input (publish, recruit terms) prompt for it.
// See runREPL for the full command list.
package cli
