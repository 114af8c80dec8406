// Package output provides structured output and error handling for the
// mdformat CLI.
//
// Commands write through a Printer so that every result can be produced
// either as plain text for people or as JSON for scripts and agents:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Print(markdown)
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "...", "code": N} on the main
// writer. In human mode they are styled with lipgloss and written to the
// error writer set with WithStderr. Styles are dropped when the output is
// not a terminal or when --color never is given.
//
// Warn always writes to the error writer, as a {"warning": "..."} line in
// JSON mode, so stdout keeps a single result document.
//
// Diagnostics that must never reach stdout, such as the notices printed by
// the MCP server while stdout carries the protocol, go through Stderr.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, unreadable input, bad config
//	output.ExitSystemError // 2: write failures, server failures
//
// Use NewUserError and NewSystemErrorWithCause to attach a code to an error;
// GetExitCode maps any error back to a process exit code.
package output
