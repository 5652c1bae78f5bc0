// Package logging configures slog for the CLI and the MCP server.
//
// Ordinary CLI runs log warnings as text on stderr (Console). With --debug
// the CLI writes debug-level JSON to ~/.amankeys/logs/amankeys.log instead,
// including the per-stage counts of the extraction pipeline. The MCP server
// logs to ~/.amankeys/logs/server.log only; see SetupServeMode.
//
// Log files rotate by size through RotatingWriter.
package logging
