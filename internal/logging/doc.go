// Package logging configures the process-wide zerolog logger. Verbosity is
// driven by the root command's counted -v flag; all log output goes to
// stderr so stdout stays machine-readable.
package logging
