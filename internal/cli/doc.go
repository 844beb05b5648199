// Package cli defines the skillsmith command tree. Each command lives in
// its own file with an init() that registers it on the root command.
package cli
