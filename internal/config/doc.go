// Package config manages user-level settings stored at
// ~/.skillsmith/config.yaml. The create command consults it for default
// author, category, and output directory when the flags are not given.
package config
