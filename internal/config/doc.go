// Package config manages user-level settings stored at ~/.stencil/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default catalog directory and the AI analyzer settings.
package config
