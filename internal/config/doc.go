// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (environment first, then flags,
// then the JSON file); the first source to set a field wins. The merged
// result is validated before it is handed to the rest of the application.
package config
