// Package config loads the dashboard's TOML configuration.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The config file (explicit path, else ~/.config/lookout/config.toml)
//  3. LOOKOUT_API_URL and LOOKOUT_THEME environment variables
//
// Command-line flags are applied by the caller on top of the result. A
// missing file is not an error.
//
// # Default Values
//
//   - api_url: http://127.0.0.1:8001
//   - request_timeout: 30s
//   - theme: Nightfox
//   - log_file: ~/.local/state/lookout/lookout.log
//   - schedule: 0 9 * * * (the backend's automated run)
//   - timezone: Asia/Kolkata
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:8001"
//	request_timeout = "45s"
//	theme = "Kanagawa"
//	default_query = "Third Party Risk Assessment"
//	default_location = "Bangalore India OR remote"
//
// Every key is optional. String values are trimmed and empty values fall back
// to defaults, except log_file: an explicit log_file = "" turns file logging
// off. Tilde expansion is applied to log_file.
package config
