// SPDX-License-Identifier: MPL-2.0

// Package config handles wslenv configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/wslenv/config.cue on Linux,
// ~/Library/Application Support/wslenv/config.cue on macOS and
// %APPDATA%\wslenv\config.cue on Windows, then overridden by WSLENV_*
// environment variables. Files are validated against the embedded
// config_schema.cue before they are merged.
package config
