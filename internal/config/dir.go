// Package config locates and reads the mdformat configuration file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName  = "mdformat"
	fileName = "config.yaml"

	// EnvConfigFile names a config file directly, bypassing Dir.
	EnvConfigFile = "MDFORMAT_CONFIG"
	// EnvConfigHome replaces the whole directory lookup in Dir.
	EnvConfigHome = "MDFORMAT_CONFIG_HOME"
)

// Dir returns the directory holding mdformat's config.yaml, or "" when no
// home directory can be determined. The file is optional and only supplies
// defaults: the four heuristic switches (headings, bold, italics,
// code_blocks) and http_addr for `mdformat serve --http`.
//
// Resolution:
//   - $MDFORMAT_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/mdformat if set (on any platform)
//   - %AppData%/mdformat on Windows
//   - ~/.config/mdformat elsewhere
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FilePath returns the config file LoadDefault reads: $MDFORMAT_CONFIG when
// set, otherwise config.yaml inside Dir. It returns "" when neither is
// known, and LoadDefault then uses built-in defaults.
//
// A config.yaml that keeps bold off and moves the HTTP listener:
//
//	bold: false
//	http_addr: 127.0.0.1:9000
func FilePath() string {
	if file := os.Getenv(EnvConfigFile); file != "" {
		return file
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fileName)
}
