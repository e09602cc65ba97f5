// Package config resolves texcli's configuration and the host environment
// values it consumes: config directory, documents directory, real name and
// today's date.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the texcli configuration directory.
//
// Resolution:
//   - $TEXCLI_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/texcli if set (respects XDG on any platform)
//   - %AppData%/texcli on Windows
//   - ~/.config/texcli on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TEXCLI_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "texcli")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "texcli")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "texcli")
}

// TemplatesDir returns the directory holding user templates.
func TemplatesDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// FilePath returns the path of the config file.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
