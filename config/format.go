package config

import (
	"path/filepath"
	"strings"

	"github.com/ardnew/diced/pkg"
)

// Format identifies a configuration file encoding.
type Format int

// Supported configuration formats.
const (
	FormatYAML Format = iota
	FormatTOML
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatYAML

// FileName is the base name of configuration files, without extension.
const FileName = "config"

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Ext returns the preferred file extension of the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{FormatYAML.String(), FormatTOML.String()}
}

// ParseFormat returns the format with the given name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, pkg.ErrInvalidFormat.Wrapf("%q", s)
	}
}

// FormatFromPath returns the format selected by the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
