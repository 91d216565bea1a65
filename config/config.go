package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/ardnew/diced/dice"
	"github.com/ardnew/diced/pkg"
)

// Config is the content of a configuration file.
type Config struct {
	// Options maps flag names to default values.
	Options map[string]any `toml:"options,omitempty" yaml:"options,omitempty"`
	// Profiles are the named collections of dice sets.
	Profiles []Profile `toml:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// Profile is a named collection of dice sets.
type Profile struct {
	Ident string    `toml:"ident" yaml:"ident"`
	Sets  []DiceSet `toml:"sets"  yaml:"sets"`
}

// DiceSet is a named list of dice rolled together.
type DiceSet struct {
	Name string     `toml:"name" yaml:"name"`
	Dice []dice.Die `toml:"dice" yaml:"dice"`
}

// Default returns the configuration written by a fresh installation.
func Default() Config {
	return Config{
		Profiles: []Profile{
			{
				Ident: "fighter",
				Sets: []DiceSet{
					{Name: "attack", Dice: []dice.Die{{Quantity: 1, Size: 20, Modifier: 5}}},
					{Name: "damage", Dice: []dice.Die{{Quantity: 2, Size: 6, Modifier: 3}}},
				},
			},
			{
				Ident: "stats",
				Sets: []DiceSet{
					{Name: "ability", Dice: []dice.Die{{Quantity: 4, Size: 6}}},
					{Name: "percentile", Dice: []dice.Die{{Quantity: 1, Size: 100}}},
				},
			},
		},
	}
}

// Find returns the path of the configuration file in dir. The first existing
// file named [FileName] with a supported extension wins; if none exists, the
// path of a file in [DefaultFormat] is returned.
func Find(dir string) string {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		path := filepath.Join(dir, FileName+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return filepath.Join(dir, FileName+DefaultFormat.Ext())
}

// Load reads the configuration file at path. A missing file yields an empty
// configuration.
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, pkg.ErrReadConfig.Wrap(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, pkg.ErrReadConfig.Wrap(err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode reads a configuration in the given format from r.
func Decode(r io.Reader, format Format) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, pkg.ErrReadConfig.Wrap(err)
	}

	var c Config

	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatTOML:
		err = toml.Unmarshal(data, &c)
	default:
		return Config{}, pkg.ErrInvalidFormat.Wrapf("%d", format)
	}

	if err != nil {
		return Config{}, pkg.ErrDecodeConfig.Wrap(err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Encode writes c to w in the given format.
func (c Config) Encode(w io.Writer, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.MarshalWithOptions(c, yaml.Indent(2), yaml.IndentSequence(true))
	case FormatTOML:
		data, err = toml.Marshal(c)
	default:
		return pkg.ErrInvalidFormat.Wrapf("%d", format)
	}

	if err != nil {
		return pkg.ErrEncodeConfig.Wrap(err)
	}

	if _, err := w.Write(data); err != nil {
		return pkg.ErrEncodeConfig.Wrap(err)
	}

	return nil
}

// Validate reports profiles without identifier and duplicate identifiers.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Profiles))

	for i, p := range c.Profiles {
		if p.Ident == "" {
			return pkg.ErrDecodeConfig.Wrapf("profile %d: missing ident", i)
		}

		if _, ok := seen[p.Ident]; ok {
			return pkg.ErrDecodeConfig.Wrapf("profile %q: duplicate ident", p.Ident)
		}

		seen[p.Ident] = struct{}{}
	}

	return nil
}

// Idents returns the identifiers of all profiles in order.
func (c Config) Idents() []string {
	idents := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		idents[i] = p.Ident
	}

	return idents
}

// Profile returns the profile with the given identifier.
func (c Config) Profile(ident string) (Profile, error) {
	for _, p := range c.Profiles {
		if p.Ident == ident {
			return p, nil
		}
	}

	return Profile{}, pkg.ErrProfileNotFound.Wrapf("%q", ident)
}

// Resolve returns the dice named by args. Without a profile identifier, args
// are parsed as dice expressions; otherwise they are resolved against the
// identified profile with [Profile.Resolve].
func (c Config) Resolve(ident string, args []string) ([]dice.Die, error) {
	if ident == "" {
		return dice.Parse(args)
	}

	p, err := c.Profile(ident)
	if err != nil {
		return nil, err
	}

	return p.Resolve(args)
}
