package retained

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the engine tunables, loadable from a lattice.toml file.
type Config struct {
	Scroll         ScrollConfig         `toml:"scroll"`
	Virtualization VirtualizationConfig `toml:"virtualization"`
	Tree           TreeConfig           `toml:"tree"`
	Table          TableConfig          `toml:"table"`
	Debug          DebugConfig          `toml:"debug"`
}

type ScrollConfig struct {
	// Multiplier applied to wheel deltas
	Factor float32 `toml:"factor"`
	// Duration of animated ScrollTo, in milliseconds
	AnimationMS int `toml:"animation_ms"`
	// Easing name, see EasingByName
	Easing string `toml:"easing"`
}

type VirtualizationConfig struct {
	// Extra items realized after the last visible one
	Overscan int `toml:"overscan"`
	// Item extent used when a list has neither an explicit extent nor a
	// measurable template
	DefaultItemExtent float32 `toml:"default_item_extent"`
	// Viewport extent used when a list is measured with an unconstrained height
	MaxUnconstrainedViewport float32 `toml:"max_unconstrained_viewport"`
	// Recycled nodes kept per container (0 = unbounded)
	PoolLimit int `toml:"pool_limit"`
}

type TreeConfig struct {
	Indent    float32 `toml:"indent"`
	RowExtent float32 `toml:"row_extent"`
}

type TableConfig struct {
	// Height of the header and of every body row
	RowExtent float32 `toml:"row_extent"`
}

type DebugConfig struct {
	// Print measure/arrange/realization traces
	Layout bool `toml:"layout"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Scroll: ScrollConfig{
			Factor:      1,
			AnimationMS: 250,
			Easing:      "out-cubic",
		},
		Virtualization: VirtualizationConfig{
			Overscan:                 1,
			DefaultItemExtent:        24,
			MaxUnconstrainedViewport: 2048,
			PoolLimit:                64,
		},
		Tree: TreeConfig{
			Indent:    16,
			RowExtent: 24,
		},
		Table: TableConfig{
			RowExtent: 24,
		},
	}
}

// Validate returns a copy of c with out-of-range values replaced by
// defaults or clamped into range.
func (c Config) Validate() Config {
	def := DefaultConfig()
	if c.Scroll.Factor <= 0 {
		c.Scroll.Factor = def.Scroll.Factor
	}
	if c.Scroll.AnimationMS < 0 {
		c.Scroll.AnimationMS = 0
	}
	if EasingByName(c.Scroll.Easing) == nil {
		c.Scroll.Easing = def.Scroll.Easing
	}
	if c.Virtualization.Overscan < 0 {
		c.Virtualization.Overscan = 0
	}
	if c.Virtualization.DefaultItemExtent <= 0 {
		c.Virtualization.DefaultItemExtent = def.Virtualization.DefaultItemExtent
	}
	if c.Virtualization.MaxUnconstrainedViewport <= 0 {
		c.Virtualization.MaxUnconstrainedViewport = def.Virtualization.MaxUnconstrainedViewport
	}
	if c.Virtualization.PoolLimit < 0 {
		c.Virtualization.PoolLimit = 0
	}
	if c.Tree.Indent < 0 {
		c.Tree.Indent = 0
	}
	if c.Tree.RowExtent <= 0 {
		c.Tree.RowExtent = def.Tree.RowExtent
	}
	if c.Table.RowExtent <= 0 {
		c.Table.RowExtent = def.Table.RowExtent
	}
	return c
}

// ParseConfig decodes TOML on top of the defaults. Keys absent from data
// keep their default values.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, err
	}
	return config.Validate(), nil
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
