package commands

import (
	"flag"
	"io"
	"os"

	"github.com/agiangrant/lattice/retained"
)

// DefaultConfigFile is the configuration file commands read by default.
const DefaultConfigFile = "lattice.toml"

// stdout receives command output.
var stdout io.Writer = os.Stdout

// sceneFlags are shared by the commands that lay out the demo scene.
type sceneFlags struct {
	config *string
	width  *int
	height *int
}

func addSceneFlags(fs *flag.FlagSet) sceneFlags {
	return sceneFlags{
		config: fs.String("config", DefaultConfigFile, "Configuration file"),
		width:  fs.Int("width", 800, "Viewport width in pixels"),
		height: fs.Int("height", 600, "Viewport height in pixels"),
	}
}

func (f sceneFlags) load() (retained.Config, error) {
	return retained.LoadConfig(*f.config)
}

func (f sceneFlags) size() retained.Size {
	return retained.Size{Width: float32(max(*f.width, 1)), Height: float32(max(*f.height, 1))}
}
