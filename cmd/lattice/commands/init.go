package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/agiangrant/lattice/retained"
)

// Init implements the 'lattice init' command
func Init(args []string) error {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	path := flags.String("config", DefaultConfigFile, "Configuration file to create")
	force := flags.Bool("force", false, "Overwrite an existing file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	_, err := os.Stat(*path)
	switch {
	case err == nil && !*force:
		return fmt.Errorf("%s already exists (use -force to overwrite)", *path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat %s: %w", *path, err)
	}

	if err := retained.SaveConfig(*path, retained.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "  ✓ Created %s\n", *path)
	return nil
}
