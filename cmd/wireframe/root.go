package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/wireframe/pkg/config"
	"github.com/taigrr/wireframe/pkg/models"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: slog.Default()}

	root := &cobra.Command{
		Use:   "wireframe",
		Short: "Render rotating 3D wireframe models",
		Long: "wireframe projects 3D wireframe models onto a pixel buffer and\n" +
			"writes each frame of a full revolution to disk, or shows the model\n" +
			"spinning in the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRenderCmd(a),
		newViewCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	if a.configPath == "" {
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("loaded config", "path", a.configPath)
	return nil
}

// loadModel returns the normalized model named by args, or the built-in
// tetrahedron when args is empty.
func (a *app) loadModel(args []string) (*models.Object, error) {
	if len(args) == 0 {
		a.log.Debug("no model given, using tetrahedron")
		return models.CreateTetrahedron(1), nil
	}
	return loadNormalized(args[0])
}

func loadNormalized(path string) (*models.Object, error) {
	o, err := models.Load(path)
	if err != nil {
		return nil, err
	}
	if o.VertexCount() == 0 {
		return nil, fmt.Errorf("%s: model has no vertices", path)
	}
	o.NormalizeToUnitCube()
	return o, nil
}

// applyOverrides copies flags the user set explicitly over the config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config, set map[string]func()) error {
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
