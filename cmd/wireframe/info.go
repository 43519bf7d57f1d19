package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/taigrr/wireframe/pkg/math3d"
	"github.com/taigrr/wireframe/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("#A0A0A0"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

func newInfoCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "info [model]",
		Short: "Print vertex, edge and bounds statistics for a model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				o   *models.Object
				err error
			)
			if len(args) == 0 {
				o = models.CreateTetrahedron(1)
			} else if o, err = models.Load(args[0]); err != nil {
				return err
			}
			if normalize {
				o.NormalizeToUnitCube()
			}
			a.log.Debug("model loaded", "name", o.Name, "vertices", o.VertexCount())
			printInfo(cmd.OutOrStdout(), o)
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "report bounds after fitting to the unit cube")
	return cmd
}

func printInfo(w io.Writer, o *models.Object) {
	lo, hi := o.Bounds()
	row := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	lines := []string{
		titleStyle.Render(o.Name),
		row("vertices", fmt.Sprint(o.VertexCount())),
		row("edges", fmt.Sprint(o.EdgeCount())),
	}
	if bad := o.InvalidEdges(); bad > 0 {
		lines = append(lines, row("invalid edges", warnStyle.Render(fmt.Sprint(bad))))
	}
	lines = append(lines,
		row("bounds min", formatVec(lo)),
		row("bounds max", formatVec(hi)),
		row("size", formatVec(o.Size())),
	)
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}
