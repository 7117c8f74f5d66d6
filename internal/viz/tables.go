package viz

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/gravity"
)

// Bodies lists positions in km (1 decimal) and velocities in m/s
// (3 decimals).
func Bodies(sys *gravity.System) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX (km)\tY (km)\tVX (m/s)\tVY (m/s)")
	for _, body := range sys.All() {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.3f\t%.3f\n",
			body.Name,
			body.Pos.X/config.Kilometer,
			body.Pos.Y/config.Kilometer,
			body.Vel.X,
			body.Vel.Y,
		)
	}
	w.Flush()
	return b.String()
}

// Beam lists per-node displacements and per-element results, followed by
// a displacement plot along the chain.
func Beam(elements []fem.Element, res *fem.Result) string {
	var b strings.Builder

	b.WriteString(Header("DISPLACEMENTS") + "\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tDELTA (m)")
	for i, u := range res.Displacements {
		fmt.Fprintf(w, "%d\t%.6g\n", i+1, u)
	}
	w.Flush()

	b.WriteString("\n" + Header("ELEMENTS") + "\n")
	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ELEMENT\tK (N/m)\tAXIAL (N)\tSTRESS (Pa)")
	for i := range elements {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\n", i+1, res.Stiffness[i], res.AxialForces[i], res.Stresses[i])
	}
	w.Flush()

	fmt.Fprintf(&b, "\nreaction at wall: %.6g N\n\n", res.Reaction)
	b.WriteString(asciigraph.Plot(res.Displacements,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("displacement by node"),
	))
	b.WriteString("\n")
	return b.String()
}
