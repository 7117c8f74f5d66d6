package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/gravity"
)

func newDocument(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	return pdf
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 7, c, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}

// BeamPDF writes a report of a solved chain.
func BeamPDF(w io.Writer, title string, elements []fem.Element, res *fem.Result) error {
	if title == "" {
		title = "Axial Bar Report"
	}
	pdf := newDocument(title)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Elements")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
	widths := []float64{16, 24, 24, 20, 24, 28, 26, 28}
	tableRow(pdf, widths, "#", "A (m2)", "E (Pa)", "L (m)", "F (N)", "k (N/m)", "Axial (N)", "Stress (Pa)")
	for i, e := range elements {
		tableRow(pdf, widths,
			fmt.Sprint(i+1),
			fmt.Sprintf("%.4g", e.Area),
			fmt.Sprintf("%.4g", e.Modulus),
			fmt.Sprintf("%.4g", e.Length),
			fmt.Sprintf("%.4g", e.Force),
			fmt.Sprintf("%.4g", res.Stiffness[i]),
			fmt.Sprintf("%.4g", res.AxialForces[i]),
			fmt.Sprintf("%.4g", res.Stresses[i]),
		)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Nodal displacements")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
	widths = []float64{20, 40}
	tableRow(pdf, widths, "Node", "Delta (m)")
	for i, u := range res.Displacements {
		tableRow(pdf, widths, fmt.Sprint(i+1), fmt.Sprintf("%.6g", u))
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Reaction at wall: %.6g N", res.Reaction))
	pdf.Ln(6)

	return pdf.Output(w)
}

// OrbitPDF writes the final body states of an orbit run and its metrics.
func OrbitPDF(w io.Writer, title string, sys *gravity.System, metrics map[string]float64) error {
	if title == "" {
		title = "Orbit Report"
	}
	pdf := newDocument(title)

	pdf.Cell(0, 6, fmt.Sprintf("Steps: %d   Elapsed: %.2f days", sys.Steps, sys.Time/config.Day))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	widths := []float64{34, 32, 32, 30, 30, 30}
	tableRow(pdf, widths, "Body", "X (km)", "Y (km)", "VX (m/s)", "VY (m/s)", "Mass (kg)")
	for _, b := range sys.All() {
		tableRow(pdf, widths,
			b.Name,
			fmt.Sprintf("%.1f", b.Pos.X/config.Kilometer),
			fmt.Sprintf("%.1f", b.Pos.Y/config.Kilometer),
			fmt.Sprintf("%.3f", b.Vel.X),
			fmt.Sprintf("%.3f", b.Vel.Y),
			fmt.Sprintf("%.4g", b.Mass),
		)
	}

	if len(metrics) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Metrics")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		names := make([]string, 0, len(metrics))
		for name := range metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %.6g", name, metrics[name]))
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}
