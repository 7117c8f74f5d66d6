package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/fem"
	"github.com/xuri/excelize/v2"
)

// elementHeader is the column layout of an element sheet.
var elementHeader = []interface{}{"area_m2", "modulus_gpa", "length_m", "force_n"}

// LoadElements reads a beam chain from an .xlsx file.
func LoadElements(path string) ([]config.ElementConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadElements(file)
}

// ReadElements reads one element per row from the first sheet, skipping
// the header row and blank rows. Columns are area (m²), modulus (GPa),
// length (m) and force (N).
func ReadElements(r io.Reader) ([]config.ElementConfig, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("report: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("report: sheet %s has no element rows", sheet)
	}

	var elements []config.ElementConfig
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		e, err := parseElementRow(row)
		if err != nil {
			return nil, fmt.Errorf("report: row %d: %w", i+1, err)
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseElementRow(row []string) (config.ElementConfig, error) {
	if len(row) < 4 {
		return config.ElementConfig{}, fmt.Errorf("expected 4 columns, got %d", len(row))
	}
	vals := make([]float64, 4)
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return config.ElementConfig{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return config.ElementConfig{
		Area:       vals[0],
		ModulusGPa: vals[1],
		Length:     vals[2],
		Force:      vals[3],
	}, nil
}

// WriteElements writes a sheet that ReadElements accepts.
func WriteElements(w io.Writer, elements []config.ElementConfig) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Elements"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &elementHeader); err != nil {
		return err
	}
	for i, e := range elements {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{e.Area, e.ModulusGPa, e.Length, e.Force}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// WriteBeamResult writes a workbook with an Elements sheet and a Nodes sheet.
func WriteBeamResult(w io.Writer, elements []fem.Element, res *fem.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Elements"); err != nil {
		return err
	}
	header := []interface{}{"element", "area_m2", "modulus_pa", "length_m", "force_n", "k_n_per_m", "axial_n", "stress_pa"}
	if err := f.SetSheetRow("Elements", "A1", &header); err != nil {
		return err
	}
	for i, e := range elements {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{i + 1, e.Area, e.Modulus, e.Length, e.Force, res.Stiffness[i], res.AxialForces[i], res.Stresses[i]}
		if err := f.SetSheetRow("Elements", cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Nodes"); err != nil {
		return err
	}
	header = []interface{}{"node", "displacement_m"}
	if err := f.SetSheetRow("Nodes", "A1", &header); err != nil {
		return err
	}
	for i, u := range res.Displacements {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{i + 1, u}
		if err := f.SetSheetRow("Nodes", cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
