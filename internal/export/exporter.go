package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// AgendaRow is one line of the exported month agenda.
type AgendaRow struct {
	Date      string
	Holiday   string
	StartTime string
	EndTime   string
	Name      string
	Category  string
	Recurring bool
}

// AgendaExporter renders a month agenda in the requested format, returning
// the file bytes, filename and MIME type.
type AgendaExporter interface {
	Export(format string, title string, rows []AgendaRow) ([]byte, string, string, error)
}

type agendaExporter struct{}

func NewAgendaExporter() AgendaExporter {
	return &agendaExporter{}
}

func (e *agendaExporter) Export(format, title string, rows []AgendaRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		return e.exportCSV(title, rows)
	case FormatExcel:
		return e.exportExcel(title, rows)
	case FormatPDF:
		return e.exportPDF(title, rows)
	default:
		return nil, "", "", fmt.Errorf("unsupported export format %q", format)
	}
}

var agendaHeaders = []string{"date", "holiday", "start_time", "end_time", "name", "category", "recurring"}

func (r AgendaRow) record() []string {
	recurring := ""
	if r.Recurring {
		recurring = "yes"
	}
	return []string{r.Date, r.Holiday, r.StartTime, r.EndTime, r.Name, r.Category, recurring}
}

// exportCSV exports the agenda as CSV.
func (e *agendaExporter) exportCSV(title string, rows []AgendaRow) ([]byte, string, string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(agendaHeaders); err != nil {
		return nil, "", "", err
	}
	for _, r := range rows {
		if err := w.Write(r.record()); err != nil {
			return nil, "", "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", "", err
	}

	return buf.Bytes(), title + "_agenda.csv", "text/csv", nil
}

// exportExcel exports the agenda as Excel.
func (e *agendaExporter) exportExcel(title string, rows []AgendaRow) ([]byte, string, string, error) {
	f := excelize.NewFile()
	sheet := "Agenda"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", "", err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range agendaHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", "", err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		for cIdx, value := range r.record() {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, "", "", err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", "", err
	}

	return buf.Bytes(), title + "_agenda.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

// exportPDF exports the agenda as PDF.
func (e *agendaExporter) exportPDF(title string, rows []AgendaRow) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Agenda "+title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Date", "Time", "Name", "Category"}
	widths := []float64{28, 30, 82, 30}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		timeRange := ""
		if r.StartTime != "" {
			timeRange = r.StartTime + " - " + r.EndTime
		}
		name := r.Name
		if r.Recurring {
			name += " (recurring)"
		}

		pdf.CellFormat(widths[0], 6, r.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, timeRange, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Category, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	return buf.Bytes(), title + "_agenda.pdf", "application/pdf", nil
}
