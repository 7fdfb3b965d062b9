package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []AgendaRow {
	return []AgendaRow{
		{Date: "2026-03-09", StartTime: "07:00", EndTime: "08:00", Name: "Gimnasio", Category: "personal", Recurring: true},
		{Date: "2026-03-09", StartTime: "11:00", EndTime: "12:00", Name: "Dentista", Category: "personal"},
		{Date: "2026-03-10", Name: "Trámite banco", Category: "other"},
	}
}

func TestExportCSV(t *testing.T) {
	data, filename, mime, err := NewAgendaExporter().Export(FormatCSV, "2026-03", sampleRows())

	require.NoError(t, err)
	assert.Equal(t, "2026-03_agenda.csv", filename)
	assert.Equal(t, "text/csv", mime)

	want := "date,holiday,start_time,end_time,name,category,recurring\n" +
		"2026-03-09,,07:00,08:00,Gimnasio,personal,yes\n" +
		"2026-03-09,,11:00,12:00,Dentista,personal,\n" +
		"2026-03-10,,,,Trámite banco,other,\n"
	assert.Equal(t, want, string(data))
}

func TestExportExcel(t *testing.T) {
	data, filename, mime, err := NewAgendaExporter().Export(FormatExcel, "2026-03", sampleRows())

	require.NoError(t, err)
	assert.Equal(t, "2026-03_agenda.xlsx", filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mime)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportPDF(t *testing.T) {
	data, filename, mime, err := NewAgendaExporter().Export(FormatPDF, "2026-03", sampleRows())

	require.NoError(t, err)
	assert.Equal(t, "2026-03_agenda.pdf", filename)
	assert.Equal(t, "application/pdf", mime)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, _, _, err := NewAgendaExporter().Export("docx", "2026-03", nil)
	assert.Error(t, err)
}
