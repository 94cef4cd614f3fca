package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

var dealExportCols = []ExportColumn[models.Deal]{
	{Header: "Deal", Value: func(d models.Deal) string { return d.Name }},
	{Header: "Stage", Value: func(d models.Deal) string { return string(d.Stage) }},
	{Header: "Value", Value: func(d models.Deal) string { return FormatMoney(d.Value) }},
	{Header: "Close Date", Value: func(d models.Deal) string { return FormatDate(d.CloseDate) }},
}

func TestToExportRowsPreservesOrder(t *testing.T) {
	deals := []models.Deal{
		{Name: "Zeta deal", Stage: models.DealStageProposal, Value: 1200.5, CloseDate: day(2024, time.March, 3)},
		{Name: "Acme deal", Stage: models.DealStageClosedWon, Value: 500},
	}
	header, rows := ToExportRows(deals, dealExportCols)
	assert.Equal(t, []string{"Deal", "Stage", "Value", "Close Date"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Zeta deal", "Proposal", "1200.5", "Mar 03, 2024"}, rows[0])
	assert.Equal(t, []string{"Acme deal", "Closed Won", "500", ""}, rows[1], "zero date stringifies empty")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	deals := []models.Deal{
		{Name: "Acme, Inc. renewal", Stage: models.DealStageNegotiation, Value: 750.25, CloseDate: day(2024, time.May, 9)},
	}
	header, rows := ToExportRows(deals, dealExportCols)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, header, rows))

	out := buf.String()
	assert.Contains(t, out, "\r\n", "CRLF terminators")
	assert.Contains(t, out, `"Acme, Inc. renewal"`, "comma field gets quoted")

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, header, parsed[0])
	assert.Equal(t, rows[0], parsed[1])
}

func TestWriteCSVEmptySet(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"a"}, nil)
	require.ErrorIs(t, err, ErrEmptyExportSet)
	assert.Zero(t, buf.Len(), "no headers-only file")
}

func TestSummarizeDetails(t *testing.T) {
	assert.Equal(t, "", SummarizeDetails(nil))
	assert.Equal(t, "", SummarizeDetails(&models.ActivityDetails{}))

	full := &models.ActivityDetails{
		Field:          "stage",
		OldValue:       "Proposal",
		NewValue:       "Negotiation",
		TaskTitle:      "Follow up",
		FileName:       "notes.txt",
		TargetUserName: "Alex",
	}
	assert.Equal(t,
		"field: stage; old: Proposal; new: Negotiation; task: Follow up; file: notes.txt; target: Alex",
		SummarizeDetails(full))

	partial := &models.ActivityDetails{FileName: "contract.pdf"}
	assert.Equal(t, "file: contract.pdf", SummarizeDetails(partial))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "500", FormatMoney(500))
	assert.Equal(t, "10.25", FormatMoney(10.25))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
	assert.Equal(t, "2023-03-15 14:30:00", FormatTimestamp(testNow))
}
