package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookEmptyRows(t *testing.T) {
	_, err := Workbook("Students", []string{"Name"}, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestWorkbookContents(t *testing.T) {
	headers := []string{"Name", "Branch", "Rating"}
	rows := [][]any{
		{"Ravi", "GANGA", 4},
		{"Lakshmi", "SARAYU", 5},
	}

	raw, err := Workbook("Feedback", headers, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Feedback")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"Ravi", "GANGA", "4"}, got[1])
	assert.Equal(t, []string{"Lakshmi", "SARAYU", "5"}, got[2])
}

func TestFileName(t *testing.T) {
	name := FileName("StudentsList")
	assert.Contains(t, name, "StudentsList_")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
	assert.Contains(t, name, ".xlsx")
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "N/A", Timestamp(time.Time{}))
	at := time.Date(2026, 2, 14, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-14 18:45:00", Timestamp(at))
}
