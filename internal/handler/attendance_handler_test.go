package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

func newAttendanceApp() *fiber.App {
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	h := NewAttendanceHandler(kvstore.NewMemoryStore(), nil, hub)

	app := fiber.New()
	app.Get("/attendance", h.GetSheet)
	app.Post("/attendance", h.MarkSheet)
	return app
}

func getSheet(t *testing.T, app *fiber.App, branch, date string) model.AttendanceSheet {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/attendance?branch="+branch+"&date="+date, nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var sheet model.AttendanceSheet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sheet))
	return sheet
}

func TestGetSheetUnmarkedDay(t *testing.T) {
	app := newAttendanceApp()

	sheet := getSheet(t, app, "GANGA", "2026-08-30")
	assert.Equal(t, "GANGA", sheet.Branch)
	assert.Empty(t, sheet.Marks)
}

func TestMarkSheetMergesMarks(t *testing.T) {
	app := newAttendanceApp()

	first := httptest.NewRequest("POST", "/attendance", strings.NewReader(
		`{"branch":"GANGA","date":"2026-08-30","marks":{"STU-001":"present","STU-002":"absent"}}`))
	first.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(first)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// Re-submitting only STU-002 must not wipe STU-001's mark.
	second := httptest.NewRequest("POST", "/attendance", strings.NewReader(
		`{"branch":"GANGA","date":"2026-08-30","marks":{"STU-002":"present"}}`))
	second.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(second)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	sheet := getSheet(t, app, "GANGA", "2026-08-30")
	assert.Equal(t, model.AttendancePresent, sheet.Marks["STU-001"])
	assert.Equal(t, model.AttendancePresent, sheet.Marks["STU-002"])
}

func TestMarkSheetRejectsUnknownMark(t *testing.T) {
	app := newAttendanceApp()

	req := httptest.NewRequest("POST", "/attendance", strings.NewReader(
		`{"branch":"GANGA","date":"2026-08-30","marks":{"STU-001":"late"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMarkSheetRequiresBranchAndDate(t *testing.T) {
	app := newAttendanceApp()

	req := httptest.NewRequest("POST", "/attendance", strings.NewReader(
		`{"marks":{"STU-001":"present"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/attendance", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
