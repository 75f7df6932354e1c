package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/blusalice3/sokubaikai/feature/event"
	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/source"
	sourcemocks "github.com/blusalice3/sokubaikai/feature/event/source/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, src source.RowSource) (*fiber.App, *event.Service) {
	t.Helper()
	svc, _ := newTestService(t, src)
	app := fiber.New()
	event.NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandleImportAndListItems(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest("POST", "/events/c106/import", jsonBody(t, event.ImportRequest{
		Text: "サークルA\t1日目\tあ\t01a\t新刊\t1000\nサークルB\t1日目\t\t\t欠損\t0",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result["added"])
	assert.Equal(t, 1, result["skipped"])

	resp, err = app.Test(httptest.NewRequest("GET", "/events/c106/items", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listing struct {
		Items []models.Item `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "サークルA", listing.Items[0].CircleName)
	assert.NotEmpty(t, listing.Items[0].ID)
}

func TestHandleImportValidation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest("POST", "/events/c106/import", jsonBody(t, event.ImportRequest{
		Items: []models.Item{{CircleName: "A"}},
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUnknownEventIs404(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/events/nope/items", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/events/nope", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleColumnsAndActive(t *testing.T) {
	app, svc := newTestApp(t, nil)
	ctx := context.Background()

	_, err := svc.AddItems(ctx, "c106", []models.Item{
		{ID: "a", CircleName: "A", EventDate: "1日目", Block: "あ", Number: "01a"},
		{ID: "b", CircleName: "B", EventDate: "1日目", Block: "い", Number: "02b"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/events/c106/days/day1/active", jsonBody(t, event.ActiveRequest{IDs: []string{"b"}}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/events/c106/days/day1/columns", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cols event.ColumnsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cols))
	assert.Equal(t, models.ModeEdit, cols.Mode)
	require.Len(t, cols.Active, 1)
	assert.Equal(t, "b", cols.Active[0].ID)
	require.Len(t, cols.Candidate, 1)
	assert.Equal(t, "a", cols.Candidate[0].ID)

	// Unknown day is a 400, not a 404.
	resp, err = app.Test(httptest.NewRequest("GET", "/events/c106/days/day9/columns", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleMoveAndToggle(t *testing.T) {
	app, svc := newTestApp(t, nil)
	ctx := context.Background()

	_, err := svc.AddItems(ctx, "c106", []models.Item{
		{ID: "a", CircleName: "A", EventDate: "1日目", Block: "あ", Number: "01a"},
		{ID: "b", CircleName: "B", EventDate: "1日目", Block: "い", Number: "02b"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/events/c106/items/move", jsonBody(t, event.MoveRequest{
		DraggedID: "b", TargetID: "a",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	items, err := svc.Items("c106")
	require.NoError(t, err)
	assert.Equal(t, "b", items[0].ID)

	resp, err = app.Test(httptest.NewRequest("POST", "/events/c106/days/day1/mode", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var toggled map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toggled))
	assert.Equal(t, "execute", toggled["mode"])
}

func TestHandleReconcileFlow(t *testing.T) {
	src := new(sourcemocks.RowSource)
	app, svc := newTestApp(t, src)
	ctx := context.Background()

	_, err := svc.AddItems(ctx, "c106", []models.Item{
		{ID: "a", CircleName: "サークルA", EventDate: "1日目", Block: "あ", Number: "01a", Title: "新刊", Price: 1000},
	})
	require.NoError(t, err)

	sheetRow := make([]string, 23)
	sheetRow[12], sheetRow[13], sheetRow[14], sheetRow[15], sheetRow[16], sheetRow[17] = "サークルA", "1日目", "あ", "01a", "新刊", "1200"
	src.On("Fetch", mock.Anything, "https://example.com/a.csv", "").Return([][]string{sheetRow}, nil)

	req := httptest.NewRequest("POST", "/events/c106/reconcile", jsonBody(t, event.ReconcileRequest{
		SourceURL: "https://example.com/a.csv",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var confirm event.ConfirmRequest
	confirm.SourceURL = "https://example.com/a.csv"
	require.NoError(t, json.Unmarshal(body, &confirm.ChangeSet))
	require.NotNil(t, confirm.ChangeSet)
	require.Len(t, confirm.ChangeSet.ToUpdate, 1)

	req = httptest.NewRequest("POST", "/events/c106/reconcile/confirm", jsonBody(t, confirm))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	items, err := svc.Items("c106")
	require.NoError(t, err)
	assert.Equal(t, 1200, items[0].Price)
}

func TestHandleReconcileSourceUnavailable(t *testing.T) {
	src := new(sourcemocks.RowSource)
	src.On("Fetch", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, source.ErrSourceUnavailable)
	app, svc := newTestApp(t, src)

	_, err := svc.AddItems(context.Background(), "c106", []models.Item{
		{CircleName: "A", EventDate: "1日目", Block: "あ", Number: "01a"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/events/c106/reconcile", jsonBody(t, event.ReconcileRequest{
		SourceURL: "https://example.com/broken.csv",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleExport(t *testing.T) {
	app, svc := newTestApp(t, nil)

	_, err := svc.AddItems(context.Background(), "c106", []models.Item{
		{CircleName: "サークルA", EventDate: "1日目", Block: "あ", Number: "01a", Title: "新刊", Price: 1000},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/events/c106/export", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "c106.csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(body), "サークルA")
}
