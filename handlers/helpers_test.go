package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/handlers"
	"github.com/pureaura/clinic-backend/models"
	"github.com/pureaura/clinic-backend/notifications"
	"github.com/pureaura/clinic-backend/routes"
	"github.com/pureaura/clinic-backend/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.Staff{},
		&models.GalleryItem{},
		&models.Booking{},
		&models.Review{},
		&models.Setting{},
	))
	return db
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) Send(toName, toEmail, subject, htmlContent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return m.err
}

func newTestApp(t *testing.T, mailer notifications.Mailer) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	dispatcher := notifications.NewDispatcher(mailer, "clinic@test.local", notifications.ClinicInfo{
		Name:    "Test Clinic",
		Address: "Teststraat 1, Almere",
		Phone:   "+31 6 00000000",
	})

	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	routes.PublicRoutes(app)
	routes.BookingRoutes(app, handlers.NewBookingHandler(store.NewBookingStore(db), dispatcher))
	routes.ReviewRoutes(app, handlers.NewReviewHandler(store.NewReviewStore(db)))
	routes.ContactRoutes(app, handlers.NewContactHandler(dispatcher))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
