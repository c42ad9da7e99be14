package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creative-hut/backend/internal/models"
	"github.com/creative-hut/backend/internal/routes"
	"github.com/creative-hut/backend/internal/storage"
)

// newTestApp builds the full route surface against a throwaway sqlite
// database and uploads directory. A file-backed database (not :memory:) is
// used so every pooled connection sees the same schema.
func newTestApp(t *testing.T) (*fiber.App, *storage.Uploads) {
	t.Helper()

	dir := t.TempDir()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Job{},
		&models.Application{},
		&models.Course{},
		&models.Enrollment{},
		&models.Contact{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	uploads := storage.New(filepath.Join(dir, "uploads"))
	app := fiber.New()
	routes.Register(app, gdb, uploads)
	return app, uploads
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	return doRequest(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func del(t *testing.T, app *fiber.App, path string) *http.Response {
	return doRequest(t, app, httptest.NewRequest(http.MethodDelete, path, nil))
}

func sendForm(t *testing.T, app *fiber.App, method, path string, form url.Values) *http.Response {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, req)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	return sendForm(t, app, http.MethodPost, path, form)
}

func putForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	return sendForm(t, app, http.MethodPut, path, form)
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, app, req)
}

// postMultipart sends fields plus an optional file part named fileField.
func postMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, fileField, filename string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return doRequest(t, app, req)
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func dataMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := decode(t, resp)
	data, okCast := body["data"].(map[string]interface{})
	if !okCast {
		t.Fatalf("response data is not an object: %v", body)
	}
	return data
}

func dataList(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	body := decode(t, resp)
	data, okCast := body["data"].([]interface{})
	if !okCast {
		t.Fatalf("response data is not a list: %v", body)
	}
	return data
}

// createUser inserts a user through the API and returns its id.
func createUser(t *testing.T, app *fiber.App, name, email, role string) int {
	t.Helper()
	resp := postForm(t, app, "/users", url.Values{
		"name":  {name},
		"email": {email},
		"role":  {role},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user %s: status %d", email, resp.StatusCode)
	}
	return int(dataMap(t, resp)["id"].(float64))
}

// createGig inserts a gig with an image through the API and returns its id.
func createGig(t *testing.T, app *fiber.App, title string, price, userID int, filename string) int {
	t.Helper()
	resp := postMultipart(t, app, "/gigs", map[string]string{
		"title":       title,
		"description": "test gig",
		"category":    "Design",
		"price":       strconv.Itoa(price),
		"revisions":   "2",
		"delivery":    "3",
		"user_id":     strconv.Itoa(userID),
	}, "image", filename, []byte("png-bytes"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create gig %s: status %d", title, resp.StatusCode)
	}
	return int(dataMap(t, resp)["id"].(float64))
}
