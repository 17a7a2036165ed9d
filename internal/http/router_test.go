package http

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	app := setupTestApp(t, true)
	router := app.router()

	t.Run("root redirects to book list", func(t *testing.T) {
		w := serve(router, "/")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/books", w.Header().Get("Location"))
	})

	t.Run("ping", func(t *testing.T) {
		w := serve(router, "/ping")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("sets security headers", func(t *testing.T) {
		w := serve(router, "/books")

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	})

	t.Run("lists authors", func(t *testing.T) {
		w := serve(router, "/api/authors")

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Authors []struct {
				FirstName string `json:"first_name"`
				LastName  string `json:"last_name"`
				Books     []struct {
					Title string `json:"title"`
				} `json:"books"`
			} `json:"authors"`
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		require.Len(t, response.Authors, 2)
		assert.Equal(t, "Eric", response.Authors[0].FirstName)
		require.Len(t, response.Authors[0].Books, 1)
		assert.Equal(t, "Domain Driven Design", response.Authors[0].Books[0].Title)
	})

	t.Run("lists publishers", func(t *testing.T) {
		w := serve(router, "/api/publishers")

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(router, "/api/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLoadTemplates(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		tmpl, err := loadTemplates("")
		require.NoError(t, err)
		assert.NotNil(t, tmpl.Lookup(BookListTemplate))
		assert.NotNil(t, tmpl.Lookup("layout/header"))
	})

	t.Run("from directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "books"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "books", "list.html"),
			[]byte(`{{define "books/list"}}{{len .books}} books{{end}}`),
			0o644,
		))

		tmpl, err := loadTemplates(dir)
		require.NoError(t, err)
		assert.NotNil(t, tmpl.Lookup(BookListTemplate))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := loadTemplates(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}
