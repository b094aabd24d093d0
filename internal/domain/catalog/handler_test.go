package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(setupDB(t), nil))
	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api, api.Group("/admin"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestHandler_CRUD(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/v1/admin/packages",
		`{"name":"Safari","duration_days":5,"price":2400,"inclusions":"Game drives\nPark fees","exclusions":["Flights"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created PackageView
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	assert.Equal(t, []string{"Game drives", "Park fees"}, created.Inclusions)
	assert.Equal(t, "Game drives\nPark fees", created.InclusionsText)
	assert.Equal(t, []string{"Flights"}, created.Exclusions)

	w = do(r, http.MethodGet, "/api/v1/packages?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items      []PackageView  `json:"items"`
		Pagination map[string]int `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pagination["total"])
	assert.Equal(t, 10, page.Pagination["limit"])

	path := "/api/v1/admin/packages/" + strconv.FormatInt(created.ID, 10)
	w = do(r, http.MethodPut, path, `{"name":"Big Five Safari","duration_days":6,"price":2600,"inclusions":["Lodge"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated PackageView
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, []string{"Lodge"}, updated.Inclusions)
	assert.Equal(t, []string{}, updated.Exclusions)

	w = do(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/packages/"+strconv.FormatInt(created.ID, 10), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w).Error.Code)
}

func TestHandler_Validation(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{name: "bad json", method: http.MethodPost, path: "/api/v1/admin/hotels", body: `{`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "missing name", method: http.MethodPost, path: "/api/v1/admin/hotels", body: `{"stars":3}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "stars out of range", method: http.MethodPost, path: "/api/v1/admin/hotels", body: `{"name":"x","stars":9}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "numeric list", method: http.MethodPost, path: "/api/v1/admin/hotels", body: `{"name":"x","amenities":5}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unknown destination", method: http.MethodPost, path: "/api/v1/admin/hotels", body: `{"name":"x","destination_id":77}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "bad id", method: http.MethodGet, path: "/api/v1/hotels/abc", status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "bad featured", method: http.MethodGet, path: "/api/v1/hotels?featured=maybe", status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "bad destination filter", method: http.MethodGet, path: "/api/v1/hotels?destination_id=-1", status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "missing", method: http.MethodGet, path: "/api/v1/events/12", status: http.StatusNotFound, code: "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			env := decode(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
