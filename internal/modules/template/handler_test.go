package template

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateRouter() *chi.Mux {
	router := chi.NewRouter()
	NewHandler(DefaultRegistry()).RegisterRoutes(router)
	return router
}

func TestListTemplates(t *testing.T) {
	router := templateRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/variant-templates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var templates []VariantTemplate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&templates))
	assert.Len(t, templates, 5)
	assert.Equal(t, "size-standard", templates[0].ID)
}

func TestListTemplatesByCategory(t *testing.T) {
	router := templateRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/variant-templates?category=topping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var templates []VariantTemplate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&templates))
	require.Len(t, templates, 1)
	assert.Equal(t, "topping-milktea", templates[0].ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/variant-templates?category=flavour", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTemplate(t *testing.T) {
	router := templateRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/variant-templates/temperature", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var tpl VariantTemplate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tpl))
	assert.Equal(t, "Nhiệt độ", tpl.Name)
	assert.Len(t, tpl.DefaultValues, 4)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/variant-templates/none", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
