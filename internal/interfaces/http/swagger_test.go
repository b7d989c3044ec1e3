package http_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/fulfillment-api/docs"
)

var routeParam = regexp.MustCompile(`:(\w+)`)

func TestSwagger_TodasLasRutasDocumentadas(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Contains(t, doc.Definitions, "dto.ErrorResponse")

	a := newAPI(t)
	documented := 0
	for _, r := range a.app.GetRoutes(true) {
		switch r.Method {
		case "GET", "POST", "PUT", "PATCH", "DELETE":
		default:
			continue
		}
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		path := routeParam.ReplaceAllString(r.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "ruta sin documentar: %s", path) {
			assert.Contains(t, ops, strings.ToLower(r.Method), "%s %s", r.Method, path)
		}
		documented++
	}
	assert.Equal(t, 16, documented)
}
