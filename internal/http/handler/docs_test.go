package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimart/docs"
	"agrimart/internal/http/middleware"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

func annotatedRoutes(t *testing.T) map[string]bool {
	t.Helper()
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	routes := make(map[string]bool)
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			routes[strings.ToUpper(m[2])+" "+m[1]] = true
		}
	}
	return routes
}

var fiberParam = regexp.MustCompile(`:(\w+)`)

func TestEveryRouteIsAnnotated(t *testing.T) {
	app := fiber.New()
	svcs, _, _ := newMockServices()
	RegisterRoutes(app, nil, svcs, middleware.NewRateLimiter(1, 1))

	annotated := annotatedRoutes(t)
	for _, r := range app.GetRoutes(true) {
		if r.Method == http.MethodHead {
			continue
		}
		key := r.Method + " " + fiberParam.ReplaceAllString(r.Path, "{$1}")
		assert.True(t, annotated[key], "missing swag annotation for %s", key)
	}
}

func TestAnnotationsMatchGeneratedDoc(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	for route := range annotatedRoutes(t) {
		method, path, _ := strings.Cut(route, " ")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "path %s missing from docs", path) {
			assert.Contains(t, ops, strings.ToLower(method), "operation %s missing from docs", route)
		}
	}
}
