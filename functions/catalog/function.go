// Package catalog serves the read-only exercise catalog endpoints.
package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	exercises "github.com/formsight/formsight-server/pkg/catalog"
)

var (
	cat     *exercises.Catalog
	catOnce sync.Once
	catErr  error
)

func init() {
	functions.HTTP("ExerciseCatalog", ExerciseCatalog)
}

func initCatalog() (*exercises.Catalog, error) {
	catOnce.Do(func() {
		cat, catErr = exercises.New()
		if catErr != nil {
			slog.Error("Catalog validation failed", "error", catErr)
		}
	})
	return cat, catErr
}

// ExerciseCatalog routes the catalog endpoints:
//
//	GET /health
//	GET /api/pose/exercises
//	GET /api/pose/exercise/{name}
func ExerciseCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	cat, err := initCatalog()

	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "/health" || path == "":
		status := "healthy"
		code := http.StatusOK
		if err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{
			"status":         status,
			"model_loaded":   err == nil,
			"exercise_count": countExercises(cat),
		})

	case path == "/api/pose/exercises":
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"supported_exercises": cat.Keys(),
		})

	case strings.HasPrefix(path, "/api/pose/exercise/"):
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		name := strings.TrimPrefix(path, "/api/pose/exercise/")
		instr, ok := cat.Instructions(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Exercise not in database"})
			return
		}
		writeJSON(w, http.StatusOK, instr)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

func countExercises(cat *exercises.Catalog) int {
	if cat == nil {
		return 0
	}
	return len(cat.Keys())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
