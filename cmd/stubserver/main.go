// Command stubserver runs a local development backend that answers the routes
// the offline client dispatches to. Every write is accepted and echoed back;
// nothing is persisted. Useful for exercising the queue and sync flow without
// the real payroll backend.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/models"
)

func main() {
	addr := flag.String("a", "localhost:8080", "listen address")
	flag.Parse()

	log := logger.NewLogger("staffly-stubserver")

	srv := &http.Server{
		Addr:              *addr,
		Handler:           routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("address", *addr).Msg("stub backend listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("stub backend stopped")
	}
}

func routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logger)

	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Post("/api/time-tracking/punch", acceptEcho("punch_id"))
	router.Post("/api/corrections", acceptEcho("correction_id"))

	router.Put("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user id"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "updated": true})
	})

	router.Post("/api/sync/batch", func(w http.ResponseWriter, r *http.Request) {
		var batch models.BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "malformed batch"})
			return
		}

		results := make([]models.SyncResult, 0, len(batch.Operations))
		for _, op := range batch.Operations {
			results = append(results, models.SyncResult{OperationID: op.ID, Success: true})
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	})

	router.Get("/api/employers/{id}/locations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.AllowedLocationsResponse{
			Locations: []models.Geofence{
				{
					Name:      "HQ",
					Latitude:  40.7128,
					Longitude: -74.0060,
					Radius:    150,
					WifiSSIDs: []string{"staffly-corp", "staffly-guest"},
				},
			},
		})
	})

	return router
}

// acceptEcho accepts any JSON body and answers with a fresh id plus the
// received payload, imitating the backend's create responses.
func acceptEcho(idField string) http.HandlerFunc {
	var seq int64
	return func(w http.ResponseWriter, r *http.Request) {
		var payload json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "malformed payload"})
			return
		}

		seq++
		writeJSON(w, http.StatusCreated, map[string]any{
			idField:    seq,
			"received": payload,
			"at":       time.Now().UTC(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
