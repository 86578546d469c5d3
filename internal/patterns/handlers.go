package patterns

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"luna-assistant-backend/internal/auth"
	"luna-assistant-backend/internal/reminders"
)

func Handler(dbx *sql.DB, remStore *reminders.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		notes, err := RecentNotes(r.Context(), dbx, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		done, delivered, err := remStore.CompletionStats(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		detected := Detect(notes, done, delivered)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"patterns":    detected,
			"sample_size": len(notes),
			"enough_data": len(notes) >= minSamples,
		})
	}
}
