package analytics

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
)

// allowlist: client may only ingest UI-side events, server events are logged
// directly by their handlers.
var clientEvents = map[string]bool{
	"app_opened":          true,
	"screen_viewed":       true,
	"note_recording_done": true,
	"reminder_confirmed":  true,
	"reminder_edited":     true,
	"plan_viewed":         true,
}

func IngestHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			EventName  string         `json:"event_name"`
			Properties map[string]any `json:"properties"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(body.EventName)
		if !clientEvents[name] {
			http.Error(w, "unknown event", http.StatusBadRequest)
			return
		}

		env := FromRequest(r)
		env.UserID = uid

		_ = Log(r.Context(), dbx, env, name, body.Properties, SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
