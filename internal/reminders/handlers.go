package reminders

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"luna-assistant-backend/internal/analytics"
	"luna-assistant-backend/internal/auth"
	"luna-assistant-backend/internal/remindtime"
)

func ListHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := store.ListUpcoming(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		// refresh labels against the current clock for list display
		now := time.Now()
		type listItem struct {
			Reminder
			RelativeText string `json:"relative_text"`
		}
		out := make([]listItem, 0, len(items))
		for _, rem := range items {
			out = append(out, listItem{
				Reminder:     rem,
				RelativeText: remindtime.FormatForDisplay(rem.RemindAt, now),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

func DoneHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := idFromPath(r.URL.Path, "done")
		if err != nil {
			http.Error(w, "bad reminder id", http.StatusBadRequest)
			return
		}

		changed, err := store.MarkDone(r.Context(), uid, id)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if !changed {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), store.DB, env, "reminder_done",
			map[string]any{"reminder_id": id}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func RescheduleHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := idFromPath(r.URL.Path, "reschedule")
		if err != nil {
			http.Error(w, "bad reminder id", http.StatusBadRequest)
			return
		}

		var body struct {
			Phrase string `json:"phrase"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Phrase) == "" {
			http.Error(w, "phrase is required", http.StatusBadRequest)
			return
		}

		info := remindtime.Resolve(body.Phrase, time.Now())

		changed, err := store.Reschedule(r.Context(), uid, id, info.ResolvedAt, info.DisplayText, info.IsPrecise)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if !changed {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), store.DB, env, "reminder_rescheduled",
			map[string]any{"reminder_id": id, "is_precise": info.IsPrecise},
			analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           id,
			"remind_at":    info.ResolvedAt,
			"display_text": info.DisplayText,
			"is_precise":   info.IsPrecise,
		})
	}
}

// idFromPath parses /reminders/{id}/{action}.
func idFromPath(path, action string) (int, error) {
	p := strings.TrimSuffix(strings.TrimPrefix(path, "/reminders/"), "/"+action)
	return strconv.Atoi(p)
}
