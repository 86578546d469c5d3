package notes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"luna-assistant-backend/internal/analytics"
	"luna-assistant-backend/internal/auth"
	"luna-assistant-backend/internal/reminders"
	"luna-assistant-backend/internal/remindtime"
)

func CreateHandler(dbx *sql.DB, remStore *reminders.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Text        string `json:"text"`
			InputMethod string `json:"input_method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		text := strings.TrimSpace(body.Text)
		if text == "" {
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		}

		inputMethod := body.InputMethod
		if inputMethod != "voice" {
			inputMethod = "text"
		}

		cls := Classify(text)

		var note Note
		note.Text = text
		note.Kind = cls.Kind
		note.InputMethod = inputMethod

		err := dbx.QueryRow(`
			INSERT INTO notes (user_id, text, kind, input_method)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, uid, text, string(cls.Kind), inputMethod).Scan(&note.ID, &note.CreatedAt)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		// reminder notes get scheduled right away; imprecise resolutions are
		// returned so the client can ask "did you mean tomorrow at 9am?"
		var rem *reminders.Reminder
		if cls.Kind == KindReminder {
			info := remindtime.Resolve(text, time.Now())

			rem = &reminders.Reminder{
				UserID:      uid,
				NoteID:      &note.ID,
				Message:     text,
				RemindAt:    info.ResolvedAt,
				DisplayText: info.DisplayText,
				IsPrecise:   info.IsPrecise,
			}
			if err := remStore.Create(r.Context(), rem); err != nil {
				http.Error(w, "db error (reminder)", http.StatusInternalServerError)
				return
			}
		}

		// analytics: note_created (raw text never leaves the notes table)
		{
			env := analytics.FromRequest(r)
			env.UserID = uid

			props := map[string]any{
				"note_id":      note.ID,
				"kind":         cls.Kind,
				"confidence":   cls.Confidence,
				"text_len":     len(text),
				"input_method": inputMethod,
			}
			if rem != nil {
				props["reminder_id"] = rem.ID
				props["is_precise"] = rem.IsPrecise
			}
			_ = analytics.Log(r.Context(), dbx, env, "note_created", props, analytics.SourceEventKeyFromRequest(r))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"note":           note,
			"classification": cls,
			"reminder":       rem,
		})
	}
}

func ListHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rows, err := dbx.QueryContext(r.Context(), `
			SELECT id, text, kind, input_method, created_at
			FROM notes
			WHERE user_id = $1
			ORDER BY id DESC
			LIMIT 100
		`, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var items []Note
		for rows.Next() {
			var n Note
			if err := rows.Scan(&n.ID, &n.Text, &n.Kind, &n.InputMethod, &n.CreatedAt); err != nil {
				http.Error(w, "db scan error", http.StatusInternalServerError)
				return
			}
			items = append(items, n)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, "db rows error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}
}
