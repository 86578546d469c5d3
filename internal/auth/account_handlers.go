package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// JWT is stateless; the client just drops the token.
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
		})
	}
}

func DeleteAccountHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tx, err := dbx.Begin()
		if err != nil {
			http.Error(w, "db begin failed", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		// 1) reminders (reference notes)
		if _, err := tx.Exec(`DELETE FROM reminders WHERE user_id = $1`, uid); err != nil {
			http.Error(w, "delete reminders failed", http.StatusInternalServerError)
			return
		}

		// 2) notes
		if _, err := tx.Exec(`DELETE FROM notes WHERE user_id = $1`, uid); err != nil {
			http.Error(w, "delete notes failed", http.StatusInternalServerError)
			return
		}

		// 3) weekend plans
		if _, err := tx.Exec(`DELETE FROM weekend_plans WHERE user_id = $1`, uid); err != nil {
			http.Error(w, "delete weekend_plans failed", http.StatusInternalServerError)
			return
		}

		// 4) analytics_events
		if _, err := tx.Exec(`DELETE FROM analytics_events WHERE user_id = $1`, uid); err != nil {
			http.Error(w, "delete analytics_events failed", http.StatusInternalServerError)
			return
		}

		// 5) users
		if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, uid); err != nil {
			http.Error(w, "delete user failed", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "db commit failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
		})
	}
}
