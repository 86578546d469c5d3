package plans

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"luna-assistant-backend/internal/ai"
	"luna-assistant-backend/internal/analytics"
	"luna-assistant-backend/internal/auth"
	"luna-assistant-backend/internal/patterns"
	"luna-assistant-backend/internal/places"
	"luna-assistant-backend/internal/reminders"
)

// categories the planner asks the places API for
var weekendCategories = []string{"park", "cafe", "museum", "restaurant", "hiking_area"}

func GenerateHandler(dbx *sql.DB, aiClient *ai.Client, placesClient *places.Client, remStore *reminders.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Lat  float64 `json:"lat"`
			Lng  float64 `json:"lng"`
			City string  `json:"city"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// 1) what we know about the user
		noteSamples, err := patterns.RecentNotes(r.Context(), dbx, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		done, delivered, err := remStore.CompletionStats(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		var patternLabels []string
		for _, p := range patterns.Detect(noteSamples, done, delivered) {
			patternLabels = append(patternLabels, p.Label)
		}

		// 2) what's around; plan generation survives a places outage
		var placeNames []string
		nearby, err := placesClient.SearchNearby(r.Context(), body.Lat, body.Lng, weekendCategories, 10)
		if err == nil {
			for _, p := range nearby {
				placeNames = append(placeNames, p.Name)
			}
		}

		// 3) generate
		prompt := ai.BuildWeekendPrompt(body.City, patternLabels, placeNames)
		raw, err := aiClient.GenerateWeekendPlan(r.Context(), prompt)
		if err != nil {
			http.Error(w, "plan generation failed", http.StatusBadGateway)
			return
		}

		var content struct {
			Title   string     `json:"title"`
			Summary string     `json:"summary"`
			Items   []PlanItem `json:"items"`
		}
		if err := json.Unmarshal(raw, &content); err != nil || len(content.Items) == 0 {
			http.Error(w, "plan generation failed", http.StatusBadGateway)
			return
		}

		plan := WeekendPlan{
			ID:        uuid.NewString(),
			WeekendOf: upcomingSaturday(time.Now()),
			Title:     content.Title,
			Summary:   content.Summary,
			Items:     content.Items,
		}

		itemsJSON, _ := json.Marshal(plan.Items)
		err = dbx.QueryRow(`
			INSERT INTO weekend_plans (id, user_id, weekend_of, title, summary, items)
			VALUES ($1, $2, $3, $4, $5, $6::jsonb)
			RETURNING created_at
		`, plan.ID, uid, plan.WeekendOf, plan.Title, plan.Summary, string(itemsJSON)).Scan(&plan.CreatedAt)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "plan_generated", map[string]any{
			"plan_id":       plan.ID,
			"item_count":    len(plan.Items),
			"pattern_count": len(patternLabels),
			"place_count":   len(placeNames),
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(plan)
	}
}

func GetHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var plan WeekendPlan
		var itemsJSON []byte
		err := dbx.QueryRow(`
			SELECT id, weekend_of, title, summary, items, created_at
			FROM weekend_plans
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT 1
		`, uid).Scan(&plan.ID, &plan.WeekendOf, &plan.Title, &plan.Summary, &itemsJSON, &plan.CreatedAt)
		if err != nil {
			http.Error(w, "no plan yet", http.StatusNotFound)
			return
		}
		_ = json.Unmarshal(itemsJSON, &plan.Items)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(plan)
	}
}

// upcomingSaturday returns the date of the Saturday this plan targets; on a
// weekend it keeps the current one.
func upcomingSaturday(now time.Time) time.Time {
	days := int(time.Saturday-now.Weekday()+7) % 7
	if now.Weekday() == time.Sunday {
		days = -1
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
