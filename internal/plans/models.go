package plans

import "time"

type PlanItem struct {
	Day       string `json:"day"`
	TimeOfDay string `json:"time_of_day"`
	Activity  string `json:"activity"`
	PlaceName string `json:"place_name"`
	Reason    string `json:"reason"`
}

type WeekendPlan struct {
	ID        string     `json:"id"`
	WeekendOf time.Time  `json:"weekend_of"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Items     []PlanItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}
