package patterns

import (
	"context"
	"database/sql"
)

// RecentNotes loads the sample window the heuristics run over.
func RecentNotes(ctx context.Context, dbx *sql.DB, userID int) ([]NoteSample, error) {
	rows, err := dbx.QueryContext(ctx, `
		SELECT kind, text, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 200
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NoteSample
	for rows.Next() {
		var n NoteSample
		if err := rows.Scan(&n.Kind, &n.Text, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
