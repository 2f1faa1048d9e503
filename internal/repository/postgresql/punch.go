package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const punchColumns = `id, user_id, date, employee_name, entry_time, lunch_out, lunch_in, final_exit, note, inserted_at`

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

func scanPunch(row interface{ Scan(dest ...any) error }) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID, &p.UserID, &p.Date, &p.EmployeeName,
		&p.Entry, &p.LunchOut, &p.LunchIn, &p.FinalExit,
		&p.Note, &p.InsertedAt,
	)
	return p, err
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, user_id, date, employee_name, entry_time, lunch_out, lunch_in, final_exit, note, inserted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		) RETURNING inserted_at
	`

	err := q.QueryRow(ctx, query,
		newPunch.ID,
		newPunch.UserID,
		newPunch.Date,
		newPunch.EmployeeName,
		newPunch.Entry,
		newPunch.LunchOut,
		newPunch.LunchIn,
		newPunch.FinalExit,
		newPunch.Note,
	).Scan(&newPunch.InsertedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return newPunch, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE id = $1
	`

	p, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, err
	}
	return p, nil
}

// GetByUserAndDate implements punch.PunchRepository.
func (r *punchRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	p, err := scanPunch(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// stageColumn maps a punch stage to its column. Stages are a closed set
// validated upstream, so an unknown value is a programming error.
func stageColumn(stage punch.Stage) (string, error) {
	switch stage {
	case punch.StageEntry:
		return "entry_time", nil
	case punch.StageLunchOut:
		return "lunch_out", nil
	case punch.StageLunchIn:
		return "lunch_in", nil
	case punch.StageFinalExit:
		return "final_exit", nil
	}
	return "", punch.ErrInvalidStage
}

// UpdateStage implements punch.PunchRepository.
func (r *punchRepository) UpdateStage(ctx context.Context, id string, stage punch.Stage, value string) error {
	q := GetQuerier(ctx, r.db)

	column, err := stageColumn(stage)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE punches SET %s = $1 WHERE id = $2`, column)
	tag, err := q.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update punch stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

// Update implements punch.PunchRepository.
func (r *punchRepository) Update(ctx context.Context, req punch.UpdatePunchRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET entry_time = $1, lunch_out = $2, lunch_in = $3, final_exit = $4, note = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, req.Entry, req.LunchOut, req.LunchIn, req.FinalExit, req.Note, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

func (r *punchRepository) queryPunches(ctx context.Context, query string, args ...any) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}

// ListByUserAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByUserAndRange(ctx context.Context, userID string, start, end string) ([]punch.Punch, error) {
	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`
	return r.queryPunches(ctx, query, userID, start, end)
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeName string, start, end string) ([]punch.Punch, error) {
	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_name = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`
	return r.queryPunches(ctx, query, employeeName, start, end)
}

// ListByRange implements punch.PunchRepository.
func (r *punchRepository) ListByRange(ctx context.Context, start, end string, employeeFilter string) ([]punch.Punch, error) {
	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE date >= $1
		  AND date <= $2
	`
	args := []any{start, end}

	if employeeFilter != "" {
		query += ` AND employee_name ILIKE $3`
		args = append(args, "%"+employeeFilter+"%")
	}

	query += ` ORDER BY date ASC, employee_name ASC`
	return r.queryPunches(ctx, query, args...)
}

// ListMonths implements punch.PunchRepository.
func (r *punchRepository) ListMonths(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT LEFT(date, 7) AS month
		FROM punches
		ORDER BY month ASC
	`
	return r.queryMonths(ctx, query)
}

// ListMonthsByUser implements punch.PunchRepository.
func (r *punchRepository) ListMonthsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT LEFT(date, 7) AS month
		FROM punches
		WHERE user_id = $1
		ORDER BY month ASC
	`
	return r.queryMonths(ctx, query, userID)
}

func (r *punchRepository) queryMonths(ctx context.Context, query string, args ...any) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, err
		}
		months = append(months, month)
	}

	return months, rows.Err()
}
