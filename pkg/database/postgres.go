package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

const (
	taskTable = "task"

	// pgErrUniqueViolation is the postgres error code for a duplicate key
	pgErrUniqueViolation = "23505"

	taskColumns = `type, name, project_id, entity_type, entity_id, initiated_by, provider, metadata,
	id, status, progress_percent, progress_step, progress_detail, result, error_message, error_trace,
	created_at, started_at, completed_at, updated_at, duration`
)

// Postgres is a durable task record store backed by postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.setDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)
	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// InsertTask creates the durable record for a newly registered task.
func (p *Postgres) InsertTask(t *structs.TaskRecord) error {
	qstr, args := toTaskSqlArgs(1, t)
	qstr = fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s;`, taskTable, taskColumns, qstr)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, args...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return fmt.Errorf("%w %s", ie.ErrDuplicateTask, t.ID)
	}
	return err
}

// Task returns the record for the given id.
func (p *Postgres) Task(id string) (*structs.TaskRecord, error) {
	qstr := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1;`, taskColumns, taskTable)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	t, err := scanTask(conn.QueryRow(ctx, qstr, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w %s", ie.ErrNotFound, id)
	}
	return t, err
}

// UpdateTask applies mutate to the record under a row lock. The select-for-
// update transaction is what arbitrates the cancel vs. complete race: whoever
// commits first wins and the loser sees the terminal state inside mutate.
func (p *Postgres) UpdateTask(id string, mutate func(t *structs.TaskRecord) error) (*structs.TaskRecord, error) {
	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, err
	}

	qstr := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1 FOR UPDATE;`, taskColumns, taskTable)
	t, err := scanTask(tx.QueryRow(ctx, qstr, id))
	if err != nil {
		tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w %s", ie.ErrNotFound, id)
		}
		return nil, err
	}

	if err = mutate(t); err != nil {
		tx.Rollback(ctx)
		return nil, err
	}

	qstr = fmt.Sprintf(`UPDATE %s SET status=$1, progress_percent=$2, progress_step=$3, progress_detail=$4,
	result=$5, error_message=$6, error_trace=$7, started_at=$8, completed_at=$9, updated_at=$10, duration=$11
	WHERE id=$12;`, taskTable)
	_, err = tx.Exec(ctx, qstr,
		t.Status,
		t.ProgressPercent,
		t.ProgressStep,
		t.ProgressDetail,
		t.Result,
		t.ErrorMessage,
		t.ErrorTrace,
		t.StartedAt,
		t.CompletedAt,
		t.UpdatedAt,
		t.Duration,
		t.ID,
	)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}
	return t, nil
}

// Tasks returns records matching the given query, newest first.
func (p *Postgres) Tasks(q *structs.Query) ([]*structs.TaskRecord, error) {
	where, args := toSqlWhere(q, true)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d;`,
		taskColumns, taskTable, where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*structs.TaskRecord{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// TaskCounts returns per-status counts and the total for the query's
// project / type scope.
func (p *Postgres) TaskCounts(q *structs.Query) (map[structs.Status]int64, int64, error) {
	where, args := toSqlWhere(q, false)
	qstr := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s %s GROUP BY status;`, taskTable, where)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := map[structs.Status]int64{}
	var total int64
	for rows.Next() {
		var st structs.Status
		var n int64
		if err = rows.Scan(&st, &n); err != nil {
			return nil, 0, err
		}
		counts[st] = n
		total += n
	}
	return counts, total, rows.Err()
}

// toTaskSqlArgs builds the placeholder string & args for one task row,
// starting placeholders at the given number (the sql lib starts at 1).
func toTaskSqlArgs(num int, t *structs.TaskRecord) (string, []interface{}) {
	args := []interface{}{
		t.Type,
		t.Name,
		t.ProjectID,
		t.EntityType,
		t.EntityID,
		t.InitiatedBy,
		t.Provider,
		t.Metadata,
		t.ID,
		t.Status,
		t.ProgressPercent,
		t.ProgressStep,
		t.ProgressDetail,
		t.Result,
		t.ErrorMessage,
		t.ErrorTrace,
		t.CreatedAt,
		t.StartedAt,
		t.CompletedAt,
		t.UpdatedAt,
		t.Duration,
	}
	places := make([]string, len(args))
	for i := range args {
		places[i] = fmt.Sprintf("$%d", num+i)
	}
	return "(" + strings.Join(places, ", ") + ")", args
}

// toSqlWhere builds a WHERE clause for the query's filters. Status filters
// only apply when withStatuses is set (counts describe the whole scope).
func toSqlWhere(q *structs.Query, withStatuses bool) (string, []interface{}) {
	and := []string{}
	args := []interface{}{}

	add := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		places := make([]string, len(values))
		for i, v := range values {
			args = append(args, v)
			places[i] = fmt.Sprintf("$%d", len(args))
		}
		and = append(and, fmt.Sprintf("%s IN (%s)", column, strings.Join(places, ", ")))
	}

	if q.ProjectID != "" {
		args = append(args, q.ProjectID)
		and = append(and, fmt.Sprintf("project_id = $%d", len(args)))
	}
	add("id", q.TaskIDs)
	add("type", q.Types)
	if withStatuses {
		add("status", statusToStrings(q.Statuses))
	}

	if len(and) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(and, " AND "), args
}

func statusToStrings(in []structs.Status) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// scanTask reads one task row; column order must match taskColumns.
func scanTask(row pgx.Row) (*structs.TaskRecord, error) {
	t := structs.TaskRecord{}
	err := row.Scan(
		&t.Type,
		&t.Name,
		&t.ProjectID,
		&t.EntityType,
		&t.EntityID,
		&t.InitiatedBy,
		&t.Provider,
		&t.Metadata,
		&t.ID,
		&t.Status,
		&t.ProgressPercent,
		&t.ProgressStep,
		&t.ProgressDetail,
		&t.Result,
		&t.ErrorMessage,
		&t.ErrorTrace,
		&t.CreatedAt,
		&t.StartedAt,
		&t.CompletedAt,
		&t.UpdatedAt,
		&t.Duration,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
