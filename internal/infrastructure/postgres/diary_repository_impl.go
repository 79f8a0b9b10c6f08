package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/domain/repository"
)

const entryColumns = `id, user_id, title, content, mood, tags, is_private, created_at, updated_at`

type DiaryRepository struct {
	pool *pgxpool.Pool
}

func NewDiaryRepository(pool *pgxpool.Pool) *DiaryRepository {
	return &DiaryRepository{pool: pool}
}

func scanEntry(row pgx.Row) (*entity.DiaryEntry, error) {
	e := &entity.DiaryEntry{}
	var mood string
	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &mood, &e.Tags, &e.IsPrivate,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e.Mood = entity.Mood(mood)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, nil
}

func (r *DiaryRepository) collect(rows pgx.Rows) ([]entity.DiaryEntry, error) {
	defer rows.Close()
	out := make([]entity.DiaryEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *DiaryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.DiaryEntry, error) {
	if !validID(userID) {
		return []entity.DiaryEntry{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM diary_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return r.collect(rows)
}

func (r *DiaryRepository) GetByIDs(ctx context.Context, userID string, ids []string) ([]entity.DiaryEntry, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if !validID(userID) || len(valid) == 0 {
		return []entity.DiaryEntry{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM diary_entries
		WHERE user_id = $1 AND id = ANY($2::uuid[])
	`, userID, valid)
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	return r.collect(rows)
}

func (r *DiaryRepository) Get(ctx context.Context, userID, id string) (*entity.DiaryEntry, error) {
	if !validID(userID) || !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanEntry(r.pool.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM diary_entries
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

func (r *DiaryRepository) Create(ctx context.Context, e *entity.DiaryEntry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO diary_entries (id, user_id, title, content, mood, tags, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, e.ID, e.UserID, e.Title, e.Content, string(e.Mood), e.Tags, e.IsPrivate, e.CreatedAt, e.UpdatedAt)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Update applies patch; COALESCE keeps the stored value for nil fields.
func (r *DiaryRepository) Update(ctx context.Context, userID, id string, patch repository.EntryPatch) (*entity.DiaryEntry, error) {
	if !validID(userID) || !validID(id) {
		return nil, repository.ErrNotFound
	}
	var mood, tags any
	if patch.Mood != nil {
		mood = string(*patch.Mood)
	}
	if patch.Tags != nil {
		tags = *patch.Tags
	}
	return scanEntry(r.pool.QueryRow(ctx, `
		UPDATE diary_entries
		SET title      = COALESCE($3::text, title),
		    content    = COALESCE($4::text, content),
		    mood       = COALESCE($5::text, mood),
		    tags       = COALESCE($6::text[], tags),
		    is_private = COALESCE($7::boolean, is_private),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+entryColumns,
		id, userID, patch.Title, patch.Content, mood, tags, patch.IsPrivate))
}

func (r *DiaryRepository) Delete(ctx context.Context, userID, id string) error {
	if !validID(userID) || !validID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM diary_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.DiaryRepository = (*DiaryRepository)(nil)
