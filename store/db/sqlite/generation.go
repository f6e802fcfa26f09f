package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hrygo/summarify/store"
)

// CreateGenerationRecord creates a new generation record.
func (d *DB) CreateGenerationRecord(ctx context.Context, create *store.GenerationRecord) (*store.GenerationRecord, error) {
	stmt := `
		INSERT INTO generation_record (uid, original_text, summary, bullet_points)
		VALUES (?, ?, ?, ?)
		RETURNING id, uid, original_text, summary, bullet_points, created_ts
	`
	var record store.GenerationRecord
	if err := d.db.QueryRowContext(ctx, stmt,
		create.UID,
		create.OriginalText,
		create.Summary,
		create.BulletPoints,
	).Scan(
		&record.ID,
		&record.UID,
		&record.OriginalText,
		&record.Summary,
		&record.BulletPoints,
		&record.CreatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create generation record")
	}
	return &record, nil
}

// ListGenerationRecords lists generation records, newest first.
func (d *DB) ListGenerationRecords(ctx context.Context, find *store.FindGenerationRecord) ([]*store.GenerationRecord, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = ?"), append(args, *find.ID)
	}
	if find.UID != nil {
		where, args = append(where, "uid = ?"), append(args, *find.UID)
	}

	query := `SELECT id, uid, original_text, summary, bullet_points, created_ts
		FROM generation_record
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC, id DESC`
	if find.Limit != nil {
		query += " LIMIT ?"
		args = append(args, *find.Limit)
	}
	if find.Offset != nil {
		query += " OFFSET ?"
		args = append(args, *find.Offset)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generation records")
	}
	defer rows.Close()

	var records []*store.GenerationRecord
	for rows.Next() {
		var record store.GenerationRecord
		if err := rows.Scan(
			&record.ID,
			&record.UID,
			&record.OriginalText,
			&record.Summary,
			&record.BulletPoints,
			&record.CreatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan generation record")
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
