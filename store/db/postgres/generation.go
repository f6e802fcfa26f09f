package postgres

import (
	"context"
	"fmt"

	"github.com/hrygo/summarify/store"
)

func (db *DB) CreateGenerationRecord(ctx context.Context, create *store.GenerationRecord) (*store.GenerationRecord, error) {
	query := `
		INSERT INTO generation_record (uid, original_text, summary, bullet_points)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uid, original_text, summary, bullet_points, created_ts
	`
	var record store.GenerationRecord
	if err := db.db.QueryRowContext(ctx, query,
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
		return nil, fmt.Errorf("failed to create generation record: %w", err)
	}
	return &record, nil
}

func (db *DB) ListGenerationRecords(ctx context.Context, find *store.FindGenerationRecord) ([]*store.GenerationRecord, error) {
	query := `
		SELECT id, uid, original_text, summary, bullet_points, created_ts
		FROM generation_record
		WHERE 1=1
	`
	var args []interface{}
	argIndex := 1

	if find.ID != nil {
		query += fmt.Sprintf(" AND id = $%d", argIndex)
		args = append(args, *find.ID)
		argIndex++
	}
	if find.UID != nil {
		query += fmt.Sprintf(" AND uid = $%d", argIndex)
		args = append(args, *find.UID)
		argIndex++
	}

	query += " ORDER BY created_ts DESC, id DESC"

	if find.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *find.Limit)
		argIndex++
	}
	if find.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *find.Offset)
	}

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation records: %w", err)
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
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
