package store

import "context"

// GenerationRecord is the persisted tuple of original text plus one derived output.
// Records are append-only: they are created after a successful generation call and
// never updated or deleted. Exactly one of Summary/BulletPoints is non-empty per
// record; the handlers enforce this, not the schema.
type GenerationRecord struct {
	ID           int32
	UID          string
	OriginalText string
	Summary      string
	BulletPoints string
	CreatedTs    int64
}

// FindGenerationRecord is the find condition for generation records.
type FindGenerationRecord struct {
	ID     *int32
	UID    *string
	Limit  *int
	Offset *int
}

// CreateGenerationRecord creates a new generation record.
func (s *Store) CreateGenerationRecord(ctx context.Context, create *GenerationRecord) (*GenerationRecord, error) {
	return s.driver.CreateGenerationRecord(ctx, create)
}

// ListGenerationRecords lists generation records, newest first.
func (s *Store) ListGenerationRecords(ctx context.Context, find *FindGenerationRecord) ([]*GenerationRecord, error) {
	return s.driver.ListGenerationRecords(ctx, find)
}
