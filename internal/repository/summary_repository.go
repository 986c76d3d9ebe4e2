// Package repository defines the persistence interfaces used by the use case
// layer. Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"database/sql"

	"docbrief/internal/domain/entity"
)

// DBTX is the subset of database/sql the repositories execute against.
// Both *sql.DB and the circuit breaking wrapper in
// internal/resilience/circuitbreaker satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Statistics aggregates a user's summarization activity.
type Statistics struct {
	// TotalSummaries is the number of records stored for the user.
	TotalSummaries int64

	// TotalDocuments is the number of distinct document names.
	TotalDocuments int64

	// AverageQualityScore averages the non-null quality scores, rounded to
	// two decimals. Zero when no record has a score.
	AverageQualityScore float64

	// FavoriteStyle is the most frequently used style, or "None" when the
	// user has no records.
	FavoriteStyle string

	// TotalWordsProcessed sums the stored source word counts.
	TotalWordsProcessed int64
}

// SummaryRepository is the persistence contract for summary records.
//
// All read operations return empty results, not errors, for an unknown user.
// Owner-scoped mutations (Delete, UpdateSummary) match on both id and user_id
// and report false instead of leaking whether the record exists for someone
// else. Implementations must serialize writes enough that concurrent saves
// never collide on an id or lose a row.
type SummaryRepository interface {
	// Save inserts a new record, assigning its ID and CreatedAt.
	// Returns the assigned ID.
	Save(ctx context.Context, record *entity.SummaryRecord) (int64, error)

	// ListByUser returns the user's records newest first, bounded by
	// limit and offset.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.SummaryRecord, error)

	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id int64) (*entity.SummaryRecord, error)

	// Search returns up to limit of the user's records whose document name,
	// summary text, or stored excerpt contains the query substring
	// (case-insensitive), newest first.
	Search(ctx context.Context, userID, query string, limit int) ([]*entity.SummaryRecord, error)

	// Delete removes the record only when both id and userID match.
	// Returns whether a row was removed; "not found" is not an error.
	Delete(ctx context.Context, id int64, userID string) (bool, error)

	// UpdateSummary replaces the summary text (and score, when non-nil) of
	// an owned record and refreshes CreatedAt. Returns whether a row changed.
	UpdateSummary(ctx context.Context, id int64, userID, summaryText string, qualityScore *int) (bool, error)

	// Statistics aggregates the user's stored records.
	Statistics(ctx context.Context, userID string) (*Statistics, error)

	// Recent returns the user's records created within the last N days,
	// newest first.
	Recent(ctx context.Context, userID string, days int) ([]*entity.SummaryRecord, error)

	// PurgeOlderThan removes the user's records older than N days and
	// returns how many were removed.
	PurgeOlderThan(ctx context.Context, userID string, days int) (int64, error)
}
