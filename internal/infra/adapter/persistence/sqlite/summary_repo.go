// Package sqlite provides the SQLite implementation of the summary
// repository using the pure-Go modernc.org/sqlite driver.
//
// SQLite allows a single writer at a time; a store-level mutex serializes
// writes so concurrent saves never collide on an id or abort on a busy
// database. Reads run without the lock.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"docbrief/internal/domain/entity"
	"docbrief/internal/repository"
)

type SummaryRepo struct {
	db repository.DBTX
	mu sync.Mutex
}

// NewSummaryRepo creates a SQLite-backed summary repository.
func NewSummaryRepo(db repository.DBTX) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

const summaryColumns = `id, user_id, document_name, document_type, original_excerpt,
summary_text, summary_style, quality_score, created_at,
file_size_bytes, processing_time_seconds, source_word_count, summary_word_count`

func (repo *SummaryRepo) Save(ctx context.Context, record *entity.SummaryRecord) (int64, error) {
	const query = `
INSERT INTO summaries
(user_id, document_name, document_type, original_excerpt, summary_text, summary_style,
 quality_score, created_at, file_size_bytes, processing_time_seconds, source_word_count, summary_word_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	repo.mu.Lock()
	defer repo.mu.Unlock()

	createdAt := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		record.UserID, record.DocumentName, record.DocumentType,
		record.OriginalExcerpt, record.SummaryText, string(record.SummaryStyle),
		nullableInt(record.QualityScore), createdAt, record.FileSizeBytes,
		record.ProcessingTimeSeconds, nullableInt(record.SourceWordCount),
		nullableInt(record.SummaryWordCount),
	)
	if err != nil {
		return 0, fmt.Errorf("Save: ExecContext: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Save: LastInsertId: %w", err)
	}

	record.ID = id
	record.CreatedAt = createdAt
	return id, nil
}

func (repo *SummaryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.SummaryRecord, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`

	rows, err := repo.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "ListByUser")
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.SummaryRecord, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE id = ?
LIMIT 1`

	record, err := scanRecord(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return record, nil
}

// Search matches the query substring case-insensitively. LOWER() is applied
// on both sides because SQLite LIKE is only case-insensitive for ASCII.
func (repo *SummaryRepo) Search(ctx context.Context, userID, query string, limit int) ([]*entity.SummaryRecord, error) {
	sqlQuery := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE user_id = ?
  AND (LOWER(document_name) LIKE LOWER(?)
    OR LOWER(summary_text) LIKE LOWER(?)
    OR LOWER(original_excerpt) LIKE LOWER(?))
ORDER BY created_at DESC, id DESC
LIMIT ?`

	pattern := "%" + query + "%"
	rows, err := repo.db.QueryContext(ctx, sqlQuery, userID, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("Search: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "Search")
}

func (repo *SummaryRepo) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	const query = `DELETE FROM summaries WHERE id = ? AND user_id = ?`

	repo.mu.Lock()
	defer repo.mu.Unlock()

	res, err := repo.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *SummaryRepo) UpdateSummary(ctx context.Context, id int64, userID, summaryText string, qualityScore *int) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var (
		res sql.Result
		err error
	)
	now := time.Now().UTC()
	if qualityScore != nil {
		const query = `
UPDATE summaries
SET summary_text = ?, quality_score = ?, created_at = ?
WHERE id = ? AND user_id = ?`
		res, err = repo.db.ExecContext(ctx, query, summaryText, *qualityScore, now, id, userID)
	} else {
		const query = `
UPDATE summaries
SET summary_text = ?, created_at = ?
WHERE id = ? AND user_id = ?`
		res, err = repo.db.ExecContext(ctx, query, summaryText, now, id, userID)
	}
	if err != nil {
		return false, fmt.Errorf("UpdateSummary: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("UpdateSummary: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *SummaryRepo) Statistics(ctx context.Context, userID string) (*repository.Statistics, error) {
	const query = `
SELECT COUNT(*),
       COUNT(DISTINCT document_name),
       COALESCE(AVG(quality_score), 0),
       COALESCE(SUM(source_word_count), 0)
FROM summaries
WHERE user_id = ?`

	stats := &repository.Statistics{FavoriteStyle: "None"}
	err := repo.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalSummaries, &stats.TotalDocuments,
		&stats.AverageQualityScore, &stats.TotalWordsProcessed,
	)
	if err != nil {
		return nil, fmt.Errorf("Statistics: QueryRowContext: %w", err)
	}
	stats.AverageQualityScore = math.Round(stats.AverageQualityScore*100) / 100

	const styleQuery = `
SELECT summary_style
FROM summaries
WHERE user_id = ?
GROUP BY summary_style
ORDER BY COUNT(*) DESC
LIMIT 1`

	var style string
	err = repo.db.QueryRowContext(ctx, styleQuery, userID).Scan(&style)
	switch {
	case err == sql.ErrNoRows:
		// No records: FavoriteStyle stays "None".
	case err != nil:
		return nil, fmt.Errorf("Statistics: style: %w", err)
	default:
		stats.FavoriteStyle = style
	}

	return stats, nil
}

func (repo *SummaryRepo) Recent(ctx context.Context, userID string, days int) ([]*entity.SummaryRecord, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE user_id = ? AND created_at >= ?
ORDER BY created_at DESC, id DESC`

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := repo.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("Recent: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "Recent")
}

func (repo *SummaryRepo) PurgeOlderThan(ctx context.Context, userID string, days int) (int64, error) {
	const query = `DELETE FROM summaries WHERE user_id = ? AND created_at < ?`

	repo.mu.Lock()
	defer repo.mu.Unlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res, err := repo.db.ExecContext(ctx, query, userID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("PurgeOlderThan: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("PurgeOlderThan: RowsAffected: %w", err)
	}
	return n, nil
}

/* ───────── scanning helpers ───────── */

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*entity.SummaryRecord, error) {
	var (
		record     entity.SummaryRecord
		style      string
		score      sql.NullInt64
		fileSize   sql.NullInt64
		processing sql.NullFloat64
		srcWords   sql.NullInt64
		sumWords   sql.NullInt64
	)

	err := row.Scan(
		&record.ID, &record.UserID, &record.DocumentName, &record.DocumentType,
		&record.OriginalExcerpt, &record.SummaryText, &style, &score,
		&record.CreatedAt, &fileSize, &processing, &srcWords, &sumWords,
	)
	if err != nil {
		return nil, err
	}

	record.SummaryStyle = entity.Style(style)
	if score.Valid {
		v := int(score.Int64)
		record.QualityScore = &v
	}
	if fileSize.Valid {
		record.FileSizeBytes = &fileSize.Int64
	}
	if processing.Valid {
		record.ProcessingTimeSeconds = &processing.Float64
	}
	if srcWords.Valid {
		v := int(srcWords.Int64)
		record.SourceWordCount = &v
	}
	if sumWords.Valid {
		v := int(sumWords.Int64)
		record.SummaryWordCount = &v
	}
	return &record, nil
}

func collectRecords(rows *sql.Rows, op string) ([]*entity.SummaryRecord, error) {
	records := make([]*entity.SummaryRecord, 0, 20)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return records, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
