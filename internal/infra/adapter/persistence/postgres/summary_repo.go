// Package postgres provides the PostgreSQL implementation of the summary
// repository. Writes rely on transactional INSERT ... RETURNING for id
// assignment; no application-level locking is needed.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"docbrief/internal/domain/entity"
	"docbrief/internal/repository"
)

type SummaryRepo struct{ db repository.DBTX }

// NewSummaryRepo creates a PostgreSQL-backed summary repository. The db is
// usually a circuit breaking wrapper rather than a bare *sql.DB.
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
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8, $9, $10, $11)
RETURNING id, created_at`

	err := repo.db.QueryRowContext(ctx, query,
		record.UserID, record.DocumentName, record.DocumentType,
		record.OriginalExcerpt, record.SummaryText, string(record.SummaryStyle),
		nullableInt(record.QualityScore), record.FileSizeBytes,
		record.ProcessingTimeSeconds, nullableInt(record.SourceWordCount),
		nullableInt(record.SummaryWordCount),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("Save: %w", err)
	}
	return record.ID, nil
}

func (repo *SummaryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.SummaryRecord, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := repo.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "ListByUser")
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.SummaryRecord, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE id = $1
LIMIT 1`

	record, err := scanRecord(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: %w", err)
	}
	return record, nil
}

func (repo *SummaryRepo) Search(ctx context.Context, userID, query string, limit int) ([]*entity.SummaryRecord, error) {
	sqlQuery := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE user_id = $1
  AND (document_name ILIKE $2 OR summary_text ILIKE $2 OR original_excerpt ILIKE $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

	pattern := "%" + query + "%"
	rows, err := repo.db.QueryContext(ctx, sqlQuery, userID, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "Search")
}

func (repo *SummaryRepo) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	const query = `DELETE FROM summaries WHERE id = $1 AND user_id = $2`

	res, err := repo.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *SummaryRepo) UpdateSummary(ctx context.Context, id int64, userID, summaryText string, qualityScore *int) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if qualityScore != nil {
		const query = `
UPDATE summaries
SET summary_text = $1, quality_score = $2, created_at = now()
WHERE id = $3 AND user_id = $4`
		res, err = repo.db.ExecContext(ctx, query, summaryText, *qualityScore, id, userID)
	} else {
		const query = `
UPDATE summaries
SET summary_text = $1, created_at = now()
WHERE id = $2 AND user_id = $3`
		res, err = repo.db.ExecContext(ctx, query, summaryText, id, userID)
	}
	if err != nil {
		return false, fmt.Errorf("UpdateSummary: %w", err)
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
WHERE user_id = $1`

	stats := &repository.Statistics{FavoriteStyle: "None"}
	err := repo.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalSummaries, &stats.TotalDocuments,
		&stats.AverageQualityScore, &stats.TotalWordsProcessed,
	)
	if err != nil {
		return nil, fmt.Errorf("Statistics: %w", err)
	}
	stats.AverageQualityScore = math.Round(stats.AverageQualityScore*100) / 100

	const styleQuery = `
SELECT summary_style
FROM summaries
WHERE user_id = $1
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
WHERE user_id = $1 AND created_at >= now() - make_interval(days => $2)
ORDER BY created_at DESC, id DESC`

	rows, err := repo.db.QueryContext(ctx, query, userID, days)
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectRecords(rows, "Recent")
}

func (repo *SummaryRepo) PurgeOlderThan(ctx context.Context, userID string, days int) (int64, error) {
	const query = `
DELETE FROM summaries
WHERE user_id = $1 AND created_at < now() - make_interval(days => $2)`

	res, err := repo.db.ExecContext(ctx, query, userID, days)
	if err != nil {
		return 0, fmt.Errorf("PurgeOlderThan: %w", err)
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
