package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

func ratingColumns(table string) []string {
	columns := []string{
		"id", "content_id", "user_id", "direction", "comment",
		"latency_ms", "updated_from_reroll", "created_at", "updated_at",
	}
	if table == "" {
		return columns
	}
	for i, c := range columns {
		columns[i] = table + "." + c
	}
	return columns
}

func scanRating(row rowScanner) (domain.Rating, error) {
	var (
		rating    domain.Rating
		direction string
		comment   sql.NullString
		latency   sql.NullInt64
	)
	if err := row.Scan(
		&rating.ID,
		&rating.ContentID,
		&rating.UserID,
		&direction,
		&comment,
		&latency,
		&rating.UpdatedFromReroll,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	); err != nil {
		return domain.Rating{}, err
	}

	rating.Direction = domain.Direction(direction)
	rating.Comment = stringPtr(comment)
	if latency.Valid {
		rating.LatencyMs = &latency.Int64
	}
	return rating, nil
}

func (r *Repository) queryRatings(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Rating, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running ratings query: %w", err)
	}
	defer closeRows(rows)

	ratings := []domain.Rating{}
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ratings, nil
}

// AppendRating inserts the rating, or supersedes an existing reroll on the same
// content in place. The existing row is locked for the duration of the check.
func (r *Repository) AppendRating(ctx context.Context, rating domain.Rating) (domain.Rating, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Rating{}, false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := sqlbuilder.Select(ratingColumns("")...)
	sb.From("ratings")
	sb.Where(
		sb.Equal("user_id", rating.UserID),
		sb.Equal("content_id", rating.ContentID),
	)
	sb.ForUpdate()

	query, args := sb.Build()
	existing, err := scanRating(tx.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := r.insertRating(ctx, tx, rating); err != nil {
			return domain.Rating{}, false, err
		}
		if err := tx.Commit(); err != nil {
			return domain.Rating{}, false, fmt.Errorf("committing transaction: %w", err)
		}
		return rating, false, nil
	case err != nil:
		return domain.Rating{}, false, fmt.Errorf("fetching existing rating: %w", err)
	}

	if existing.Direction != domain.DirectionReroll {
		return domain.Rating{}, false, fmt.Errorf("rating %s: %w", existing.ID, domain.ErrAlreadyRated)
	}

	existing.Direction = rating.Direction
	existing.Comment = rating.Comment
	existing.LatencyMs = rating.LatencyMs
	existing.UpdatedFromReroll = true
	existing.UpdatedAt = rating.UpdatedAt
	if existing.UpdatedAt.IsZero() {
		existing.UpdatedAt = time.Now().UTC()
	}

	ub := sqlbuilder.Update("ratings")
	ub.Set(
		ub.Assign("direction", string(existing.Direction)),
		ub.Assign("comment", nullString(existing.Comment)),
		ub.Assign("latency_ms", nullInt64(existing.LatencyMs)),
		ub.Assign("updated_from_reroll", true),
		ub.Assign("updated_at", existing.UpdatedAt),
	)
	ub.Where(ub.Equal("id", existing.ID))

	query, args = ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return domain.Rating{}, false, fmt.Errorf("updating rerolled rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Rating{}, false, fmt.Errorf("committing transaction: %w", err)
	}

	return existing, true, nil
}

func (r *Repository) insertRating(ctx context.Context, tx *sql.Tx, rating domain.Rating) error {
	ib := sqlbuilder.InsertInto("ratings")
	ib.Cols(ratingColumns("")...)
	ib.Values(
		rating.ID,
		rating.ContentID,
		rating.UserID,
		string(rating.Direction),
		nullString(rating.Comment),
		nullInt64(rating.LatencyMs),
		rating.UpdatedFromReroll,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		// A concurrent submission for the same pair won the race.
		if isDuplicateEntry(err) {
			return fmt.Errorf("inserting rating: %w", domain.ErrAlreadyRated)
		}
		return fmt.Errorf("inserting rating: %w", err)
	}
	return nil
}

func (r *Repository) ListRecentUserRatings(ctx context.Context, userID string, limit int) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns("")...)
	sb.From("ratings")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	return r.queryRatings(ctx, sb)
}

func (r *Repository) ListRecentTemplateRatings(
	ctx context.Context, templateID string, limit int,
) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns("r")...)
	sb.From("ratings r")
	sb.Join("content c", "c.id = r.content_id")
	sb.Where(sb.Equal("c.template_id", templateID))
	sb.OrderBy("r.created_at DESC", "r.id DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	return r.queryRatings(ctx, sb)
}

func (r *Repository) CountUserRatings(ctx context.Context, userID string) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("ratings")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting user ratings: %w", err)
	}
	return count, nil
}

func (r *Repository) ListRatings(
	ctx context.Context, filters domain.RatingFilters, limit int,
) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns("")...)
	sb.From("ratings")
	if conds := buildRatingConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	return r.queryRatings(ctx, sb)
}

func (r *Repository) GetRatingCounts(
	ctx context.Context, filters domain.RatingFilters,
) (map[domain.Direction]int64, error) {
	sb := sqlbuilder.Select("direction", "COUNT(*)")
	sb.From("ratings")
	if conds := buildRatingConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.GroupBy("direction")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running rating counts query: %w", err)
	}
	defer closeRows(rows)

	counts := make(map[domain.Direction]int64, len(domain.ValidDirections))
	for rows.Next() {
		var (
			direction string
			count     int64
		)
		if err := rows.Scan(&direction, &count); err != nil {
			return nil, fmt.Errorf("scanning rating count: %w", err)
		}
		counts[domain.Direction(direction)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}

func (r *Repository) ListRatedUserIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("DISTINCT user_id")
	sb.From("ratings")
	sb.OrderBy("user_id")

	return r.queryStrings(ctx, sb)
}

func (r *Repository) ListRatedTemplateIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("DISTINCT c.template_id")
	sb.From("ratings r")
	sb.Join("content c", "c.id = r.content_id")
	sb.Where(sb.IsNotNull("c.template_id"))
	sb.OrderBy("c.template_id")

	return r.queryStrings(ctx, sb)
}

func (r *Repository) queryStrings(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]string, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer closeRows(rows)

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return values, nil
}

func buildRatingConditions(sb *sqlbuilder.SelectBuilder, filters domain.RatingFilters) []string {
	var conds []string
	if filters.UserID != "" {
		conds = append(conds, sb.Equal("user_id", filters.UserID))
	}
	if filters.ContentID != "" {
		conds = append(conds, sb.Equal("content_id", filters.ContentID))
	}
	if filters.Direction != "" {
		conds = append(conds, sb.Equal("direction", string(filters.Direction)))
	}
	return conds
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
