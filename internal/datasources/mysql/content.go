package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

func contentColumns(table string) []string {
	columns := []string{
		"id", "type", "url", "original_prompt", "enhanced_prompt",
		"model", "category", "template_id", "user_id", "created_at",
	}
	if table == "" {
		return columns
	}
	for i, c := range columns {
		columns[i] = table + "." + c
	}
	return columns
}

func scanContent(row rowScanner, extra ...any) (domain.Content, error) {
	var (
		content     domain.Content
		contentType string
		templateID  sql.NullString
		userID      sql.NullString
	)
	dest := []any{
		&content.ID,
		&contentType,
		&content.URL,
		&content.OriginalPrompt,
		&content.EnhancedPrompt,
		&content.Model,
		&content.Category,
		&templateID,
		&userID,
		&content.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Content{}, err
	}

	content.Type = domain.ContentType(contentType)
	content.TemplateID = stringPtr(templateID)
	content.UserID = stringPtr(userID)
	return content, nil
}

func (r *Repository) queryContent(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Content, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running content query: %w", err)
	}
	defer closeRows(rows)

	items := []domain.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}
		items = append(items, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return items, nil
}

func (r *Repository) FetchContent(ctx context.Context, id string) (domain.Content, error) {
	sb := sqlbuilder.Select(contentColumns("")...)
	sb.From("content")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	content, err := scanContent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Content{}, fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Content{}, fmt.Errorf("fetching content: %w", err)
	}

	return content, nil
}

func (r *Repository) CreateContent(ctx context.Context, items []domain.Content) error {
	if len(items) == 0 {
		return nil
	}

	ib := sqlbuilder.InsertInto("content")
	ib.Cols(contentColumns("")...)
	for _, c := range items {
		ib.Values(
			c.ID,
			string(c.Type),
			c.URL,
			c.OriginalPrompt,
			c.EnhancedPrompt,
			c.Model,
			c.Category,
			nullString(c.TemplateID),
			nullString(c.UserID),
			c.CreatedAt,
		)
	}

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting content: %w", err)
	}

	return nil
}

func (r *Repository) ListContent(
	ctx context.Context, filters domain.ContentFilters, page, pageSize int,
) ([]domain.Content, int64, error) {
	countSb := sqlbuilder.Select("COUNT(*)")
	countSb.From("content")
	if conds := buildContentConditions(countSb, filters); len(conds) > 0 {
		countSb.Where(conds...)
	}

	query, args := countSb.Build()
	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting content: %w", err)
	}

	limit, offset := paginationToLimitOffset(page, pageSize)

	sb := sqlbuilder.Select(contentColumns("")...)
	sb.From("content")
	if conds := buildContentConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(limit)
	sb.Offset(offset)

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListUnratedContent returns the newest content the user has not settled on.
// Content the user only rerolled still counts as unrated.
func (r *Repository) ListUnratedContent(ctx context.Context, userID string, limit int) ([]domain.Content, error) {
	sb := sqlbuilder.Select(contentColumns("c")...)
	sb.From("content c")
	sb.Where(unratedCondition(sb, userID))
	sb.OrderBy("c.created_at DESC", "c.id DESC")
	if limit > 0 {
		sb.Limit(limit)
	}

	return r.queryContent(ctx, sb)
}

func (r *Repository) CountContent(ctx context.Context) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("content")

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting content: %w", err)
	}
	return count, nil
}

func (r *Repository) CountUnratedContent(ctx context.Context, userID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("content c")
	sb.Where(unratedCondition(sb, userID))

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unrated content: %w", err)
	}
	return count, nil
}

func (r *Repository) CountTemplateContent(ctx context.Context, templateID string) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("content")
	sb.Where(sb.Equal("template_id", templateID))

	query, args := sb.Build()
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting template content: %w", err)
	}
	return count, nil
}

// ListTopContentByLikeRate ranks content with at least minRatings non-reroll
// ratings by the share of them that were likes or superlikes.
func (r *Repository) ListTopContentByLikeRate(
	ctx context.Context, minRatings, limit int,
) ([]domain.ContentLikeRate, error) {
	sb := sqlbuilder.Select(contentColumns("c")...)
	sb.SelectMore(
		"COUNT(r.id) AS rating_count",
		"SUM(r.direction IN ('like', 'superlike')) / COUNT(r.id) AS like_rate",
	)
	sb.From("content c")
	sb.Join("ratings r", "r.content_id = c.id")
	sb.Where(sb.NotEqual("r.direction", string(domain.DirectionReroll)))
	sb.GroupBy("c.id")
	sb.Having(sb.GreaterEqualThan("COUNT(r.id)", minRatings))
	sb.OrderBy("like_rate DESC", "rating_count DESC", "c.id")
	if limit > 0 {
		sb.Limit(limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running top content query: %w", err)
	}
	defer closeRows(rows)

	results := []domain.ContentLikeRate{}
	for rows.Next() {
		var entry domain.ContentLikeRate
		entry.Content, err = scanContent(rows, &entry.Ratings, &entry.LikeRate)
		if err != nil {
			return nil, fmt.Errorf("scanning top content: %w", err)
		}
		results = append(results, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return results, nil
}

func (r *Repository) FetchTemplate(ctx context.Context, id string) (domain.Template, error) {
	sb := sqlbuilder.Select("id", "name", "system_instructions", "model_params", "active", "created_at")
	sb.From("prompt_templates")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var (
		template domain.Template
		params   []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&template.ID,
		&template.Name,
		&template.SystemInstructions,
		&params,
		&template.Active,
		&template.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Template{}, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Template{}, fmt.Errorf("fetching template: %w", err)
	}
	if len(params) > 0 {
		template.ModelParams = params
	}

	return template, nil
}

func buildContentConditions(sb *sqlbuilder.SelectBuilder, filters domain.ContentFilters) []string {
	var conds []string
	if filters.TemplateID != "" {
		conds = append(conds, sb.Equal("template_id", filters.TemplateID))
	}
	if filters.Type != "" {
		conds = append(conds, sb.Equal("type", string(filters.Type)))
	}
	return conds
}

func unratedCondition(sb *sqlbuilder.SelectBuilder, userID string) string {
	return "NOT EXISTS (SELECT 1 FROM ratings r WHERE r.content_id = c.id AND r.user_id = " +
		sb.Var(userID) + " AND r.direction <> " + sb.Var(string(domain.DirectionReroll)) + ")"
}
