package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// encodedKeywords holds the JSON columns shared by both profile tables.
type encodedKeywords struct {
	likes       []byte
	dislikes    []byte
	suggestions []byte
}

func encodeKeywords(likes, dislikes []domain.KeywordCount, suggestions []string) (encodedKeywords, error) {
	var (
		enc encodedKeywords
		err error
	)
	if likes == nil {
		likes = []domain.KeywordCount{}
	}
	if dislikes == nil {
		dislikes = []domain.KeywordCount{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	if enc.likes, err = json.Marshal(likes); err != nil {
		return encodedKeywords{}, fmt.Errorf("encoding like keywords: %w", err)
	}
	if enc.dislikes, err = json.Marshal(dislikes); err != nil {
		return encodedKeywords{}, fmt.Errorf("encoding dislike keywords: %w", err)
	}
	if enc.suggestions, err = json.Marshal(suggestions); err != nil {
		return encodedKeywords{}, fmt.Errorf("encoding suggestions: %w", err)
	}
	return enc, nil
}

func (enc encodedKeywords) decode(
	likes, dislikes *[]domain.KeywordCount, suggestions *[]string,
) error {
	if err := json.Unmarshal(enc.likes, likes); err != nil {
		return fmt.Errorf("decoding like keywords: %w", err)
	}
	if err := json.Unmarshal(enc.dislikes, dislikes); err != nil {
		return fmt.Errorf("decoding dislike keywords: %w", err)
	}
	if err := json.Unmarshal(enc.suggestions, suggestions); err != nil {
		return fmt.Errorf("decoding suggestions: %w", err)
	}
	if *likes == nil {
		*likes = []domain.KeywordCount{}
	}
	if *dislikes == nil {
		*dislikes = []domain.KeywordCount{}
	}
	if *suggestions == nil {
		*suggestions = []string{}
	}
	return nil
}

// UpsertUserInsights replaces every column of the user's profile row.
func (r *Repository) UpsertUserInsights(ctx context.Context, profile domain.UserInsightProfile) error {
	if err := r.validate.Struct(profile); err != nil {
		return fmt.Errorf("validating user insights: %w", err)
	}

	enc, err := encodeKeywords(profile.LikeKeywords, profile.DislikeKeywords, profile.Suggestions)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto("user_insights")
	ib.Cols(
		"user_id", "like_keywords", "dislike_keywords", "suggestions",
		"total_swipes", "total_likes", "total_dislikes", "total_superlikes", "updated_at",
	)
	ib.Values(
		profile.UserID,
		string(enc.likes),
		string(enc.dislikes),
		string(enc.suggestions),
		profile.TotalSwipes,
		profile.TotalLikes,
		profile.TotalDislikes,
		profile.TotalSuperlikes,
		profile.UpdatedAt,
	)
	ib.SQL(`ON DUPLICATE KEY UPDATE
		like_keywords = VALUES(like_keywords),
		dislike_keywords = VALUES(dislike_keywords),
		suggestions = VALUES(suggestions),
		total_swipes = VALUES(total_swipes),
		total_likes = VALUES(total_likes),
		total_dislikes = VALUES(total_dislikes),
		total_superlikes = VALUES(total_superlikes),
		updated_at = VALUES(updated_at)`)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting user insights: %w", err)
	}

	return nil
}

func (r *Repository) FetchUserInsights(ctx context.Context, userID string) (domain.UserInsightProfile, error) {
	sb := sqlbuilder.Select(
		"user_id", "like_keywords", "dislike_keywords", "suggestions",
		"total_swipes", "total_likes", "total_dislikes", "total_superlikes", "updated_at",
	)
	sb.From("user_insights")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	var (
		profile domain.UserInsightProfile
		enc     encodedKeywords
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&enc.likes,
		&enc.dislikes,
		&enc.suggestions,
		&profile.TotalSwipes,
		&profile.TotalLikes,
		&profile.TotalDislikes,
		&profile.TotalSuperlikes,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserInsightProfile{}, fmt.Errorf("user insights %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.UserInsightProfile{}, fmt.Errorf("fetching user insights: %w", err)
	}

	if err := enc.decode(&profile.LikeKeywords, &profile.DislikeKeywords, &profile.Suggestions); err != nil {
		return domain.UserInsightProfile{}, err
	}

	return profile, nil
}

var templateInsightColumns = []string{
	"template_id", "like_keywords", "dislike_keywords", "suggestions",
	"total_swipes", "total_likes", "total_dislikes", "total_superlikes",
	"total_uses", "avg_like_rate", "updated_at",
}

// UpsertTemplateInsights replaces every column of the template's profile row.
func (r *Repository) UpsertTemplateInsights(ctx context.Context, profile domain.TemplateInsightProfile) error {
	if err := r.validate.Struct(profile); err != nil {
		return fmt.Errorf("validating template insights: %w", err)
	}

	enc, err := encodeKeywords(profile.LikeKeywords, profile.DislikeKeywords, profile.Suggestions)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto("template_insights")
	ib.Cols(templateInsightColumns...)
	ib.Values(
		profile.TemplateID,
		string(enc.likes),
		string(enc.dislikes),
		string(enc.suggestions),
		profile.TotalSwipes,
		profile.TotalLikes,
		profile.TotalDislikes,
		profile.TotalSuperlikes,
		profile.TotalUses,
		profile.AvgLikeRate,
		profile.UpdatedAt,
	)
	ib.SQL(`ON DUPLICATE KEY UPDATE
		like_keywords = VALUES(like_keywords),
		dislike_keywords = VALUES(dislike_keywords),
		suggestions = VALUES(suggestions),
		total_swipes = VALUES(total_swipes),
		total_likes = VALUES(total_likes),
		total_dislikes = VALUES(total_dislikes),
		total_superlikes = VALUES(total_superlikes),
		total_uses = VALUES(total_uses),
		avg_like_rate = VALUES(avg_like_rate),
		updated_at = VALUES(updated_at)`)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting template insights: %w", err)
	}

	return nil
}

func scanTemplateInsights(row rowScanner) (domain.TemplateInsightProfile, error) {
	var (
		profile domain.TemplateInsightProfile
		enc     encodedKeywords
	)
	if err := row.Scan(
		&profile.TemplateID,
		&enc.likes,
		&enc.dislikes,
		&enc.suggestions,
		&profile.TotalSwipes,
		&profile.TotalLikes,
		&profile.TotalDislikes,
		&profile.TotalSuperlikes,
		&profile.TotalUses,
		&profile.AvgLikeRate,
		&profile.UpdatedAt,
	); err != nil {
		return domain.TemplateInsightProfile{}, err
	}

	if err := enc.decode(&profile.LikeKeywords, &profile.DislikeKeywords, &profile.Suggestions); err != nil {
		return domain.TemplateInsightProfile{}, err
	}
	return profile, nil
}

func (r *Repository) FetchTemplateInsights(
	ctx context.Context, templateID string,
) (domain.TemplateInsightProfile, error) {
	sb := sqlbuilder.Select(templateInsightColumns...)
	sb.From("template_insights")
	sb.Where(sb.Equal("template_id", templateID))

	query, args := sb.Build()
	profile, err := scanTemplateInsights(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TemplateInsightProfile{}, fmt.Errorf("template insights %s: %w", templateID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.TemplateInsightProfile{}, fmt.Errorf("fetching template insights: %w", err)
	}

	return profile, nil
}

// ListTemplateInsights returns the profiles of active templates, best liked first.
func (r *Repository) ListTemplateInsights(ctx context.Context, limit int) ([]domain.TemplateInsightProfile, error) {
	columns := make([]string, len(templateInsightColumns))
	for i, c := range templateInsightColumns {
		columns[i] = "ti." + c
	}

	sb := sqlbuilder.Select(columns...)
	sb.From("template_insights ti")
	sb.Join("prompt_templates pt", "pt.id = ti.template_id")
	sb.Where("pt.active = TRUE")
	sb.OrderBy("ti.avg_like_rate DESC", "ti.template_id")
	if limit > 0 {
		sb.Limit(limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running template insights query: %w", err)
	}
	defer closeRows(rows)

	profiles := []domain.TemplateInsightProfile{}
	for rows.Next() {
		profile, err := scanTemplateInsights(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template insights: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return profiles, nil
}
