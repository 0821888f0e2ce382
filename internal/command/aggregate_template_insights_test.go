package command

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/swipe-feedback/internal/datasources/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregateTemplateInsights_Execute(t *testing.T) {
	lister := mocks.NewMockRecentTemplateRatingLister(t)
	counter := mocks.NewMockTemplateContentCounter(t)
	analyzer := mocks.NewMockCommentAnalyzer(t)
	upserter := mocks.NewMockTemplateInsightUpserter(t)

	// Ratings from several users on several content items of the template.
	ratings := []domain.Rating{
		{ID: "r1", UserID: "u1", ContentID: "c1", Direction: domain.DirectionLike, Comment: ptr("Moody")},
		{ID: "r2", UserID: "u2", ContentID: "c1", Direction: domain.DirectionSuperlike, Comment: ptr("moody")},
		{ID: "r3", UserID: "u1", ContentID: "c2", Direction: domain.DirectionDislike, Comment: ptr("flat")},
		{ID: "r4", UserID: "u3", ContentID: "c3", Direction: domain.DirectionReroll},
		{ID: "r5", UserID: "u3", ContentID: "c2", Direction: domain.DirectionDislike},
	}

	lister.EXPECT().
		ListRecentTemplateRatings(mock.Anything, "tmpl1", 0).
		Return(ratings, nil)
	counter.EXPECT().
		CountTemplateContent(mock.Anything, "tmpl1").
		Return(3, nil)
	analyzer.EXPECT().
		AnalyzeComments(mock.Anything, []string{"Moody", "moody"}).
		RunAndReturn(echoAnalysis)
	analyzer.EXPECT().
		AnalyzeComments(mock.Anything, []string{"flat"}).
		RunAndReturn(echoAnalysis)

	var stored domain.TemplateInsightProfile
	upserter.EXPECT().
		UpsertTemplateInsights(mock.Anything, mock.Anything).
		Run(func(_ context.Context, profile domain.TemplateInsightProfile) { stored = profile }).
		Return(nil)

	cmd := NewAggregateTemplateInsights(lister, counter, analyzer, upserter, AggregateTemplateInsightsConfig{})
	profile, err := cmd.Execute(testContext(), AggregateTemplateInsightsRequest{TemplateID: "tmpl1"})
	require.NoError(t, err)

	assert.Equal(t, "tmpl1", profile.TemplateID)
	assert.Equal(t, []domain.KeywordCount{{Keyword: "moody", Count: 2}}, profile.LikeKeywords)
	assert.Equal(t, []domain.KeywordCount{{Keyword: "flat", Count: 1}}, profile.DislikeKeywords)
	assert.Equal(t, domain.InsightCounters{
		TotalSwipes:     5,
		TotalLikes:      2,
		TotalDislikes:   2,
		TotalSuperlikes: 1,
	}, profile.InsightCounters)
	assert.Equal(t, 3, profile.TotalUses)
	assert.InDelta(t, 0.4, profile.AvgLikeRate, 1e-9)
	assert.Equal(t, profile, stored)
}

func TestAggregateTemplateInsights_Execute_WindowApplied(t *testing.T) {
	lister := mocks.NewMockRecentTemplateRatingLister(t)
	counter := mocks.NewMockTemplateContentCounter(t)
	analyzer := mocks.NewMockCommentAnalyzer(t)
	upserter := mocks.NewMockTemplateInsightUpserter(t)

	lister.EXPECT().
		ListRecentTemplateRatings(mock.Anything, "tmpl1", 5).
		Return(makeRatings("u1", 8, domain.DirectionDislike, nil), nil)
	counter.EXPECT().
		CountTemplateContent(mock.Anything, "tmpl1").
		Return(8, nil)
	upserter.EXPECT().
		UpsertTemplateInsights(mock.Anything, mock.Anything).
		Return(nil)

	cmd := NewAggregateTemplateInsights(lister, counter, analyzer, upserter, AggregateTemplateInsightsConfig{Window: 5})
	profile, err := cmd.Execute(testContext(), AggregateTemplateInsightsRequest{TemplateID: "tmpl1"})
	require.NoError(t, err)

	assert.Equal(t, 5, profile.TotalSwipes)
	assert.Zero(t, profile.AvgLikeRate)
}

func TestAggregateTemplateInsights_Execute_Errors(t *testing.T) {
	cases := []struct {
		name        string
		ratings     []domain.Rating
		listErr     error
		countErr    error
		analyzeErr  error
		wantCount   bool
		wantAnalyze bool
		wantErr     error
	}{
		{
			name:    "no_ratings_writes_nothing",
			wantErr: domain.ErrNoRatings,
		},
		{
			name:    "list_failure",
			listErr: errors.New("timeout"),
			wantErr: domain.ErrStoreFailure,
		},
		{
			name:      "count_failure",
			ratings:   makeRatings("u1", 2, domain.DirectionLike, nil),
			countErr:  errors.New("timeout"),
			wantCount: true,
			wantErr:   domain.ErrStoreFailure,
		},
		{
			name:        "analyzer_failure",
			ratings:     makeRatings("u1", 2, domain.DirectionDislike, ptr("ugly")),
			analyzeErr:  domain.ErrAnalysisFailed,
			wantCount:   true,
			wantAnalyze: true,
			wantErr:     domain.ErrAnalysisFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockRecentTemplateRatingLister(t)
			counter := mocks.NewMockTemplateContentCounter(t)
			analyzer := mocks.NewMockCommentAnalyzer(t)
			upserter := mocks.NewMockTemplateInsightUpserter(t)

			lister.EXPECT().
				ListRecentTemplateRatings(mock.Anything, "tmpl1", 0).
				Return(tc.ratings, tc.listErr)
			if tc.wantCount {
				counter.EXPECT().
					CountTemplateContent(mock.Anything, "tmpl1").
					Return(2, tc.countErr)
			}
			if tc.wantAnalyze {
				analyzer.EXPECT().
					AnalyzeComments(mock.Anything, mock.Anything).
					Return(domain.CommentAnalysis{}, tc.analyzeErr)
			}

			cmd := NewAggregateTemplateInsights(lister, counter, analyzer, upserter, AggregateTemplateInsightsConfig{})
			profile, err := cmd.Execute(testContext(), AggregateTemplateInsightsRequest{TemplateID: "tmpl1"})

			require.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, profile.AvgLikeRate)
		})
	}
}
