package command

import (
	"errors"
	"testing"

	cmdmocks "github.com/jbeshir/swipe-feedback/internal/command/mocks"
	"github.com/jbeshir/swipe-feedback/internal/datasources/mocks"
	"github.com/jbeshir/swipe-feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunInsightRebuild_Execute(t *testing.T) {
	subjects := mocks.NewMockRatedSubjectLister(t)
	userCmd := cmdmocks.NewMockCommand[AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	subjects.EXPECT().ListRatedUserIDs(mock.Anything).Return([]string{"u1", "u2", "u3"}, nil)
	subjects.EXPECT().ListRatedTemplateIDs(mock.Anything).Return([]string{"t1", "t2"}, nil)

	userCmd.EXPECT().
		Execute(mock.Anything, AggregateUserInsightsRequest{UserID: "u1"}).
		Return(domain.UserInsightProfile{UserID: "u1"}, nil)
	userCmd.EXPECT().
		Execute(mock.Anything, AggregateUserInsightsRequest{UserID: "u2"}).
		Return(domain.UserInsightProfile{}, domain.ErrAnalysisFailed)
	userCmd.EXPECT().
		Execute(mock.Anything, AggregateUserInsightsRequest{UserID: "u3"}).
		Return(domain.UserInsightProfile{}, domain.ErrNoRatings)
	templateCmd.EXPECT().
		Execute(mock.Anything, AggregateTemplateInsightsRequest{TemplateID: "t1"}).
		Return(domain.TemplateInsightProfile{TemplateID: "t1"}, nil)
	templateCmd.EXPECT().
		Execute(mock.Anything, AggregateTemplateInsightsRequest{TemplateID: "t2"}).
		Return(domain.TemplateInsightProfile{TemplateID: "t2"}, nil)

	cmd := NewRunInsightRebuild(subjects, userCmd, templateCmd, RunInsightRebuildConfig{Concurrency: 2})
	result, err := cmd.Execute(testContext(), RunInsightRebuildRequest{})
	require.NoError(t, err)

	assert.Equal(t, RebuildCounts{Succeeded: 1, Skipped: 1, Failed: 1}, result.Users)
	assert.Equal(t, RebuildCounts{Succeeded: 2}, result.Templates)
}

func TestRunInsightRebuild_Execute_ListError(t *testing.T) {
	subjects := mocks.NewMockRatedSubjectLister(t)
	userCmd := cmdmocks.NewMockCommand[AggregateUserInsightsRequest, domain.UserInsightProfile](t)
	templateCmd := cmdmocks.NewMockCommand[AggregateTemplateInsightsRequest, domain.TemplateInsightProfile](t)

	subjects.EXPECT().ListRatedUserIDs(mock.Anything).Return(nil, errors.New("db down"))

	cmd := NewRunInsightRebuild(subjects, userCmd, templateCmd, RunInsightRebuildConfig{})
	_, err := cmd.Execute(testContext(), RunInsightRebuildRequest{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "listing rated users")
}
