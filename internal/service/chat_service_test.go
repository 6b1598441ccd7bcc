package service

import (
	"context"
	"strings"
	"testing"

	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAskPersistsAssistantReply(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo)

	userID := uuid.New()
	entry, err := svc.Ask(context.Background(), AskInput{
		UserID: userID.String(),
		Query:  "How do I register for VAT?",
	})
	require.NoError(t, err)
	require.Equal(t, userID, entry.UserID)
	require.Equal(t, "How do I register for VAT?", entry.Query)
	require.Contains(t, entry.Response, "Tax Guidance")
	require.Len(t, repo.entries, 1)
}

func TestAskWithOrganization(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo)

	orgID := uuid.NewString()
	entry, err := svc.Ask(context.Background(), AskInput{
		UserID:         uuid.NewString(),
		Query:          "billing question",
		IsGuest:        true,
		OrganizationID: &orgID,
	})
	require.NoError(t, err)
	require.True(t, entry.IsGuest)
	require.NotNil(t, entry.OrganizationID)
	require.Equal(t, orgID, entry.OrganizationID.String())
}

func TestCreateChatHistoryInvalidUserID(t *testing.T) {
	svc := NewChatService(&fakeChatRepo{})

	_, err := svc.CreateChatHistory(context.Background(), CreateChatHistoryInput{
		UserID:   "not-a-uuid",
		Query:    "q",
		Response: "r",
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestListChatHistoryMostRecentFirst(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo)

	userID := uuid.New()
	for _, q := range []string{"first", "second", "third"} {
		_, err := svc.CreateChatHistory(context.Background(), CreateChatHistoryInput{
			UserID:   userID.String(),
			Query:    q,
			Response: strings.ToUpper(q),
		})
		require.NoError(t, err)
	}
	// Another user's entry never leaks in
	_, err := svc.CreateChatHistory(context.Background(), CreateChatHistoryInput{
		UserID:   uuid.NewString(),
		Query:    "other",
		Response: "OTHER",
	})
	require.NoError(t, err)

	entries, err := svc.ListChatHistoryByUser(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "third", entries[0].Query)
	require.Equal(t, "second", entries[1].Query)
	require.Equal(t, "first", entries[2].Query)
}
