package service

import (
	"context"
	"testing"

	"clientportal/internal/model"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestStartsOpen(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgID := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	req, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgID.String(),
		Title:          "Annual tax filing",
		Description:    "Prepare and submit the annual return",
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestOpen, req.Status)
	require.Equal(t, orgID, req.OrganizationID)
	require.NotEqual(t, uuid.Nil, req.ID)
}

func TestCreateRequestMissingOrganization(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	repo := newFakeRequestRepo()
	tx := &fakeTxManager{}
	svc := NewRequestService(repo, orgRepo, tx, nil)

	_, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: uuid.NewString(),
		Title:          "Orphan request",
		Description:    "Should never be written",
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Equal(t, 1, tx.calls, "existence check must run inside the transaction")
	require.Empty(t, repo.requests, "no row written when the organization is missing")
}

func TestCreateRequestInvalidOrgID(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), newFakeOrgRepo(), &fakeTxManager{}, nil)

	_, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: "not-a-uuid",
		Title:          "x",
		Description:    "y",
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateRequestPartial(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgID := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	created, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgID.String(),
		Title:          "VAT registration",
		Description:    "Register the company for VAT",
	})
	require.NoError(t, err)

	// Only status in the payload: title and description stay untouched
	updated, err := svc.UpdateRequest(context.Background(), created.ID.String(), UpdateRequestInput{
		Status: Some(model.RequestInProgress),
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestInProgress, updated.Status)
	require.Equal(t, "VAT registration", updated.Title)
	require.Equal(t, "Register the company for VAT", updated.Description)
}

func TestUpdateRequestBackwardTransitionAllowed(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgID := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	created, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgID.String(),
		Title:          "Audit support",
		Description:    "Assist with the statutory audit",
	})
	require.NoError(t, err)

	_, err = svc.UpdateRequest(context.Background(), created.ID.String(), UpdateRequestInput{
		Status: Some(model.RequestClosed),
	})
	require.NoError(t, err)

	reopened, err := svc.UpdateRequest(context.Background(), created.ID.String(), UpdateRequestInput{
		Status: Some(model.RequestOpen),
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestOpen, reopened.Status)
}

func TestUpdateRequestRejectsNullTitle(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgID := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	created, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgID.String(),
		Title:          "Payroll setup",
		Description:    "Monthly payroll processing",
	})
	require.NoError(t, err)

	_, err = svc.UpdateRequest(context.Background(), created.ID.String(), UpdateRequestInput{
		Title: Null[string](),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	// The stored row is unchanged
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Payroll setup", stored.Title)
}

func TestUpdateRequestInvalidStatus(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgID := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	created, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgID.String(),
		Title:          "Contract review",
		Description:    "Review the supplier contract",
	})
	require.NoError(t, err)

	_, err = svc.UpdateRequest(context.Background(), created.ID.String(), UpdateRequestInput{
		Status: Some("Archived"),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateRequestNotFound(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), newFakeOrgRepo(), &fakeTxManager{}, nil)

	_, err := svc.UpdateRequest(context.Background(), uuid.NewString(), UpdateRequestInput{
		Title: Some("anything"),
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListRequestsByOrganizationScoped(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	orgA := orgRepo.add()
	orgB := orgRepo.add()
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, orgRepo, &fakeTxManager{}, nil)

	for range 2 {
		_, err := svc.CreateRequest(context.Background(), CreateRequestInput{
			OrganizationID: orgA.String(),
			Title:          "A-side request",
			Description:    "belongs to A",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateRequest(context.Background(), CreateRequestInput{
		OrganizationID: orgB.String(),
		Title:          "B-side request",
		Description:    "belongs to B",
	})
	require.NoError(t, err)

	requests, err := svc.ListRequestsByOrganization(context.Background(), orgA.String())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	for _, req := range requests {
		require.Equal(t, orgA, req.OrganizationID)
	}
}
