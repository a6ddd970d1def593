package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictive-maintenance-backend/internal/model"
)

func TestAssetTypeCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAssetType(ctx, CreateAssetTypeInput{
		Name: "Robot", Description: "Articulated robot arms",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "ROBOT", created.Prefix, "prefix derived from name when omitted")
	assert.True(t, created.Active)

	active := false
	updated, err := svc.UpdateAssetType(ctx, created.ID, AssetTypePatch{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "Robot", updated.Name)

	require.NoError(t, svc.DeleteAssetType(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteAssetType(ctx, created.ID), ErrNotFound)

	_, err = svc.UpdateAssetType(ctx, 999, AssetTypePatch{})
	assert.EqualError(t, err, "Asset type not found")
}

func TestSensorThresholdCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSensorThreshold(ctx, CreateSensorThresholdInput{
		SensorName: "oil_pressure", Unit: "bar", WarningThreshold: 3, CriticalThreshold: 1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.True(t, created.Active)

	warn := 3.5
	updated, err := svc.UpdateSensorThreshold(ctx, created.ID, SensorThresholdPatch{WarningThreshold: &warn})
	require.NoError(t, err)
	assert.Equal(t, 3.5, updated.WarningThreshold)
	assert.Equal(t, 1.5, updated.CriticalThreshold)

	require.NoError(t, svc.DeleteSensorThreshold(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteSensorThreshold(ctx, created.ID), ErrNotFound)
}

func TestAccessRequestFlow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	requests, err := svc.GetAccessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	created, err := svc.CreateAccessRequest(ctx, CreateAccessRequestInput{
		Name: "New Hire", Email: "newhire@northfield.io", Reason: "Joined maintenance team.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AccessPending, created.Status)

	// Approval creates a technician account for the requester.
	usersBefore, err := svc.GetUsers(ctx)
	require.NoError(t, err)

	reviewed, err := svc.ReviewAccessRequest(ctx, created.ID, true, "Sarah Mitchell")
	require.NoError(t, err)
	assert.Equal(t, model.AccessApproved, reviewed.Status)
	assert.Equal(t, "Sarah Mitchell", reviewed.ReviewedBy)

	usersAfter, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, usersAfter, len(usersBefore)+1)

	newUser := usersAfter[len(usersAfter)-1]
	assert.Equal(t, "newhire@northfield.io", newUser.Email)
	assert.Equal(t, model.RoleTechnician, newUser.Role)
	assert.True(t, newUser.FirstLogin)
}

func TestReviewAccessRequestReject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	reviewed, err := svc.ReviewAccessRequest(ctx, 1, false, "Sarah Mitchell")
	require.NoError(t, err)
	assert.Equal(t, model.AccessRejected, reviewed.Status)

	// Rejection must not create an account.
	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	_, err = svc.ReviewAccessRequest(ctx, 999, true, "Sarah Mitchell")
	assert.EqualError(t, err, "Access request not found")
}
