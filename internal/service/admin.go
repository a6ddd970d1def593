package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"predictive-maintenance-backend/internal/model"
)

// GetAssetTypes lists the asset type taxonomy.
func (s *Service) GetAssetTypes(ctx context.Context) ([]model.AssetType, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	return s.store.AssetTypes(), nil
}

// CreateAssetTypeInput is the caller-supplied part of a new asset type.
type CreateAssetTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prefix      string `json:"prefix"`
}

// CreateAssetType appends a new active asset type.
func (s *Service) CreateAssetType(ctx context.Context, in CreateAssetTypeInput) (model.AssetType, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.AssetType{}, err
	}
	prefix := in.Prefix
	if prefix == "" {
		prefix = assetPrefix(in.Name)
	}
	return s.store.InsertAssetType(func(nextID int) model.AssetType {
		return model.AssetType{
			ID:          nextID,
			Name:        in.Name,
			Description: in.Description,
			Prefix:      prefix,
			Active:      true,
		}
	}), nil
}

// AssetTypePatch is a shallow-merge update; nil fields are left unchanged.
type AssetTypePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Prefix      *string `json:"prefix"`
	Active      *bool   `json:"active"`
}

// UpdateAssetType shallow-merges the patch into the asset type with the
// given id.
func (s *Service) UpdateAssetType(ctx context.Context, id int, patch AssetTypePatch) (model.AssetType, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.AssetType{}, err
	}
	t, ok := s.store.AssetTypeByID(id)
	if !ok {
		return model.AssetType{}, errAssetTypeNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Prefix != nil {
		t.Prefix = *patch.Prefix
	}
	if patch.Active != nil {
		t.Active = *patch.Active
	}
	s.store.ReplaceAssetType(t)
	return t, nil
}

// DeleteAssetType removes an asset type or returns NotFound.
func (s *Service) DeleteAssetType(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteAssetType(id) {
		return errAssetTypeNotFound
	}
	return nil
}

// GetSensorThresholds lists the configured sensor thresholds.
func (s *Service) GetSensorThresholds(ctx context.Context) ([]model.SensorThreshold, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	return s.store.SensorThresholds(), nil
}

// CreateSensorThresholdInput is the caller-supplied part of a new threshold.
type CreateSensorThresholdInput struct {
	SensorName        string  `json:"sensor_name"`
	Unit              string  `json:"unit"`
	WarningThreshold  float64 `json:"warning_threshold"`
	CriticalThreshold float64 `json:"critical_threshold"`
}

// CreateSensorThreshold appends a new active threshold.
func (s *Service) CreateSensorThreshold(ctx context.Context, in CreateSensorThresholdInput) (model.SensorThreshold, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.SensorThreshold{}, err
	}
	return s.store.InsertSensorThreshold(func(nextID int) model.SensorThreshold {
		return model.SensorThreshold{
			ID:                nextID,
			SensorName:        in.SensorName,
			Unit:              in.Unit,
			WarningThreshold:  in.WarningThreshold,
			CriticalThreshold: in.CriticalThreshold,
			Active:            true,
		}
	}), nil
}

// SensorThresholdPatch is a shallow-merge update; nil fields are left
// unchanged.
type SensorThresholdPatch struct {
	SensorName        *string  `json:"sensor_name"`
	Unit              *string  `json:"unit"`
	WarningThreshold  *float64 `json:"warning_threshold"`
	CriticalThreshold *float64 `json:"critical_threshold"`
	OverrideEnabled   *bool    `json:"override_enabled"`
	Active            *bool    `json:"active"`
}

// UpdateSensorThreshold shallow-merges the patch into the threshold with the
// given id.
func (s *Service) UpdateSensorThreshold(ctx context.Context, id int, patch SensorThresholdPatch) (model.SensorThreshold, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.SensorThreshold{}, err
	}
	t, ok := s.store.SensorThresholdByID(id)
	if !ok {
		return model.SensorThreshold{}, errSensorThresholdNotFound
	}
	if patch.SensorName != nil {
		t.SensorName = *patch.SensorName
	}
	if patch.Unit != nil {
		t.Unit = *patch.Unit
	}
	if patch.WarningThreshold != nil {
		t.WarningThreshold = *patch.WarningThreshold
	}
	if patch.CriticalThreshold != nil {
		t.CriticalThreshold = *patch.CriticalThreshold
	}
	if patch.OverrideEnabled != nil {
		t.OverrideEnabled = *patch.OverrideEnabled
	}
	if patch.Active != nil {
		t.Active = *patch.Active
	}
	s.store.ReplaceSensorThreshold(t)
	return t, nil
}

// DeleteSensorThreshold removes a threshold or returns NotFound.
func (s *Service) DeleteSensorThreshold(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteSensorThreshold(id) {
		return errSensorThresholdNotFound
	}
	return nil
}

// GetAccessRequests lists signup requests awaiting admin review.
func (s *Service) GetAccessRequests(ctx context.Context) ([]model.AccessRequest, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	return s.store.AccessRequests(), nil
}

// CreateAccessRequestInput is a signup request from the login page.
type CreateAccessRequestInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// CreateAccessRequest records a pending signup request.
func (s *Service) CreateAccessRequest(ctx context.Context, in CreateAccessRequestInput) (model.AccessRequest, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.AccessRequest{}, err
	}
	return s.store.InsertAccessRequest(func(nextID int) model.AccessRequest {
		return model.AccessRequest{
			ID:        nextID,
			Name:      in.Name,
			Email:     in.Email,
			Reason:    in.Reason,
			Status:    model.AccessPending,
			CreatedAt: time.Now().UTC(),
		}
	}), nil
}

// ReviewAccessRequest approves or rejects a pending request. Approval creates
// a technician account for the requester with a first-login flag set.
func (s *Service) ReviewAccessRequest(ctx context.Context, id int, approve bool, reviewer string) (model.AccessRequest, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.AccessRequest{}, err
	}
	r, ok := s.store.AccessRequestByID(id)
	if !ok {
		return model.AccessRequest{}, errAccessRequestNotFound
	}
	if approve {
		r.Status = model.AccessApproved
	} else {
		r.Status = model.AccessRejected
	}
	r.ReviewedBy = reviewer
	s.store.ReplaceAccessRequest(r)

	if approve {
		company := s.store.Company()
		u := s.store.InsertUser(func(nextID int) model.User {
			return model.User{
				ID:         nextID,
				Name:       r.Name,
				Email:      r.Email,
				Password:   "changeme",
				Role:       model.RoleTechnician,
				FirstLogin: true,
				CompanyID:  company.ID,
				CreatedAt:  time.Now().UTC(),
			}
		})
		s.log.Info("access request approved",
			zap.Int("request_id", r.ID),
			zap.Int("user_id", u.ID),
			zap.String("reviewer", reviewer))
	}
	return r, nil
}
