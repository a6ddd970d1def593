package service

import "errors"

// Sentinel categories the HTTP adapter maps to status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// NotFoundError carries the fixed per-entity message ("Machine not found")
// while still matching errors.Is(err, ErrNotFound).
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(msg string) error { return &NotFoundError{msg: msg} }

var (
	errMachineNotFound         = notFound("Machine not found")
	errWorkOrderNotFound       = notFound("Work order not found")
	errAlertNotFound           = notFound("Alert not found")
	errUserNotFound            = notFound("User not found")
	errNotificationNotFound    = notFound("Notification not found")
	errAssetTypeNotFound       = notFound("Asset type not found")
	errSensorThresholdNotFound = notFound("Sensor threshold not found")
	errAccessRequestNotFound   = notFound("Access request not found")
)
