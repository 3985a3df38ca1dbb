package services

import (
	"context"
	"log/slog"

	"github.com/collegeops/attendance-service/events"
	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/validator"
)

// publishChange notifies subscribers after a successful mutation. A
// publish failure never fails the mutation itself; the write already
// happened.
func publishChange(ctx context.Context, pub events.Publisher, logger *slog.Logger, collection string, action events.Action, id string) {
	if pub == nil {
		return
	}
	err := pub.Publish(ctx, events.EntityEvent{
		Collection: collection,
		Action:     action,
		EntityID:   id,
	})
	if err != nil {
		logger.Warn("failed to publish entity event",
			"collection", collection,
			"action", action,
			"error", err)
	}
}

// callerDepartment resolves the department a scoped mutation applies
// to: an explicit value wins, otherwise the caller's own department.
// Always normalized.
func callerDepartment(caller *models.User, explicit string) string {
	if explicit != "" {
		return validator.NormalizeDepartment(explicit)
	}
	if caller != nil {
		return validator.NormalizeDepartment(caller.DepartmentName())
	}
	return ""
}
