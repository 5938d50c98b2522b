package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent logs a structured audit event for store mutations.
//
// Args:
//   - action: The action performed (e.g., "create", "update_status")
//   - actor: Who triggered the action (e.g., "public", "operator")
//   - resourceType: The type of resource (e.g., "contact")
//   - resourceID: The ID of the resource (may be empty before creation)
//   - result: The result of the action ("success" or "failure")
//   - details: Optional additional details
func LogAuditEvent(
	ctx context.Context,
	action, actor, resourceType, resourceID, result string,
	details map[string]any,
) {
	logger := LoggerFromContext(ctx)

	logger.Info("Audit event",
		zap.String("audit.action", action),
		zap.String("audit.actor", actor),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
