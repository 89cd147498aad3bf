package worker

import (
	"github.com/spec-kit/supplychain-service/internal/service"
)

// StartActivityRecorder subscribes the audit-trail recorder to domain events.
func StartActivityRecorder(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
