package selection

import "activityfinder/internal/domain"

// State holds which activity is shown in the detail view.
// Activity survives Close so the view can be reopened.
type State struct {
	Activity *domain.Activity
	IsOpen   bool
}
