package ui

import (
	"activityfinder/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// linkOpenedMsg contains the result of opening a link in the browser
type linkOpenedMsg struct {
	url string
	err error
}

// linkCopiedMsg contains the result of copying a link to the clipboard
type linkCopiedMsg struct {
	url string
	err error
}

// descriptionPagerMsg contains the result of the description pager
type descriptionPagerMsg struct {
	activityID string
	err        error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
