package events

import "activityfinder/internal/domain"

// EventBus is the publishing side of the application bus used by UI services
type EventBus interface {
	Publish(event domain.DomainEvent)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event domain.DomainEvent) {}

// OrNull returns bus, or a NullBus when bus is nil
func OrNull(bus EventBus) EventBus {
	if bus == nil {
		return &NullBus{}
	}
	return bus
}
