package model

import "time"

// EntityEvent describes a mutation of a stored entity
type EntityEvent struct {
	Entity     string    `bson:"entity" json:"entity"`
	Action     string    `bson:"action" json:"action"`
	EntityID   int64     `bson:"entityId" json:"entityId"`
	OccurredAt time.Time `bson:"occurredAt" json:"occurredAt"`
}

// RoutingKey returns the topic routing key of the event, e.g. "user.created"
func (e EntityEvent) RoutingKey() string {
	return e.Entity + "." + e.Action
}
