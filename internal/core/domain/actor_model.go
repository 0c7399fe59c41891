package domain

import (
	"time"

	"github.com/berfenger/enpal2mqtt/pkg/enpal"
)

const (
	ACTOR_ID_MASTER       = "master"
	ACTOR_ID_SCRAPER      = "scraper"
	ACTOR_ID_POLLER       = "poller"
	ACTOR_ID_MQTT         = "mqtt"
	ACTOR_ID_HA_DISCOVERY = "hadiscovery"
)

// GetSnapshotRequest asks the scraper actor for a refresh-then-read: the
// cached snapshot is refreshed if stale and the resulting mapping returned.
type GetSnapshotRequest struct {
	ActorRequestMixIn
}

type GetSnapshotResponse struct {
	ActorResponseMixIn
	Snapshot  enpal.Snapshot
	FetchedAt time.Time
}

type PublishSensorUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  SensorUpdateEvent
}

type PublishSensorUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Sensors []GenericSensor
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
