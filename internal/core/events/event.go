package events

import (
	"regexp"
	"strings"

	. "github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"
)

var rowSlugRegexp = regexp.MustCompile("[^a-z0-9_]+")

// RowSlug turns a row name like "Power.Grid.Export" into an id usable as an
// MQTT topic segment and HA object id.
func RowSlug(name string) string {
	return rowSlugRegexp.ReplaceAllString(strings.ToLower(name), "_")
}

func SnapshotToUpdateEvents(snapshot enpal.Snapshot) []any {
	var events []any

	for name, reading := range snapshot {
		events = append(events, FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: RowSlug(name),
			},
			Value:    reading.Value,
			Decimals: 2,
		})
	}

	return events
}

func BridgeStateToUpdateEvent(online bool) any {
	return BridgeStateUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SENSOR_ID_BRIDGE_STATE,
		},
		Value: online,
	}
}
