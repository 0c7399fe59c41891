package events

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"

	. "github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE       = "bridge"
	STATE_CLASS_MEASUREMENT      = "measurement"
	STATE_CLASS_TOTAL_INCREASING = "total_increasing"
	DEVICE_CLASS_BATTERY         = "battery"
	DEVICE_CLASS_CURRENT         = "current"
	DEVICE_CLASS_ENERGY          = "energy"
	DEVICE_CLASS_FREQUENCY       = "frequency"
	DEVICE_CLASS_POWER           = "power"
	DEVICE_CLASS_TEMPERATURE     = "temperature"
	DEVICE_CLASS_VOLTAGE         = "voltage"
	DEVICE_CLASS_CONNECTIVITY    = "connectivity"
	ENTITY_CLASS_DIAGNOSTIC      = "diagnostic"
	SENSOR_TYPE_SENSOR           = "sensor"
	SENSOR_TYPE_BINARY           = "binary_sensor"
)

type unitMeta struct {
	deviceClass string
	icon        string
}

// Unit to HA device class and icon, matching what the inverter page reports.
var unitMetaMap = map[string]unitMeta{
	"W":       {DEVICE_CLASS_POWER, "mdi:flash"},
	"kW":      {DEVICE_CLASS_POWER, "mdi:flash"},
	"Wh":      {DEVICE_CLASS_ENERGY, "mdi:lightning-bolt"},
	"kWh":     {DEVICE_CLASS_ENERGY, "mdi:lightning-bolt"},
	"V":       {DEVICE_CLASS_VOLTAGE, "mdi:flash-triangle"},
	"A":       {DEVICE_CLASS_CURRENT, "mdi:current-ac"},
	"Hz":      {DEVICE_CLASS_FREQUENCY, "mdi:sine-wave"},
	"%":       {DEVICE_CLASS_BATTERY, "mdi:battery"},
	"°C":      {DEVICE_CLASS_TEMPERATURE, "mdi:thermometer"},
	"Minutes": {"", "mdi:timer-sand"},
}

func BridgeDevice(baseTopic string) Device {
	return Device{
		Id:           fmt.Sprintf("enpal2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "ACasal",
		Model:        "Enpal2MQTT",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("Enpal2MQTT %s", md5HashShort(baseTopic)),
	}
}

func InverterDevice(host string) Device {
	return Device{
		Id:           fmt.Sprintf("enpal_inverter_%s", md5HashShort(host)),
		Manufacturer: "Enpal",
		Model:        "Solar Inverter",
		Name:         fmt.Sprintf("Enpal Solar %s", md5HashShort(host)),
	}
}

// IdDevice strips a device down to id and name, for repeated discovery
// messages that reference an already declared device.
func IdDevice(device Device) Device {
	return Device{
		Id:   device.Id,
		Name: device.Name,
	}
}

// RowSensor builds the HA sensor descriptor for a single snapshot row. The
// device class and icon derive from the row's unit.
func RowSensor(inverterDevice Device, name string, reading enpal.Reading) GenericSensor {
	id := RowSlug(name)
	meta, ok := unitMetaMap[reading.Unit]
	if !ok {
		meta = unitMeta{icon: "mdi:gauge"}
	}
	stateClass := STATE_CLASS_MEASUREMENT
	if meta.deviceClass == DEVICE_CLASS_ENERGY {
		stateClass = STATE_CLASS_TOTAL_INCREASING
	}
	return GenericSensor{
		Device:            inverterDevice,
		Id:                id,
		SensorType:        SENSOR_TYPE_SENSOR,
		Name:              name,
		StateClass:        stateClass,
		DeviceClass:       meta.deviceClass,
		UnitOfMeasurement: reading.Unit,
		Icon:              meta.icon,
		UniqueId:          uniqueId(inverterDevice.Id, id),
	}
}

// SnapshotSensors builds one sensor per snapshot row, in stable name order.
func SnapshotSensors(inverterDevice Device, snapshot enpal.Snapshot) []GenericSensor {

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	var sensors []GenericSensor
	for _, name := range names {
		sensors = append(sensors, RowSensor(inverterDevice, name, snapshot[name]))
	}
	return sensors
}

func BridgeSensors(bridgeDevice Device) []GenericSensor {

	var sensors []GenericSensor

	// Bridge connection state
	sensors = append(sensors, GenericSensor{
		Device:         bridgeDevice,
		Id:             SENSOR_ID_BRIDGE_STATE,
		SensorType:     SENSOR_TYPE_BINARY,
		Name:           "Connection state",
		DeviceClass:    DEVICE_CLASS_CONNECTIVITY,
		EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
		UniqueId:       uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
	})

	return sensors
}

func uniqueId(baseId, id string) string {
	return fmt.Sprintf("uid_%s_%s", baseId, id)
}

func md5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func md5HashShort(text string) string {
	hash := md5Hash(text)
	return hash[0:8]
}
