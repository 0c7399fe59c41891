package events

import (
	"testing"

	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/stretchr/testify/assert"
)

func TestRowSlug(t *testing.T) {

	assert := assert.New(t)

	assert.Equal("power_grid_export", RowSlug("Power.Grid.Export"))
	assert.Equal("energy_production_total_day", RowSlug("Energy.Production.Total.Day"))
	assert.Equal("state_inverter", RowSlug("State Inverter"))
	assert.Equal("a_b_c", RowSlug("a!!b??c"))
}

func TestSnapshotToUpdateEvents(t *testing.T) {

	assert := assert.New(t)

	snapshot := enpal.Snapshot{
		"Power.Grid.Export":           {Value: 2366.35, Unit: "W", HasValue: true},
		"Energy.Production.Total.Day": {Value: 18.52, Unit: "kWh", HasValue: true},
	}

	events := SnapshotToUpdateEvents(snapshot)
	assert.Len(events, 2)

	byId := map[string]domain.FloatSensorUpdateEvent{}
	for _, ev := range events {
		fev, ok := ev.(domain.FloatSensorUpdateEvent)
		assert.True(ok)
		byId[fev.SensorId()] = fev
	}

	assert.InDelta(2366.35, byId["power_grid_export"].Value, 0.001)
	assert.InDelta(18.52, byId["energy_production_total_day"].Value, 0.001)
	assert.Equal(uint(2), byId["power_grid_export"].Decimals)
}

func TestSnapshotSensors(t *testing.T) {

	assert := assert.New(t)

	device := InverterDevice("192.168.1.40")
	snapshot := enpal.Snapshot{
		"Power.Grid.Export":           {Value: 2366.35, Unit: "W", HasValue: true},
		"Energy.Production.Total.Day": {Value: 18.52, Unit: "kWh", HasValue: true},
		"Percent.Storage.Level":       {Value: 55, Unit: "%", HasValue: true},
		"State.Inverter":              {Value: 200, HasValue: true},
	}

	sensors := SnapshotSensors(device, snapshot)
	assert.Len(sensors, 4)

	byId := map[string]domain.GenericSensor{}
	for _, s := range sensors {
		byId[s.Id] = s
	}

	power := byId["power_grid_export"]
	assert.Equal(DEVICE_CLASS_POWER, power.DeviceClass)
	assert.Equal(STATE_CLASS_MEASUREMENT, power.StateClass)
	assert.Equal("W", power.UnitOfMeasurement)
	assert.Equal("Power.Grid.Export", power.Name)

	energy := byId["energy_production_total_day"]
	assert.Equal(DEVICE_CLASS_ENERGY, energy.DeviceClass)
	assert.Equal(STATE_CLASS_TOTAL_INCREASING, energy.StateClass)

	battery := byId["percent_storage_level"]
	assert.Equal(DEVICE_CLASS_BATTERY, battery.DeviceClass)

	state := byId["state_inverter"]
	assert.Equal("", state.DeviceClass, "unit-less rows have no device class")
	assert.Equal("mdi:gauge", state.Icon)

	// stable order
	assert.Equal("energy_production_total_day", sensors[0].Id)
}

func TestDeviceIdsAreStable(t *testing.T) {

	assert := assert.New(t)

	a := InverterDevice("192.168.1.40")
	b := InverterDevice("192.168.1.40")
	c := InverterDevice("192.168.1.41")

	assert.Equal(a.Id, b.Id)
	assert.NotEqual(a.Id, c.Id)

	bridge := BridgeDevice("enpal2mqtt")
	sensors := BridgeSensors(bridge)
	assert.Len(sensors, 1)
	assert.Equal(SENSOR_TYPE_BINARY, sensors[0].SensorType)
	assert.Equal(uniqueId(bridge.Id, SENSOR_ID_BRIDGE_STATE), sensors[0].UniqueId)
}
