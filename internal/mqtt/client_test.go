package mqtt

import (
	"testing"

	"github.com/berfenger/enpal2mqtt/internal/config"
	"github.com/berfenger/enpal2mqtt/internal/core/events"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/stretchr/testify/assert"
)

func testClient() *MQTTClient {
	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			Host:             "localhost",
			Port:             1883,
			BaseTopic:        "enpal2mqtt",
			HADiscoveryTopic: "homeassistant",
		},
	}
	return CreateMQTTClient(cfg, OptsFromConfig(cfg), nil, nil)
}

func TestStateTopics(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	assert.Equal("enpal2mqtt/bridge/state", client.BridgeStateTopic())
	assert.Equal("enpal2mqtt/sensor/power_grid_export/state", client.SensorStateTopic("power_grid_export"))
	assert.Equal("enpal2mqtt/binary_sensor/bridge/state", client.BinarySensorStateTopic("bridge"))
}

func TestWillIsOfflineOnBridgeStateTopic(t *testing.T) {

	assert := assert.New(t)

	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "enpal2mqtt",
		},
	}
	opts := OptsFromConfig(cfg)

	assert.True(opts.WillEnabled)
	assert.True(opts.WillRetained)
	assert.Equal("enpal2mqtt/bridge/state", opts.WillTopic)
	assert.Equal(MQTT_PAYLOAD_OFFLINE, string(opts.WillPayload))
}

func TestHADiscoverySensorMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	device := events.InverterDevice("192.168.1.40")
	sensor := events.RowSensor(device, "Power.Grid.Export", enpal.Reading{Value: 2366.35, Unit: "W", HasValue: true})

	topic := HADiscoverySensorTopic(client.DiscoveryTopicPrefix(), sensor)
	assert.Equal("homeassistant/sensor/"+device.Id+"/power_grid_export/config", topic)

	msg := GenericSensorToHADiscoveryMessage(client, sensor)
	assert.Equal("enpal2mqtt/sensor/power_grid_export/state", msg.StateTopic)
	assert.Equal("enpal2mqtt/bridge/state", msg.AvTopic)
	assert.Equal("W", msg.UnitOfMeasurement)
	assert.Equal("power", msg.DeviceClass)
	assert.Equal("mqtt", msg.Platform)
	assert.Empty(msg.PayloadOn)
}

func TestHADiscoveryBridgeSensorMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	bridge := events.BridgeDevice("enpal2mqtt")
	sensors := events.BridgeSensors(bridge)

	msg := GenericSensorToHADiscoveryMessage(client, sensors[0])
	assert.Equal("enpal2mqtt/bridge/state", msg.StateTopic, "bridge sensor state is the availability topic itself")
	assert.Equal(MQTT_PAYLOAD_ONLINE, msg.PayloadOn)
	assert.Equal(MQTT_PAYLOAD_OFFLINE, msg.PayloadOff)
	assert.Equal("diagnostic", msg.EntityCategory)
}
