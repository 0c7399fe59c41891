package actor

import (
	"fmt"
	"testing"
	"time"

	adactor "github.com/berfenger/enpal2mqtt/internal/adapter/actor"
	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/internal/util"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMasterActor(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	cfg := util.LoadTestConfig()
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger := zap.Must(logCfg.Build())

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMasterOfPuppetsActor(cfg, func() *adactor.ScraperActor {
			monitor := enpal.NewMonitor(enpal.CreateTestDeviceReader(), cfg.MonitorConfig.CacheTTL(), logger)
			return adactor.NewScraperActor(monitor, logger)
		}, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, es, logger)
		}, logger)
	})
	pid, err := context.SpawnNamed(props, "master")
	if err != nil {
		t.Error(err)
		return
	}

	time.Sleep(2 * time.Second)

	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
		//return
	}
	healthResp, ok := res.(domain.ActorHealthResponse)
	assert.True(t, ok)
	fmt.Printf("Health response: %+v\n", healthResp)
	assert.NotNil(t, healthResp)

	assert.True(t, healthResp.Healthy, "healthy is true")

	context.Stop(pid)

	as.Shutdown()
}

func TestMasterActorForwardsSnapshotRequest(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	cfg := util.LoadTestConfig()
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger := zap.Must(logCfg.Build())

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMasterOfPuppetsActor(cfg, func() *adactor.ScraperActor {
			monitor := enpal.NewMonitor(enpal.CreateTestDeviceReader(), cfg.MonitorConfig.CacheTTL(), logger)
			return adactor.NewScraperActor(monitor, logger)
		}, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, es, logger)
		}, logger)
	})
	pid, err := context.SpawnNamed(props, "master")
	if err != nil {
		t.Error(err)
		return
	}

	res, err := context.RequestFuture(pid, domain.GetSnapshotRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	snapResp, ok := res.(domain.GetSnapshotResponse)
	assert.True(t, ok)
	assert.False(t, snapResp.HasResponseError())
	assert.NotEmpty(t, snapResp.Snapshot)

	reading, found := snapResp.Snapshot["Power.Grid.Export"]
	assert.True(t, found)
	assert.InDelta(t, 2366.35, reading.Value, 0.001)
	assert.Equal(t, "W", reading.Unit)

	context.Stop(pid)

	as.Shutdown()
}
