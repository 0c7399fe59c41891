package actor

import (
	"testing"
	"time"

	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestScraperActorSnapshot(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	logger := zap.Must(zap.NewDevelopmentConfig().Build())
	monitor := enpal.NewMonitor(enpal.CreateTestDeviceReader(), 2*time.Second, logger)

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewScraperActor(monitor, logger)
	})
	pid, err := context.SpawnNamed(props, "scraper")
	if err != nil {
		t.Error(err)
		return
	}

	res, err := context.RequestFuture(pid, domain.GetSnapshotRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp, ok := res.(domain.GetSnapshotResponse)
	assert.True(t, ok)
	assert.False(t, resp.HasResponseError())
	assert.False(t, resp.FetchedAt.IsZero())

	reading, found := resp.Snapshot["Energy.Consumption.Total.Day"]
	assert.True(t, found)
	assert.InDelta(t, 9.34, reading.Value, 0.001, "Wh readings are normalized to kWh")
	assert.Equal(t, "kWh", reading.Unit)

	context.Stop(pid)
	as.Shutdown()
}

func TestScraperActorHealth(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	logger := zap.Must(zap.NewDevelopmentConfig().Build())
	monitor := enpal.NewMonitor(enpal.CreateTestDeviceReader(), 2*time.Second, logger)

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewScraperActor(monitor, logger)
	})
	pid, err := context.SpawnNamed(props, "scraper")
	if err != nil {
		t.Error(err)
		return
	}

	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 5*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp, ok := res.(domain.ActorHealthResponse)
	assert.True(t, ok)
	assert.True(t, resp.Healthy)
	assert.Equal(t, domain.ACTOR_ID_SCRAPER, resp.Id)

	context.Stop(pid)
	as.Shutdown()
}
