package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/berfenger/enpal2mqtt/internal/config"
	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/internal/core/events"
	"github.com/berfenger/enpal2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// HADiscoveryActor announces every snapshot row to Home Assistant once, then
// goes quiet. The set of rows is only known at runtime, so discovery waits
// for the first snapshot and builds one sensor config per row.
type HADiscoveryActor struct {
	config              *config.Config
	behavior            actor.Behavior
	stash               *actorutil.Stash
	scraperActor        *actor.PID
	mqttActor           *actor.PID
	scraperActorHealthy bool
	mqttActorHealthy    bool
	healthyRecv         int

	logger *zap.Logger
}

func NewHADiscoveryActor(config *config.Config, scraperActor *actor.PID, mqttActor *actor.PID, logger *zap.Logger) *HADiscoveryActor {
	act := &HADiscoveryActor{
		config:       config,
		scraperActor: scraperActor,
		mqttActor:    mqttActor,
		behavior:     actor.NewBehavior(),
		stash:        &actorutil.Stash{},
		logger:       actorutil.ActorLogger(domain.ACTOR_ID_HA_DISCOVERY, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HADiscoveryActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *HADiscoveryActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("hadiscovery@starting started")

		// Check Scraper and MQTT actor healthy
		state.healthyRecv = 0
		state.scraperActorHealthy = false
		state.mqttActorHealthy = false
		// Scraper Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_SCRAPER,
				Healthy: false,
			}
		})
		// MQTT Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.mqttActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_MQTT,
				Healthy: false,
			}
		})
		state.behavior.Become(state.WaitingHealthyReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("hadiscovery@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingHealthyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthResponse:
		state.logger.Debug("hadiscovery@healthcheck ActorHealthResponse", zap.String("sender", msg.Id), zap.Bool("healthy", msg.Healthy))
		state.healthyRecv++
		if msg.Healthy {
			switch msg.Id {
			case domain.ACTOR_ID_SCRAPER:
				state.scraperActorHealthy = true
			case domain.ACTOR_ID_MQTT:
				state.mqttActorHealthy = true
			}
		}
		if state.healthyRecv == 2 {

			if state.scraperActorHealthy && state.mqttActorHealthy {
				// Ask Scraper for the first snapshot
				actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.GetSnapshotRequest{}, 25*time.Second), func(err error) any {
					return domain.GetSnapshotResponse{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					}
				})
				state.behavior.Become(state.WaitingSnapshotReceive)
				state.stash.UnstashAll(ctx)
			} else {
				panic(errors.New("MQTT Actor or Scraper Actor are not healthy"))
			}
		}
	default:
		state.logger.Debug("hadiscovery@healthcheck: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) Done(ctx actor.Context) {

}

func (state *HADiscoveryActor) WaitingSnapshotReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetSnapshotResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@snapshot: GetSnapshotResponse", zap.Int("rows", len(msg.Snapshot)))

		var sensors []domain.GenericSensor

		bridgeDevice := events.BridgeDevice(state.config.MQTT.BaseTopic)
		bridgeSensors := events.BridgeSensors(bridgeDevice)
		sensors = append(sensors, bridgeSensors...)

		inverterDevice := events.InverterDevice(state.config.Enpal.Host)
		inverterDevice.ViaDevice = bridgeDevice.Id
		rowSensors := events.SnapshotSensors(inverterDevice, msg.Snapshot)
		for i := range rowSensors {
			if i > 0 {
				rowSensors[i].Device = events.IdDevice(inverterDevice)
			}
			sensors = append(sensors, rowSensors[i])
		}

		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			Sensors: sensors,
		})
		state.behavior.Become(state.Done)

	default:
		state.logger.Debug("hadiscovery@snapshot: default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}
