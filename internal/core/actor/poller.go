package actor

import (
	"fmt"
	"time"

	"github.com/berfenger/enpal2mqtt/internal/config"
	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/internal/core/events"
	. "github.com/berfenger/enpal2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// PollerActor drives the scraper on a fixed interval and turns each snapshot
// into sensor update events on the event stream. It also derives the bridge
// availability: the bridge is "replying" while the last snapshot is younger
// than two poll intervals, and a change in that condition publishes a bridge
// state event.
type PollerActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	scraperActor *actor.PID
	config       *config.Config
	eventStream  *eventstream.EventStream
	replying     bool

	logger *zap.Logger
}

type pollTick struct {
}

func NewPollerActor(config *config.Config, scraperActor *actor.PID, eventStream *eventstream.EventStream, logger *zap.Logger) *PollerActor {
	act := &PollerActor{
		config:       config,
		scraperActor: scraperActor,
		behavior:     actor.NewBehavior(),
		stash:        &Stash{},
		logger:       ActorLogger(domain.ACTOR_ID_POLLER, logger),
		eventStream:  eventStream,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *PollerActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *PollerActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("poller@starting started")

		if state.config.MonitorConfig.PollIntervalMillis > 0 {
			state.scheduler = scheduler.NewTimerScheduler(ctx)
			// first snapshot right away
			ctx.Send(ctx.Self(), pollTick{})
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
	default:
		state.logger.Debug("poller@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("poller@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_POLLER,
			Healthy: true,
			State:   "idle",
		})
	case pollTick:
		state.logger.Debug("poller@default tick")
		// get a fresh snapshot
		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.GetSnapshotRequest{}, 25*time.Second), func(err error) any {
			return domain.GetSnapshotResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})

		// schedule next tick
		state.scheduler.RequestOnce(state.config.MonitorConfig.PollInterval(), ctx.Self(), pollTick{})
		state.behavior.BecomeStacked(state.WaitingSnapshotReceive)
	default:
		state.logger.Debug("poller@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) WaitingSnapshotReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetSnapshotResponse:
		if msg.HasResponseError() {
			state.logger.Error("poller@waiting GetSnapshotResponse error", zap.Error(msg.GetResponseError()))
			state.updateReplying(false)
			state.behavior.UnbecomeStacked()
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("poller@waiting GetSnapshotResponse")

		state.updateReplying(time.Since(msg.FetchedAt) < 2*state.config.MonitorConfig.PollInterval())

		evs := events.SnapshotToUpdateEvents(msg.Snapshot)
		for _, ev := range evs {
			state.eventStream.Publish(ev)
		}

		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("poller@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) updateReplying(replying bool) {
	if replying == state.replying {
		return
	}
	state.replying = replying
	state.eventStream.Publish(events.BridgeStateToUpdateEvent(replying))
}
