package actor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/berfenger/enpal2mqtt/internal/core/domain"
	"github.com/berfenger/enpal2mqtt/internal/util/actorutil"
	"github.com/berfenger/enpal2mqtt/pkg/enpal"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/reugn/go-quartz/logger"
	"go.uber.org/zap"
)

const (
	scrapeTimeout = 20 * time.Second
)

// ScraperActor owns the inverter monitor. A snapshot request refreshes the
// cache if stale and answers with the current mapping. While a fetch is in
// flight, further requests are stashed so the monitor is entered by one
// caller at a time.
type ScraperActor struct {
	behavior actor.Behavior
	stash    *actorutil.Stash
	monitor  *enpal.Monitor
	logger   *zap.Logger
}

type backgroundTaskResult struct {
	message any
	replyTo *actor.PID
}

func NewScraperActor(monitor *enpal.Monitor, logger *zap.Logger) *ScraperActor {
	act := &ScraperActor{
		monitor:  monitor,
		behavior: actor.NewBehavior(),
		stash:    &actorutil.Stash{},
		logger:   actorutil.ActorLogger(domain.ACTOR_ID_SCRAPER, logger),
	}
	act.behavior.Become(act.DefaultReceive)
	return act
}

func (state *ScraperActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *ScraperActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("scraper@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_SCRAPER,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetSnapshotRequest:
		state.logger.Debug("scraper@default: GetSnapshotRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getSnapshot),
			mapTaskResult[domain.GetSnapshotResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetSnapshotResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(scrapeTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingFetch)
	default:
		state.logger.Debug("scraper@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *ScraperActor) WaitingFetch(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case backgroundTaskResult:
		state.logger.Debug("scraper@waitingFetch backgroundTaskResult", zap.String("type", fmt.Sprintf("%T", msg.message)))
		ctx.Send(msg.replyTo, msg.message)
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("scraper@waitingFetch stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (a *ScraperActor) getSnapshot() (*domain.GetSnapshotResponse, error) {
	a.monitor.Refresh(context.Background())
	snapshot := a.monitor.Snapshot()
	if len(snapshot) == 0 {
		err := errors.New("no snapshot available yet")
		logger.Error(err)
		return nil, err
	}
	return &domain.GetSnapshotResponse{
		Snapshot:  snapshot,
		FetchedAt: a.monitor.LastFetch(),
	}, nil
}

func mapTaskResult[T any](sender *actor.PID) func(t *T) *backgroundTaskResult {
	return func(t *T) *backgroundTaskResult {
		return &backgroundTaskResult{
			message: *t,
			replyTo: sender,
		}
	}
}
