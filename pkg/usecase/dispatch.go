package usecase

import (
	"context"
	"sync"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// Outcome is the tagged result of one invocation. Transport failures are
// recovered at the task boundary and keyed by recipient id, so attribution
// is always exact; TransportErr carries the underlying cause.
type Outcome struct {
	RecipientID  types.RecipientID
	State        types.RecipientState
	ErrorDetail  string
	TransportErr error
}

// Dispatcher fans one action out to every recipient of a batch and joins on
// completion of all of them.
type Dispatcher struct {
	invoker interfaces.CommandInvoker
}

// NewDispatcher creates a Dispatcher on top of the transport collaborator
func NewDispatcher(invoker interfaces.CommandInvoker) *Dispatcher {
	return &Dispatcher{invoker: invoker}
}

// FanOut issues one independent invocation per recipient, all started
// together with no concurrency cap, and waits until every one has settled.
// It never short-circuits: one slow or failing target cannot hide the
// outcome of the others, at the cost of overall latency being bounded by
// the slowest recipient. The returned slice has exactly one settled outcome
// per recipient, in recipient order.
func (d *Dispatcher) FanOut(ctx context.Context, action *model.ActionDefinition, common model.Payload, recipients []model.Recipient) []Outcome {
	outcomes := make([]Outcome, len(recipients))

	var wg sync.WaitGroup
	for i, r := range recipients {
		wg.Add(1)
		go func(i int, r model.Recipient) {
			defer wg.Done()
			outcomes[i] = d.invokeOne(ctx, action, common, r)
		}(i, r)
	}
	wg.Wait()

	return outcomes
}

func (d *Dispatcher) invokeOne(ctx context.Context, action *model.ActionDefinition, common model.Payload, r model.Recipient) (out Outcome) {
	out.RecipientID = r.ID

	defer func() {
		if rec := recover(); rec != nil {
			out.State = types.RecipientStateError
			out.ErrorDetail = "internal dispatch failure"
			out.TransportErr = goerr.New("panic in invocation task",
				goerr.V("panic", rec), goerr.V(RecipientKey, r.ID))
			metrics.TransportErrors.WithLabelValues(action.Name).Inc()
		}
	}()

	payload := action.BuildPayload(common, r)

	resp, err := d.invoker.Invoke(ctx, action.Command, payload)
	if err != nil {
		metrics.RecipientOutcomes.WithLabelValues(action.Name, metrics.OutcomeTransportError).Inc()
		metrics.TransportErrors.WithLabelValues(action.Name).Inc()
		out.State = types.RecipientStateError
		out.ErrorDetail = "transport failure"
		out.TransportErr = err
		return out
	}

	if resp.Failed {
		metrics.RecipientOutcomes.WithLabelValues(action.Name, metrics.OutcomeLogicalFailure).Inc()
		out.State = types.RecipientStateError
		out.ErrorDetail = resp.Error
		if out.ErrorDetail == "" {
			out.ErrorDetail = "command reported failure"
		}
		return out
	}

	metrics.RecipientOutcomes.WithLabelValues(action.Name, metrics.OutcomeSuccess).Inc()
	out.State = types.RecipientStateSuccess
	return out
}
