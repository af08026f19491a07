package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/interfaces"
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/metrics"
	"github.com/gameops-lab/rconhub/pkg/utils/async"
	"github.com/gameops-lab/rconhub/pkg/utils/errutil"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultAutoCloseDelay is how long a fully successful dialog stays visible
// before closing itself, so the operator sees the confirmation state.
const DefaultAutoCloseDelay = time.Second

// BatchNotifier is notified when a batch settles, e.g. to post a summary
// message. Failures are logged, never propagated.
type BatchNotifier interface {
	NotifyBatchSettled(ctx context.Context, entry *model.AuditEntry) error
}

// RecipientView is the per-recipient status exposed to the dashboard
type RecipientView struct {
	ID           types.RecipientID    `json:"recipient_id"`
	DisplayLabel string               `json:"display_label"`
	State        types.RecipientState `json:"state"`
	ErrorDetail  string               `json:"error_detail,omitempty"`
}

// DialogSnapshot is a point-in-time copy of a dialog session. Mutating it
// has no effect on the session.
type DialogSnapshot struct {
	ID             types.DialogID    `json:"dialog_id"`
	State          types.DialogState `json:"state"`
	Action         string            `json:"action"`
	BatchState     types.BatchState  `json:"batch_state"`
	SubmitEnabled  bool              `json:"submit_enabled"`
	TransportError string            `json:"transport_error,omitempty"`
	Recipients     []RecipientView   `json:"recipients"`
}

// dialogSession is the mutable state behind one open dialog. All access is
// serialized by the use case mutex; the generation counter implements the
// stale-update guard for results arriving after teardown or reset.
type dialogSession struct {
	id             types.DialogID
	state          types.DialogState
	batch          *model.BatchRequest
	actor          model.Actor
	generation     uint64
	transportError string
	openedAt       time.Time
}

// DialogUseCase owns every open dialog session and runs the submit cycle:
// fan-out, settle-all join, aggregation, side effects, auto-close.
type DialogUseCase struct {
	mu       sync.Mutex
	sessions map[types.DialogID]*dialogSession

	actions    *ActionUseCase
	dispatcher *Dispatcher
	repo       interfaces.Repository
	cache      interfaces.ProfileCacheInvalidator
	notifier   BatchNotifier

	autoCloseDelay time.Duration
	now            func() time.Time
}

// NewDialogUseCase wires the dialog lifecycle controller
func NewDialogUseCase(actions *ActionUseCase, dispatcher *Dispatcher) *DialogUseCase {
	return &DialogUseCase{
		sessions:       make(map[types.DialogID]*dialogSession),
		actions:        actions,
		dispatcher:     dispatcher,
		autoCloseDelay: DefaultAutoCloseDelay,
		now:            time.Now,
	}
}

// Open creates a fresh dialog session for the selected action and targets.
// The action must be offered on the surface and permitted for the actor.
func (uc *DialogUseCase) Open(ctx context.Context, actor model.Actor, surface types.Surface, actionName string, targets []model.Target, formPayload model.Payload) (*DialogSnapshot, error) {
	action, err := uc.actions.Resolve(ctx, surface, actionName, actor)
	if err != nil {
		return nil, err
	}

	recipients, err := model.NormalizeTargets(targets)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to normalize targets", goerr.V(ActionKey, actionName))
	}

	batch, err := model.NewBatchRequest(action, recipients, formPayload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create batch", goerr.V(ActionKey, actionName))
	}

	s := &dialogSession{
		id:       types.NewDialogID(),
		state:    types.DialogStateOpen,
		batch:    batch,
		actor:    actor,
		openedAt: uc.now(),
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	snap := uc.snapshotLocked(s)
	uc.mu.Unlock()

	return snap, nil
}

// Get returns a snapshot of the dialog session
func (uc *DialogUseCase) Get(ctx context.Context, id types.DialogID) (*DialogSnapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, goerr.Wrap(ErrDialogNotFound, "no such dialog", goerr.V(DialogIDKey, id))
	}
	return uc.snapshotLocked(s), nil
}

// RemoveRecipient drops one recipient and its status entry. Editing is
// rejected while a submission is in flight.
func (uc *DialogUseCase) RemoveRecipient(ctx context.Context, id types.DialogID, recipientID types.RecipientID) (*DialogSnapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, goerr.Wrap(ErrDialogNotFound, "no such dialog", goerr.V(DialogIDKey, id))
	}
	if s.state == types.DialogStateSubmitting {
		return nil, goerr.Wrap(ErrSubmissionInFlight, "cannot edit recipients while submitting",
			goerr.V(DialogIDKey, id), goerr.V(RecipientKey, recipientID))
	}

	if err := s.batch.RemoveRecipient(recipientID); err != nil {
		return nil, goerr.Wrap(err, "failed to remove recipient",
			goerr.V(DialogIDKey, id), goerr.V(RecipientKey, recipientID))
	}
	return uc.snapshotLocked(s), nil
}

// Submit runs one full batch cycle: every recipient to Pending, concurrent
// fan-out, settle-all join, aggregation, then side effects. It blocks until
// the batch settles and returns the settled snapshot. A dialog closed while
// the fan-out is in flight drops all results (stale-update guard).
func (uc *DialogUseCase) Submit(ctx context.Context, id types.DialogID) (*DialogSnapshot, error) {
	uc.mu.Lock()
	s, ok := uc.sessions[id]
	if !ok {
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrDialogNotFound, "no such dialog", goerr.V(DialogIDKey, id))
	}
	if s.state == types.DialogStateSubmitting {
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrSubmissionInFlight, "dialog is already submitting", goerr.V(DialogIDKey, id))
	}

	if err := s.batch.BeginSubmission(); err != nil {
		uc.mu.Unlock()
		return nil, goerr.Wrap(err, "cannot begin submission", goerr.V(DialogIDKey, id))
	}
	s.state = types.DialogStateSubmitting
	s.transportError = ""
	s.generation++
	gen := s.generation

	action := s.batch.Action
	formPayload := s.batch.FormPayload
	recipients := s.batch.SnapshotRecipients()
	actor := s.actor
	startedAt := uc.now()
	metrics.BatchesSubmitted.WithLabelValues(action.Name).Inc()
	uc.mu.Unlock()

	outcomes := uc.dispatcher.FanOut(ctx, action, formPayload, recipients)

	uc.mu.Lock()
	current, ok := uc.sessions[id]
	if !ok || current != s || s.generation != gen {
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrDialogClosed, "dialog torn down while submitting, results dropped",
			goerr.V(DialogIDKey, id))
	}

	var transportError string
	for _, o := range outcomes {
		if err := s.batch.Resolve(o.RecipientID, o.State, o.ErrorDetail); err != nil {
			errutil.Handle(ctx, err, "failed to record outcome")
		}
		if o.TransportErr != nil && transportError == "" {
			transportError = o.TransportErr.Error()
		}
	}

	settledState, err := s.batch.Settle()
	if err != nil {
		uc.mu.Unlock()
		return nil, goerr.Wrap(err, "failed to settle batch", goerr.V(DialogIDKey, id))
	}
	s.transportError = transportError
	s.state = types.DialogStateOpen
	settledAt := uc.now()

	metrics.BatchesSettled.WithLabelValues(action.Name, settledState.String()).Inc()
	metrics.BatchSettleDuration.Observe(settledAt.Sub(startedAt).Seconds())

	entry := uc.buildAuditEntryLocked(s, actor, startedAt, settledAt)
	if settledState == types.BatchStateCompleted {
		time.AfterFunc(uc.autoCloseDelay, func() {
			uc.autoClose(id, gen)
		})
	}
	snap := uc.snapshotLocked(s)
	uc.mu.Unlock()

	uc.emitSideEffects(ctx, entry, outcomes)

	return snap, nil
}

// Close tears down the dialog's local state immediately. In-flight
// invocations are not cancelled; their results will be dropped by the
// stale-update guard when they arrive.
func (uc *DialogUseCase) Close(ctx context.Context, id types.DialogID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return goerr.Wrap(ErrDialogNotFound, "no such dialog", goerr.V(DialogIDKey, id))
	}
	s.generation++
	s.state = types.DialogStateClosed
	delete(uc.sessions, id)
	return nil
}

// autoClose closes a completed dialog after the confirmation delay. The
// generation check makes it a no-op when the dialog was closed manually or
// resubmitted in the meantime.
func (uc *DialogUseCase) autoClose(id types.DialogID, gen uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok || s.generation != gen {
		return
	}
	if s.batch.State != types.BatchStateCompleted {
		return
	}
	s.state = types.DialogStateClosed
	delete(uc.sessions, id)
}

// emitSideEffects runs the post-settle side effects: cache invalidation for
// every succeeded recipient, the audit record, and the optional settle
// notification. All best-effort; none can fail the submission.
func (uc *DialogUseCase) emitSideEffects(ctx context.Context, entry *model.AuditEntry, outcomes []Outcome) {
	if uc.cache != nil {
		for _, o := range outcomes {
			if o.State != types.RecipientStateSuccess {
				continue
			}
			recipientID := o.RecipientID
			async.Dispatch(ctx, func(ctx context.Context) error {
				return uc.cache.Invalidate(ctx, recipientID)
			})
		}
	}

	if uc.repo != nil {
		if err := uc.repo.Audit().Put(ctx, entry); err != nil {
			errutil.Handle(ctx, err, "failed to write audit entry")
		}
	}

	if uc.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.NotifyBatchSettled(ctx, entry)
		})
	}
}

func (uc *DialogUseCase) buildAuditEntryLocked(s *dialogSession, actor model.Actor, startedAt, settledAt time.Time) *model.AuditEntry {
	outcomes := make([]model.AuditOutcome, len(s.batch.Recipients))
	for i, rs := range s.batch.Recipients {
		outcomes[i] = model.AuditOutcome{
			RecipientID:  rs.Recipient.ID,
			DisplayLabel: rs.Recipient.DisplayLabel,
			State:        rs.State,
			ErrorDetail:  rs.ErrorDetail,
		}
	}

	return &model.AuditEntry{
		ID:             uuid.NewString(),
		DialogID:       s.id,
		ActionName:     s.batch.Action.Name,
		Command:        s.batch.Action.Command,
		ActorName:      actor.Name,
		State:          s.batch.State,
		Outcomes:       outcomes,
		TransportError: s.transportError,
		StartedAt:      startedAt,
		SettledAt:      settledAt,
	}
}

func (uc *DialogUseCase) snapshotLocked(s *dialogSession) *DialogSnapshot {
	recipients := make([]RecipientView, len(s.batch.Recipients))
	for i, rs := range s.batch.Recipients {
		recipients[i] = RecipientView{
			ID:           rs.Recipient.ID,
			DisplayLabel: rs.Recipient.DisplayLabel,
			State:        rs.State,
			ErrorDetail:  rs.ErrorDetail,
		}
	}

	submitEnabled := s.state == types.DialogStateOpen &&
		(s.batch.State == types.BatchStateEditing || s.batch.State == types.BatchStatePartiallyFailed)

	return &DialogSnapshot{
		ID:             s.id,
		State:          s.state,
		Action:         s.batch.Action.Name,
		BatchState:     s.batch.State,
		SubmitEnabled:  submitEnabled,
		TransportError: s.transportError,
		Recipients:     recipients,
	}
}
