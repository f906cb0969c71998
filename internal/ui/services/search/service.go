package search

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"activityfinder/internal/domain"
	"activityfinder/internal/ui/services/events"
)

// Service orchestrates searches: it validates input, dispatches provider
// calls as tea.Cmds and applies their results to State. All methods must be
// called from the Bubble Tea Update goroutine.
type Service struct {
	provider Provider
	bus      events.EventBus
	logger   *zap.SugaredLogger
	opts     Options
	baseCtx  context.Context

	state    State
	query    string
	location string
	filters  domain.FilterSet

	lastDispatched *domain.SearchCriteria
	seq            uint64 // sequence number of the newest dispatch
	inFlight       int
	cancelLatest   context.CancelFunc
	pendingFilters bool
	debounceID     uint64
}

// NewService creates a new search service. bus and logger may be nil.
func NewService(provider Provider, bus events.EventBus, logger *zap.SugaredLogger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		provider: provider,
		bus:      events.OrNull(bus),
		logger:   logger.Named("search"),
		opts:     opts,
		baseCtx:  context.Background(),
	}
}

// SetBaseContext sets the parent context of every provider call
func (s *Service) SetBaseContext(ctx context.Context) {
	if ctx != nil {
		s.baseCtx = ctx
	}
}

// SetQuery updates the free-text query without dispatching
func (s *Service) SetQuery(q string) {
	s.query = q
}

// SetLocation updates the location without dispatching
func (s *Service) SetLocation(l string) {
	s.location = l
}

// Current returns the criteria built from the current query, location and filters
func (s *Service) Current() domain.SearchCriteria {
	return domain.SearchCriteria{
		Query:    s.query,
		Location: s.location,
		Filters:  s.filters,
	}
}

// SubmitCurrent submits the current criteria
func (s *Service) SubmitCurrent() tea.Cmd {
	return s.Submit(s.Current())
}

// Submit validates criteria and dispatches a provider call. A validation
// failure moves to the error state and returns nil.
func (s *Service) Submit(criteria domain.SearchCriteria) tea.Cmd {
	if err := criteria.Validate(); err != nil {
		var verr *domain.ValidationError
		msg := err.Error()
		if errors.As(err, &verr) {
			msg = verr.UserMessage()
		}

		if s.opts.Policy == LatestDispatchWins {
			// the failed submission is now the newest intent
			s.cancelInflight()
			s.seq++
		}
		s.pendingFilters = false
		s.debounceID++

		s.state.Status = StatusError
		s.state.ErrorMessage = msg
		s.state.Activities = nil

		s.logger.Debugw("search rejected", "error", err)
		s.bus.Publish(domain.SearchFailedEvent{
			Kind:    domain.FailureValidation,
			Message: msg,
			Err:     err,
		})
		return nil
	}

	return s.dispatch(criteria)
}

// Retry re-submits the last dispatched criteria, if any
func (s *Service) Retry() tea.Cmd {
	if s.lastDispatched == nil {
		return nil
	}
	return s.Submit(*s.lastDispatched)
}

// QuickSearch sets query and location and dispatches them together with the
// current filters in the same step.
func (s *Service) QuickSearch(query, location string) tea.Cmd {
	s.query = query
	s.location = location
	s.bus.Publish(domain.QuickSearchRequestedEvent{Query: query, Location: location})
	return s.Submit(s.Current())
}

// UpdateFilters stores filters and re-dispatches when a search has already
// run. Changes made while Loading are queued when QueueWhileLoading is set.
func (s *Service) UpdateFilters(filters domain.FilterSet) tea.Cmd {
	s.filters = filters

	if !s.state.HasSearchedOnce {
		return nil
	}

	if s.state.Status == StatusLoading {
		if s.opts.QueueWhileLoading {
			s.pendingFilters = true
			s.logger.Debugw("filter change queued while loading", "filters", filters.String())
		}
		return nil
	}

	if s.opts.FilterDebounce > 0 {
		return s.startDebounce()
	}

	return s.Submit(s.Current())
}

// HandleDebounce dispatches if msg belongs to the newest debounce window
func (s *Service) HandleDebounce(msg DebounceMsg) tea.Cmd {
	if msg.ID != s.debounceID {
		return nil
	}
	if s.state.Status == StatusLoading {
		if s.opts.QueueWhileLoading {
			s.pendingFilters = true
		}
		return nil
	}
	return s.Submit(s.Current())
}

// HandleResult applies a provider response according to the policy.
// The returned command dispatches a queued filter change, if any.
func (s *Service) HandleResult(msg ResultMsg) tea.Cmd {
	if s.inFlight > 0 {
		s.inFlight--
	}

	if s.opts.Policy == LatestDispatchWins && msg.Seq != s.seq {
		s.logger.Debugw("discarding stale response", "seq", msg.Seq, "newest", s.seq)
		s.bus.Publish(domain.SearchDiscardedEvent{Seq: msg.Seq, Newest: s.seq})
		return s.flushPending()
	}

	if msg.Err != nil {
		kind := domain.ClassifyFailure(msg.Err)
		s.state.Status = StatusError
		s.state.ErrorMessage = domain.GenericErrorMessage
		s.state.Activities = nil

		s.logger.Warnw("search failed", "seq", msg.Seq, "kind", kind.String(), "error", msg.Err)
		s.bus.Publish(domain.SearchFailedEvent{
			Seq:     msg.Seq,
			Kind:    kind,
			Message: domain.GenericErrorMessage,
			Err:     msg.Err,
		})
	} else {
		activities := msg.Activities
		if activities == nil {
			activities = []domain.Activity{}
		}
		s.state.Status = StatusSuccess
		s.state.ErrorMessage = ""
		s.state.Activities = activities

		s.logger.Infow("search succeeded", "seq", msg.Seq, "count", len(activities))
		s.bus.Publish(domain.SearchSucceededEvent{Seq: msg.Seq, Count: len(activities)})
	}

	if msg.Seq == s.seq {
		s.cancelLatest = nil
	}
	return s.flushPending()
}

// Cancel aborts any in-flight request. Its response is still delivered,
// as a cancellation error.
func (s *Service) Cancel() {
	s.cancelInflight()
}

// State returns a copy of the request state
func (s *Service) State() State {
	st := s.state
	if s.state.Activities != nil {
		st.Activities = make([]domain.Activity, len(s.state.Activities))
		copy(st.Activities, s.state.Activities)
	}
	return st
}

// Activities returns the current results without copying. Callers must not modify it.
func (s *Service) Activities() []domain.Activity {
	return s.state.Activities
}

// Query returns the current query text
func (s *Service) Query() string { return s.query }

// Location returns the current location text
func (s *Service) Location() string { return s.location }

// Filters returns the current filter set
func (s *Service) Filters() domain.FilterSet { return s.filters }

// LastDispatched returns the criteria of the newest dispatch
func (s *Service) LastDispatched() (domain.SearchCriteria, bool) {
	if s.lastDispatched == nil {
		return domain.SearchCriteria{}, false
	}
	return *s.lastDispatched, true
}

// InFlight is the number of dispatched requests without a handled response
func (s *Service) InFlight() int { return s.inFlight }

// Seq is the sequence number of the newest dispatch
func (s *Service) Seq() uint64 { return s.seq }

// Policy returns the configured response policy
func (s *Service) Policy() Policy { return s.opts.Policy }

func (s *Service) dispatch(criteria domain.SearchCriteria) tea.Cmd {
	if s.opts.Policy == LatestDispatchWins {
		s.cancelInflight()
	}

	s.seq++
	seq := s.seq
	s.inFlight++
	s.pendingFilters = false
	// a direct dispatch supersedes any pending debounce window
	s.debounceID++

	c := criteria
	s.lastDispatched = &c
	// the dispatched criteria become the ones later filter changes build on
	s.query = criteria.Query
	s.location = criteria.Location
	s.filters = criteria.Filters

	s.state.Status = StatusLoading
	s.state.HasSearchedOnce = true
	s.state.ErrorMessage = ""

	ctx, cancel := s.requestContext()
	s.cancelLatest = cancel

	s.logger.Infow("dispatching search",
		"seq", seq,
		"query", criteria.Query,
		"location", criteria.Location,
		"filters", criteria.Filters.String(),
	)
	s.bus.Publish(domain.SearchDispatchedEvent{Seq: seq, Criteria: criteria})

	p := s.provider
	return func() tea.Msg {
		defer cancel()
		activities, err := p.Search(ctx, criteria)
		return ResultMsg{
			Seq:        seq,
			Criteria:   criteria,
			Activities: activities,
			Err:        err,
		}
	}
}

func (s *Service) requestContext() (context.Context, context.CancelFunc) {
	if s.opts.RequestTimeout > 0 {
		return context.WithTimeout(s.baseCtx, s.opts.RequestTimeout)
	}
	return context.WithCancel(s.baseCtx)
}

// cancelInflight cancels the newest in-progress request context
func (s *Service) cancelInflight() {
	if s.cancelLatest != nil {
		s.cancelLatest()
		s.cancelLatest = nil
	}
}

func (s *Service) startDebounce() tea.Cmd {
	s.debounceID++
	id := s.debounceID
	return tea.Tick(s.opts.FilterDebounce, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

func (s *Service) flushPending() tea.Cmd {
	if !s.pendingFilters || s.state.Status == StatusLoading {
		return nil
	}
	s.pendingFilters = false
	s.logger.Debugw("dispatching queued filter change", "filters", s.filters.String())
	return s.Submit(s.Current())
}
