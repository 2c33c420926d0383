package form

import "github.com/mmynk/tipsplitter/internal/calculator"

// Listener is called with the new snapshot after every dispatch.
type Listener func(Snapshot)

// Store owns the form state. It is not safe for concurrent use; all
// dispatches are expected to come from the UI's event loop.
type Store struct {
	reduce    Reducer
	snapshot  Snapshot
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithState starts the store from s instead of Default().
func WithState(s State) Option {
	return func(st *Store) {
		st.snapshot.State = s
	}
}

// WithMiddleware wraps the reducer. The first middleware given runs
// outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(st *Store) {
		for i := len(mw) - 1; i >= 0; i-- {
			st.reduce = mw[i](st.reduce)
		}
	}
}

// NewStore creates a store holding the default launch state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		reduce:   Reduce,
		snapshot: Snapshot{State: Default()},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshot = derive(s.snapshot.State)
	return s
}

// Snapshot returns the current state and split.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// Dispatch applies e, recomputes the split and notifies every listener in
// subscription order. It returns the new snapshot.
func (s *Store) Dispatch(e Event) Snapshot {
	s.snapshot = derive(s.reduce(s.snapshot.State, e))
	for _, sub := range s.listeners {
		sub.fn(s.snapshot)
	}
	return s.snapshot
}

// Subscribe registers l and returns a func that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				// Copy so a dispatch ranging over the old slice is unaffected.
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func derive(st State) Snapshot {
	return Snapshot{
		State: st,
		Split: calculator.CalculateTip(st.Amount, st.PartySize, st.TipRate),
	}
}
