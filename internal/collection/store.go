// Package collection holds the client-side state of a remote item collection.
//
// A Store is created explicitly, handed to whatever needs it and closed at
// shutdown. All mutations go through Reduce; a call that fails records its
// message in State.Error and leaves the items untouched.
package collection

import (
	"context"
	"errors"
	"sync"

	"itemdeck/internal/domain/item"

	"github.com/rs/zerolog/log"
)

// ErrClosed is the panic value for any use of a Store after Close.
var ErrClosed = errors.New("collection: store used outside its lifetime")

// Remote is the data-access side of the collection.
type Remote interface {
	List(ctx context.Context) ([]item.Item, error)
	Create(ctx context.Context, in item.Item) (item.Item, error)
	Update(ctx context.Context, in item.Item) (item.Item, error)
	Delete(ctx context.Context, id int64) error
}

// Store applies the results of remote calls to a State and notifies
// subscribers. Calls are not serialized: whichever completes last wins.
type Store struct {
	remote Remote

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
	closed  bool
}

// New creates a store over remote.
func New(remote Remote) *Store {
	return &Store{
		remote: remote,
		state:  State{Items: []item.Item{}},
		subs:   make(map[int]func(State)),
	}
}

// Close ends the store's lifetime and drops all subscribers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = nil
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.state
}

// Subscribe registers fn to receive every new state. fn runs on the goroutine
// whose call produced the state. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// FetchAll loads the collection. Loading is true while it runs. A failure is
// also recorded in State.Error, so callers that render from State may ignore
// the returned error.
func (s *Store) FetchAll(ctx context.Context) ([]item.Item, error) {
	s.checkOpen()
	s.dispatch(FetchStarted{})
	items, err := s.remote.List(ctx)
	if err != nil {
		s.fail("fetch", 0, err)
		return nil, err
	}
	s.dispatch(FetchSucceeded{Items: items})
	return items, nil
}

// Create stores a new record and appends it.
func (s *Store) Create(ctx context.Context, in item.Item) (item.Item, error) {
	s.checkOpen()
	created, err := s.remote.Create(ctx, in)
	if err != nil {
		s.fail("create", 0, err)
		return item.Item{}, err
	}
	s.dispatch(ItemAdded{Item: created})
	return created, nil
}

// Update replaces the record with the same id.
func (s *Store) Update(ctx context.Context, in item.Item) (item.Item, error) {
	s.checkOpen()
	updated, err := s.remote.Update(ctx, in)
	if err != nil {
		s.fail("update", in.ID, err)
		return item.Item{}, err
	}
	s.dispatch(ItemUpdated{Item: updated})
	return updated, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.checkOpen()
	if err := s.remote.Delete(ctx, id); err != nil {
		s.fail("delete", id, err)
		return err
	}
	s.dispatch(ItemDeleted{ID: id})
	return nil
}

func (s *Store) fail(op string, id int64, err error) {
	log.Error().Err(err).Str("op", op).Int64("item_id", id).Msg("collection: remote call failed")
	s.dispatch(Failed{Message: err.Error()})
}

// dispatch drops events that arrive after Close, so a call still in flight
// at shutdown completes quietly.
func (s *Store) dispatch(e Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = Reduce(s.state, e)
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

func (s *Store) checkOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
}

// mustBeOpen expects s.mu to be held by a deferred unlock.
func (s *Store) mustBeOpen() {
	if s.closed {
		panic(ErrClosed)
	}
}
