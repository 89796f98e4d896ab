package host

import (
	"sync"
)

type Action interface{}

// Reducer returns the next state of its namespace. It must not mutate state.
type Reducer func(state interface{}, action Action) interface{}

// State is the global client state, one entry per plugin namespace.
type State map[string]interface{}

type Dispatcher interface {
	Dispatch(action Action)

	GetState() State
}

type initAction struct{}

// Store owns the global client state. Dispatch is the only way to change it.
type Store struct {
	mutex    sync.RWMutex
	reducers map[string]Reducer
	state    State
}

func NewStore() *Store {
	return &Store{
		reducers: map[string]Reducer{},
		state:    State{},
	}
}

var _ Dispatcher = (*Store)(nil)

func (s *Store) addReducer(namespace string, reducer Reducer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.reducers[namespace] = reducer
	next := s.copyState()
	next[namespace] = reducer(nil, initAction{})
	s.state = next
}

func (s *Store) Dispatch(action Action) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	next := s.copyState()
	for namespace, reducer := range s.reducers {
		next[namespace] = reducer(s.state[namespace], action)
	}
	s.state = next
}

// GetState returns a copy of the namespace map. Later dispatches never modify
// it and writing to it never reaches the store. Namespace values are shared
// and must be treated as read-only.
func (s *Store) GetState() State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.copyState()
}

func (s *Store) copyState() State {
	next := make(State, len(s.state)+1)
	for k, v := range s.state {
		next[k] = v
	}
	return next
}
