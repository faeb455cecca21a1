package api

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mobile-wallet/internal/wallet/send"
)

var ErrSessionNotFound = errors.New("send session not found")

type session struct {
	ctrl     *send.Controller
	lastSeen time.Time
}

// SessionStore keeps the open send flows of the HTTP API, keyed by flow ID.
// Flows not accessed for idleTimeout are closed by Sweep.
type SessionStore struct {
	mu          sync.RWMutex
	flows       map[string]*session
	idleTimeout time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

// NewSessionStore creates a store; idleTimeout <= 0 keeps flows until they are removed.
func NewSessionStore(idleTimeout time.Duration) *SessionStore {
	return &SessionStore{
		flows:       make(map[string]*session),
		idleTimeout: idleTimeout,
		stop:        make(chan struct{}),
	}
}

func (s *SessionStore) Add(ctrl *send.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[ctrl.ID()] = &session{ctrl: ctrl, lastSeen: time.Now()}
}

// Get returns the flow and marks it as used.
func (s *SessionStore) Get(id string) (*send.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.flows[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id=%s", id)
	}
	sess.lastSeen = time.Now()

	return sess.ctrl, nil
}

// Remove closes and forgets the flow.
func (s *SessionStore) Remove(id string) error {
	s.mu.Lock()
	sess, ok := s.flows[id]
	delete(s.flows, id)
	s.mu.Unlock()

	if !ok {
		return errors.Wrapf(ErrSessionNotFound, "id=%s", id)
	}
	sess.ctrl.Close()

	return nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}

// Sweep closes and removes the flows idle since before now minus the idle
// timeout and returns how many were removed.
func (s *SessionStore) Sweep(now time.Time) int {
	if s.idleTimeout <= 0 {
		return 0
	}

	s.mu.Lock()
	var expired []*send.Controller
	for id, sess := range s.flows {
		if now.Sub(sess.lastSeen) > s.idleTimeout {
			expired = append(expired, sess.ctrl)
			delete(s.flows, id)
		}
	}
	s.mu.Unlock()

	for _, ctrl := range expired {
		ctrl.Close()
		log.Debug().Str("flow_id", ctrl.ID()).Msg("Closed idle send flow")
	}

	return len(expired)
}

// StartSweeping runs Sweep every interval until CloseAll is called.
func (s *SessionStore) StartSweeping(interval time.Duration) {
	if s.idleTimeout <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case now := <-ticker.C:
				s.Sweep(now)
			}
		}
	}()
}

// CloseAll stops sweeping, closes every flow and waits for their pending work.
func (s *SessionStore) CloseAll() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	flows := s.flows
	s.flows = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range flows {
		sess.ctrl.Close()
	}
	for id, sess := range flows {
		sess.ctrl.Wait()
		log.Debug().Str("flow_id", id).Msg("Send flow closed")
	}
}
