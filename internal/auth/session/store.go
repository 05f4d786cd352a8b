// Package session holds the single in-memory auth state read by the rest of
// the app. It carries no business logic and does no I/O; every mutation is a
// whole-state replacement committed by the lifecycle coordinator.
package session

import (
	"sync"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
)

type Store struct {
	mu               sync.RWMutex
	session          domain.Session
	capability       domain.BiometricCapability
	biometricEnabled bool
	subs             map[int]chan domain.Session
	nextSub          int
}

func NewStore() *Store {
	return &Store{
		session: domain.UninitializedSession(),
		subs:    make(map[int]chan domain.Session),
	}
}

// Session returns a copy of the current session. Observers never see a
// half-applied transition.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// Set replaces the session in one step and notifies subscribers.
func (s *Store) Set(next domain.Session) {
	s.mu.Lock()
	s.session = next.Clone()
	snap := s.session.Clone()
	subs := make([]chan domain.Session, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		// Latest-wins: a slow observer keeps only the newest snapshot.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// Biometric returns the capability derived at startup and the enabled flag.
func (s *Store) Biometric() (domain.BiometricCapability, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capability, s.biometricEnabled
}

func (s *Store) SetBiometric(capability domain.BiometricCapability, enabled bool) {
	s.mu.Lock()
	s.capability = capability
	s.biometricEnabled = enabled
	s.mu.Unlock()
}

func (s *Store) SetBiometricEnabled(enabled bool) {
	s.mu.Lock()
	s.biometricEnabled = enabled
	s.mu.Unlock()
}

// Subscribe registers an observer channel carrying session snapshots. The
// returned cancel func must be called when the observer goes away.
func (s *Store) Subscribe() (<-chan domain.Session, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan domain.Session, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}
