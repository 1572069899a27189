// Package session tracks the live SSH play sessions of a server.
package session

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrFull is returned by Register when the server is at capacity.
var ErrFull = errors.New("session: server is full")

// ID uniquely identifies a session.
type ID string

// Info describes a connected player.
type Info struct {
	ID      ID
	User    string
	Remote  string
	Started time.Time
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]Info
	max      int
}

// NewRegistry creates a registry holding at most limit sessions; 0 means unlimited.
func NewRegistry(limit int) *Registry {
	return &Registry{
		sessions: make(map[ID]Info),
		max:      limit,
	}
}

// Register adds a session. It fails with ErrFull at capacity.
func (r *Registry) Register(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[info.ID]; !exists && r.max > 0 && len(r.sessions) >= r.max {
		return ErrFull
	}
	r.sessions[info.ID] = info
	return nil
}

// Unregister removes a session. Unknown IDs are ignored.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	list := make([]Info, 0, len(r.sessions))
	for _, info := range r.sessions {
		list = append(list, info)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Started.Equal(list[j].Started) {
			return list[i].ID < list[j].ID
		}
		return list[i].Started.Before(list[j].Started)
	})
	return list
}
