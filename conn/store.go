// Package conn tracks the connections a dissector has seen, keyed by
// controller connection handle.
package conn

import "sync"

// Conn is one known connection. Local and Peer are the device addresses the
// attribute databases are stored under.
type Conn struct {
	Handle uint16
	Local  string
	Peer   string

	data    interface{}
	destroy func(interface{})
}

// Data returns the per-connection state attached with SetData
func (c *Conn) Data() interface{} {
	return c.data
}

// SetData attaches state to the connection. destroy, if non-nil, runs once
// when the connection is closed.
func (c *Conn) SetData(v interface{}, destroy func(interface{})) {
	c.data = v
	c.destroy = destroy
}

func (c *Conn) release() {
	if c.destroy != nil {
		c.destroy(c.data)
	}
	c.data = nil
	c.destroy = nil
}

// Store holds open connections
type Store struct {
	mu    sync.RWMutex
	conns map[uint16]*Conn
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{conns: make(map[uint16]*Conn)}
}

// Open registers a connection. Reopening a handle releases the state of the
// previous connection first.
func (s *Store) Open(handle uint16, local, peer string) *Conn {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, exists := s.conns[handle]; exists {
		old.release()
	}
	c := &Conn{Handle: handle, Local: local, Peer: peer}
	s.conns[handle] = c
	return c
}

// Get returns the connection for handle, or nil if none is open
func (s *Store) Get(handle uint16) *Conn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conns[handle]
}

// Close forgets a connection and runs its destroy hook
func (s *Store) Close(handle uint16) {
	s.mu.Lock()
	c, exists := s.conns[handle]
	delete(s.conns, handle)
	s.mu.Unlock()

	if exists {
		c.release()
	}
}

// Len returns the number of open connections
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conns)
}
