// Package connectivity holds the device-wide offline switch consulted
// before every remote attempt.
package connectivity

import "sync/atomic"

// Policy is a single externally-toggleable offline flag. Repositories only
// read it; the API (or the device shell) flips it.
type Policy struct {
	offline atomic.Bool
}

// NewPolicy returns a policy, optionally starting in offline mode.
func NewPolicy(offline bool) *Policy {
	p := &Policy{}
	p.offline.Store(offline)
	return p
}

func (p *Policy) Online() bool {
	return !p.offline.Load()
}

func (p *Policy) SetOffline(offline bool) {
	p.offline.Store(offline)
}
