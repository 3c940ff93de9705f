package payments

import "sync"

// Concurrent close-ticket calls for one ticket must not both reach the
// charge step. Each workflow run holds its ticket's mutex end to end.
var ticketLocks = struct {
	sync.Mutex
	m map[uint]*sync.Mutex
}{m: make(map[uint]*sync.Mutex)}

func lockTicket(id uint) func() {
	ticketLocks.Lock()
	mu, ok := ticketLocks.m[id]
	if !ok {
		mu = &sync.Mutex{}
		ticketLocks.m[id] = mu
	}
	ticketLocks.Unlock()

	mu.Lock()
	return mu.Unlock
}
