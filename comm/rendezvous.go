package comm

import "sync"

// rendezvous is an N-way barrier that also carries a payload: every
// participant deposits a value, the last arrival computes a single
// combined result from all N payloads, and every participant (including
// the last arrival) receives that same result before the barrier opens
// for its next use.
//
// Every World-level collective (window create, scatter, gather,
// broadcast) and every Window's Fence and Free reuses one rendezvous across
// repeated calls. Reuse is safe only because callers are SPMD: the k-th
// call to a given collective happens, on every rank, in the same
// program order, so the k-th arrival at this rendezvous always belongs
// to the same logical operation.
type rendezvous struct {
	n int

	mu       sync.Mutex
	cond     *sync.Cond
	gen      int
	arrived  int
	payloads []any
	result   any
}

func newRendezvous(n int) *rendezvous {
	r := &rendezvous{n: n, payloads: make([]any, n)}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// join deposits payload for rank and blocks until all n ranks have
// joined this generation. combine runs exactly once, on whichever
// goroutine is last to arrive, over payloads ordered by rank; its
// return value is handed back to every participant.
func (r *rendezvous) join(rank int, payload any, combine func(payloads []any) any) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	myGen := r.gen
	r.payloads[rank] = payload
	r.arrived++

	if r.arrived == r.n {
		r.result = combine(r.payloads)
		r.payloads = make([]any, r.n)
		r.arrived = 0
		r.gen++
		r.cond.Broadcast()
		return r.result
	}

	for r.gen == myGen {
		r.cond.Wait()
	}
	return r.result
}
