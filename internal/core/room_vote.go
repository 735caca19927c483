package core

import "github.com/dkeye/Poker/internal/domain"

// Vote overwrites the caller's vote. Allowed in either phase.
func (r *roomImpl) Vote(uid domain.UserID, v domain.Vote) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[uid]
	if !ok {
		return PublishResult{}, false
	}
	m.Vote = v
	m.HasVoted = true
	return r.publishLocked(), true
}

// Reveal settles every pending pair once, then switches to the revealed phase.
// Any member may reveal.
func (r *roomImpl) Reveal(uid domain.UserID) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[uid]; !ok {
		return PublishResult{}, false
	}
	for _, id := range r.order {
		m := r.members[id]
		m.Vote = m.Vote.Resolve(r.pick)
	}
	r.reveal = true
	return r.publishLocked(), true
}

// Reset starts a new round. Membership, names and admin flags are kept.
func (r *roomImpl) Reset(uid domain.UserID) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[uid]; !ok {
		return PublishResult{}, false
	}
	r.reveal = false
	for _, m := range r.members {
		m.Vote = domain.NoVote()
		m.HasVoted = false
	}
	return r.publishLocked(), true
}
