package core

import (
	"time"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/rs/zerolog/log"
)

// Join attaches the connection to the broadcast group and marks the user
// online, creating the member on first join.
func (r *roomImpl) Join(sid SessionID, conn SignalConnection, uid domain.UserID, name string, now time.Time) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	isAdmin := r.room.AdminUserID != "" && uid == r.room.AdminUserID
	m, ok := r.members[uid]
	if !ok {
		m = domain.NewMember(uid, name)
		r.addMemberLocked(m)
	}
	m.Name = name
	m.IsAdmin = isAdmin
	m.IsOnline = true
	m.LastSeen = now

	r.attachLocked(sid, conn, uid)
	r.connRef[uid] = sid
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("sid", string(sid)).Str("user", string(uid)).Bool("admin", isAdmin).Msg("member online")
	return r.publishLocked(), isAdmin
}

// Disconnect removes a closed connection from the broadcast group. The member
// goes offline only if sid was its current connection and no other connection
// of the same user is still attached.
func (r *roomImpl) Disconnect(sid SessionID, uid domain.UserID, now time.Time) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detachLocked(sid)
	m, ok := r.members[uid]
	if !ok || r.connRef[uid] != sid {
		return PublishResult{}, false
	}
	for other, owner := range r.userOf {
		if owner == uid {
			r.connRef[uid] = other
			return PublishResult{}, false
		}
	}
	delete(r.connRef, uid)
	m.IsOnline = false
	m.LastSeen = now
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("sid", string(sid)).Str("user", string(uid)).Msg("member offline")
	return r.publishLocked(), true
}

func (r *roomImpl) Leave(sid SessionID, uid domain.UserID) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detachLocked(sid)
	if !r.removeMemberLocked(uid) {
		return PublishResult{}, false
	}
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("user", string(uid)).Msg("member left")
	return r.publishLocked(), true
}

func (r *roomImpl) Rename(uid domain.UserID, name string, now time.Time) (PublishResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[uid]
	if !ok {
		return PublishResult{}, false
	}
	m.Name = name
	m.LastSeen = now
	return r.publishLocked(), true
}

// Kick removes target on behalf of an admin requester. The target's live
// connection receives a kicked frame; nobody else does.
func (r *roomImpl) Kick(requester, target domain.UserID) (KickResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.members[requester]
	if !ok || !req.IsAdmin {
		return KickResult{}, false
	}
	if _, ok := r.members[target]; !ok {
		return KickResult{}, false
	}

	if sid, ok := r.connRef[target]; ok {
		if conn, ok := r.conns[sid]; ok {
			if frame, err := r.enc.Kicked(); err == nil {
				_ = conn.TrySend(frame)
			}
		}
	}

	var detached []SessionID
	for sid, uid := range r.userOf {
		if uid == target {
			detached = append(detached, sid)
		}
	}
	for _, sid := range detached {
		r.detachLocked(sid)
	}
	r.removeMemberLocked(target)
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("by", string(requester)).Str("user", string(target)).Msg("member kicked")
	return KickResult{PublishResult: r.publishLocked(), Detached: detached}, true
}

func (r *roomImpl) Reap(cutoff time.Time) []domain.UserID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reaped []domain.UserID
	for _, uid := range append([]domain.UserID(nil), r.order...) {
		m := r.members[uid]
		if !m.IsOnline && m.LastSeen.Before(cutoff) {
			r.removeMemberLocked(uid)
			reaped = append(reaped, uid)
		}
	}
	if len(reaped) > 0 {
		log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Int("reaped", len(reaped)).Msg("reaped offline members")
	}
	return reaped
}
