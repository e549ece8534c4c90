package memory

import (
	"ad-compliance-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions are never expired in-process; the cache is used as a
	// concurrency-safe keyed map.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func sessionKey(appName, userID, sessionID string) string {
	return appName + "/" + userID + "/" + sessionID
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(sessionKey(session.AppName, session.UserID, session.ID), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(appName, userID, sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionKey(appName, userID, sessionID)); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the session for the key, creating an empty one on first
// reference.
func (r *SessionRepository) GetOrCreate(appName, userID, sessionID string) *store.Session {
	if session, found := r.Get(appName, userID, sessionID); found {
		return session
	}
	session := store.NewSession(appName, userID, sessionID)
	r.Save(session)
	return session
}

func (r *SessionRepository) Delete(appName, userID, sessionID string) {
	r.cache.Delete(sessionKey(appName, userID, sessionID))
}
