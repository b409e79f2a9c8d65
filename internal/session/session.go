// Package session keeps per-browser provider selections server-side.
// The cookie carries only an opaque id; API keys never leave the process.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

// CookieName is the cookie holding the session id.
const CookieName = "session_id"

// Data is what a session remembers between requests.
type Data struct {
	Provider string
	APIKey   string
}

// Store is an in-memory, TTL-bounded session store.
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Store{cache: cache.New(ttl, cleanup), ttl: ttl}
}

func (s *Store) Get(id string) (Data, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return Data{}, false
	}
	d, ok := v.(Data)
	return d, ok
}

// Save stores d under id and refreshes its expiry.
func (s *Store) Save(id string, d Data) {
	s.cache.Set(id, d, cache.DefaultExpiration)
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

// Load returns the session attached to r, if any.
func (s *Store) Load(r *http.Request) (Data, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Data{}, false
	}
	return s.Get(c.Value)
}

// Ensure returns the session id for r, issuing a new cookie when the request
// has none or its session has expired.
func (s *Store) Ensure(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if _, ok := s.Get(c.Value); ok {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
