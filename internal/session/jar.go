package session

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

// Jar is an http.CookieJar that keeps the backend's cookies in a Store.
// Cookies for any other host are ignored.
type Jar struct {
	store *Store
	host  string
	now   func() time.Time
	log   *slog.Logger
}

// NewJar creates a Jar scoped to the host of baseURL.
func NewJar(store *Store, baseURL *url.URL, logger *slog.Logger) *Jar {
	return &Jar{
		store: store,
		host:  strings.ToLower(baseURL.Hostname()),
		now:   time.Now,
		log:   logger.With("component", "session_jar"),
	}
}

// SetCookies records cookies set by the backend and persists the store.
// Expired or deleted cookies remove their key.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if !j.matches(u) || len(cookies) == 0 {
		return
	}

	now := j.now()
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		if c.MaxAge < 0 || (!c.Expires.IsZero() && !c.Expires.After(now)) {
			j.store.Delete(c.Name)
			continue
		}
		j.store.Set(c.Name, c.Value)
	}

	if err := j.store.Save(); err != nil {
		j.log.Warn("persist session cookies", slog.String("error", err.Error()))
	}
}

// Cookies returns the stored cookies for requests to the backend host,
// sorted by name.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	if !j.matches(u) {
		return nil
	}

	entries := j.store.All()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	cookies := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: entries[name]})
	}
	return cookies
}

func (j *Jar) matches(u *url.URL) bool {
	return u != nil && strings.EqualFold(u.Hostname(), j.host)
}
