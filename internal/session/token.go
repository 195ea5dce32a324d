package session

import "net/url"

// TokenProvider reads the anti-forgery token from the Store.
type TokenProvider struct {
	store *Store
	name  string
}

// NewTokenProvider creates a provider for the cookie named name
// (csrftoken by default on the backend).
func NewTokenProvider(store *Store, name string) *TokenProvider {
	return &TokenProvider{store: store, name: name}
}

// Token returns the percent-decoded token, or false when none is stored.
// Callers omit the header when the token is absent.
func (p *TokenProvider) Token() (string, bool) {
	raw, ok := p.store.Get(p.name)
	if !ok || raw == "" {
		return "", false
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v, true
	}
	return raw, true
}
