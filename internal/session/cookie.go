package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName   = "endoclin_admin"
	namespaceKey = "sid"
)

// Identity issues each browser a random namespace id inside a signed cookie.
type Identity struct {
	store sessions.Store
}

func NewIdentity(secret []byte, secure bool) *Identity {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Identity{store: store}
}

// Namespace returns the caller's namespace, minting and saving a new one when the
// cookie is missing or fails verification.
func (i *Identity) Namespace(w http.ResponseWriter, r *http.Request) (string, error) {
	// A tampered cookie yields an error together with a fresh session, which is
	// what we want here.
	sess, _ := i.store.Get(r, cookieName)
	if sess == nil {
		var err error
		sess, err = i.store.New(r, cookieName)
		if sess == nil {
			return "", err
		}
	}
	if id, ok := sess.Values[namespaceKey].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[namespaceKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}
