package firebase

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
	"github.com/zalando/go-keyring"
)

const KeyringService = "rtdbview"

// Session is what a sign in leaves behind in the keyring.
type Session struct {
	Email        string
	IDToken      string
	RefreshToken string
	LocalID      string
	SignedIn     time.Time
	ExpiresIn    string
}

func NewSession(res *IdpResponse, signedIn time.Time) *Session {
	return &Session{
		Email:        res.Email,
		IDToken:      res.IDToken,
		RefreshToken: res.RefreshToken,
		LocalID:      res.LocalID,
		SignedIn:     signedIn,
		ExpiresIn:    res.ExpiresIn,
	}
}

// Expired reports whether the id token has expired at now. A session
// without a known lifetime never expires.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresIn == "" {
		return false
	}
	r := &IdpResponse{ExpiresIn: s.ExpiresIn}
	return !now.Before(r.Expiry(s.SignedIn))
}

// TokenStore keeps one Session per email in the OS keyring.
type TokenStore struct {
	Service string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{Service: KeyringService}
}

func (ts *TokenStore) Save(s *Session) error {
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("cannot store a session without an email")
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "email", Val: ir.FromString(s.Email)},
		{Key: "idToken", Val: ir.FromString(s.IDToken)},
		{Key: "refreshToken", Val: ir.FromString(s.RefreshToken)},
		{Key: "localId", Val: ir.FromString(s.LocalID)},
		{Key: "signedIn", Val: ir.FromString(s.SignedIn.UTC().Format(time.RFC3339Nano))},
		{Key: "expiresIn", Val: ir.FromString(s.ExpiresIn)},
	})
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return err
	}
	return keyring.Set(ts.Service, s.Email, buf.String())
}

func (ts *TokenStore) Load(email string) (*Session, error) {
	v, err := keyring.Get(ts.Service, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("%w as %s", ErrNotSignedIn, email)
	}
	if err != nil {
		return nil, err
	}
	node, err := parse.ParseString(v, parse.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: stored session: %w", ErrBadResponse, err)
	}
	s := &Session{
		Email:        stringField(node, "email"),
		IDToken:      stringField(node, "idToken"),
		RefreshToken: stringField(node, "refreshToken"),
		LocalID:      stringField(node, "localId"),
		ExpiresIn:    stringField(node, "expiresIn"),
	}
	if t := stringField(node, "signedIn"); t != "" {
		s.SignedIn, err = time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return nil, fmt.Errorf("%w: stored session time: %w", ErrBadResponse, err)
		}
	}
	if s.IDToken == "" {
		return nil, fmt.Errorf("%w as %s", ErrNotSignedIn, email)
	}
	return s, nil
}

// Delete forgets the session for email. Forgetting a missing session is
// not an error.
func (ts *TokenStore) Delete(email string) error {
	err := keyring.Delete(ts.Service, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
