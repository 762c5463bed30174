package firebase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
)

const SignInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// IdpResponse is the part of the sign in response the viewer uses.
type IdpResponse struct {
	IDToken      string
	RefreshToken string
	ExpiresIn    string
	LocalID      string
	Email        string
}

// Expiry returns when the id token expires given when it was issued.
// An unparsable ExpiresIn yields issued.
func (r *IdpResponse) Expiry(issued time.Time) time.Time {
	secs, err := strconv.ParseInt(r.ExpiresIn, 10, 64)
	if err != nil {
		return issued
	}
	return issued.Add(time.Duration(secs) * time.Second)
}

type Auth struct {
	Endpoint string
	t        *transport
}

func NewAuth(opts ...Option) *Auth {
	return &Auth{Endpoint: SignInURL, t: newTransport(opts)}
}

// SignIn signs in with SignInURL and default options.
func SignIn(ctx context.Context, apiKey, email, password string) (*IdpResponse, error) {
	return NewAuth().SignIn(ctx, apiKey, email, password)
}

func (a *Auth) SignIn(ctx context.Context, apiKey, email, password string) (*IdpResponse, error) {
	payload := ir.FromKeyVals([]ir.KeyVal{
		{Key: "email", Val: ir.FromString(email)},
		{Key: "password", Val: ir.FromString(password)},
		{Key: "returnSecureToken", Val: ir.FromBool(true)},
	})
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(payload, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	u := a.Endpoint + "?key=" + url.QueryEscape(apiKey)
	d, err := a.t.do(ctx, "sign in", http.MethodPost, u, buf.Bytes())
	if err != nil {
		return nil, err
	}
	return decodeIdpResponse(d)
}

func decodeIdpResponse(d []byte) (*IdpResponse, error) {
	node, _ := parse.Parse(d)
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: sign in returned %q", ErrBadResponse, truncate(d, 64))
	}
	res := &IdpResponse{
		IDToken:      stringField(node, "idToken"),
		RefreshToken: stringField(node, "refreshToken"),
		ExpiresIn:    stringField(node, "expiresIn"),
		LocalID:      stringField(node, "localId"),
		Email:        stringField(node, "email"),
	}
	if res.IDToken == "" {
		return nil, ErrNoToken
	}
	return res, nil
}

func stringField(node *ir.Node, field string) string {
	v := ir.Get(node, field)
	if v == nil || v.Type != ir.StringType {
		return ""
	}
	return v.String
}

func truncate(d []byte, n int) string {
	if len(d) <= n {
		return string(d)
	}
	return string(d[:n]) + "..."
}
