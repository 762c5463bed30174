package firebase

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/signadot/rtdbview/debug"
	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
)

// DB is a Realtime Database REST client authenticated with an id token.
type DB struct {
	base    string
	idToken string
	t       *transport
}

func NewDB(baseURL, idToken string, opts ...Option) (*DB, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrNoDatabase
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &DB{base: baseURL, idToken: idToken, t: newTransport(opts)}, nil
}

// URL returns the REST url of path. An empty path, or "/", addresses the
// root. Segments are path escaped; an empty id token adds no auth
// parameter.
func (db *DB) URL(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	u := db.base + strings.Join(segs, "/") + ".json"
	if db.idToken != "" {
		u += "?auth=" + url.QueryEscape(db.idToken)
	}
	return u
}

// Get returns the raw JSON text at path.
func (db *DB) Get(ctx context.Context, path string) ([]byte, error) {
	return db.t.do(ctx, "RealtimeDB GET", http.MethodGet, db.URL(path), nil)
}

// GetNode fetches path and parses it leniently. The node is nil when the
// response is not JSON.
func (db *DB) GetNode(ctx context.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := db.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Put replaces the value at path with node.
func (db *DB) Put(ctx context.Context, path string, node *ir.Node) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return err
	}
	_, err := db.t.do(ctx, "RealtimeDB PUT", http.MethodPut, db.URL(path), buf.Bytes())
	return err
}

// Increment adds delta to the integer at path and returns the new value.
// A missing or non integer value counts as 0. It is a read then a write,
// so concurrent increments of the same path may be lost.
func (db *DB) Increment(ctx context.Context, path string, delta int64) (int64, error) {
	d, err := db.Get(ctx, path)
	if err != nil {
		return 0, err
	}
	cur := readInt(d)
	next := cur + delta
	if debug.Track() {
		debug.Logf("increment %s: %d -> %d\n", path, cur, next)
	}
	if err := db.Put(ctx, path, ir.FromInt(next)); err != nil {
		return 0, err
	}
	return next, nil
}

func readInt(d []byte) int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(string(d)), 10, 64)
	if err != nil {
		return 0
	}
	return i
}
