package firebase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rtdbview/ir"
)

// fakeDB serves an in memory path -> raw JSON map over the RTDB REST shape.
type fakeDB struct {
	mu     sync.Mutex
	data   map[string]string
	auth   []string
	fail   int
	status int
}

func (f *fakeDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.URL.Query().Get("auth"))
	if f.fail > 0 {
		f.fail--
		w.WriteHeader(f.status)
		io.WriteString(w, `{"error":"try again"}`)
		return
	}
	if !strings.HasSuffix(r.URL.Path, ".json") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
	switch r.Method {
	case http.MethodGet:
		v, ok := f.data[key]
		if !ok {
			v = "null"
		}
		io.WriteString(w, v)
	case http.MethodPut:
		d, _ := io.ReadAll(r.Body)
		f.data[key] = string(d)
		w.Write(d)
	}
}

func newFakeDB(t *testing.T, data map[string]string) (*fakeDB, *DB) {
	t.Helper()
	f := &fakeDB{data: data}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	db, err := NewDB(srv.URL, "tok en", WithBackoff(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	return f, db
}

func TestURL(t *testing.T) {
	db, err := NewDB("https://x.firebaseio.com", "a+b")
	if err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]string{
		"":             "https://x.firebaseio.com/.json?auth=a%2Bb",
		"/":            "https://x.firebaseio.com/.json?auth=a%2Bb",
		"players":      "https://x.firebaseio.com/players.json?auth=a%2Bb",
		"/players/p1":  "https://x.firebaseio.com/players/p1.json?auth=a%2Bb",
		"zones/zone a": "https://x.firebaseio.com/zones/zone%20a.json?auth=a%2Bb",
	} {
		if got := db.URL(path); got != want {
			t.Errorf("URL(%q) = %s, want %s", path, got, want)
		}
	}
	anon, _ := NewDB("https://x.firebaseio.com/", "")
	if got := anon.URL("a"); got != "https://x.firebaseio.com/a.json" {
		t.Errorf("anonymous URL %s", got)
	}
	if _, err := NewDB("  ", "t"); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("got %v, want ErrNoDatabase", err)
	}
}

func TestGetPut(t *testing.T) {
	f, db := newFakeDB(t, map[string]string{"players": `{"p1":{"score":3}}`})
	ctx := context.Background()
	node, err := db.GetNode(ctx, "/players")
	if err != nil {
		t.Fatal(err)
	}
	score := ir.Get(ir.Get(node, "p1"), "score")
	if !score.IsInt() || *score.Int64 != 3 {
		t.Errorf("got %v", score)
	}
	if err := db.Put(ctx, "sessions/u/isOnline", ir.FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("true", f.data["sessions/u/isOnline"]); diff != "" {
		t.Errorf("stored (-want +got):\n%s", diff)
	}
	for _, a := range f.auth {
		if a != "tok en" {
			t.Errorf("auth %q", a)
		}
	}
}

func TestIncrement(t *testing.T) {
	f, db := newFakeDB(t, map[string]string{"zones/z1/visits": "4", "bad": `"x"`})
	ctx := context.Background()
	n, err := db.Increment(ctx, "zones/z1/visits", 1)
	if err != nil || n != 5 {
		t.Errorf("got %d, %v", n, err)
	}
	if f.data["zones/z1/visits"] != "5" {
		t.Errorf("stored %q", f.data["zones/z1/visits"])
	}
	if n, _ := db.Increment(ctx, "zones/new/visits", 1); n != 1 {
		t.Errorf("missing value: got %d", n)
	}
	if n, _ := db.Increment(ctx, "bad", 7); n != 7 {
		t.Errorf("non integer value: got %d", n)
	}
}

func TestRetry(t *testing.T) {
	f, db := newFakeDB(t, map[string]string{"a": "1"})
	f.fail, f.status = 2, http.StatusServiceUnavailable
	d, err := db.Get(context.Background(), "a")
	if err != nil || string(d) != "1" {
		t.Errorf("got %q, %v", d, err)
	}

	f.fail, f.status = 1, http.StatusUnauthorized
	_, err = db.Get(context.Background(), "a")
	var se *StatusErr
	if !errors.As(err, &se) || se.Code != http.StatusUnauthorized || se.Message != "try again" {
		t.Errorf("got %v", err)
	}
	if f.fail != 0 {
		t.Errorf("non temporary status was retried")
	}
}

func TestRetryExhausted(t *testing.T) {
	f, db := newFakeDB(t, nil)
	f.fail, f.status = 10, http.StatusInternalServerError
	_, err := db.Get(context.Background(), "a")
	var se *StatusErr
	if !errors.As(err, &se) || !se.Temporary() {
		t.Errorf("got %v", err)
	}
	if got := 10 - f.fail; got != defaultRetries+1 {
		t.Errorf("%d attempts, want %d", got, defaultRetries+1)
	}
}

func TestRedact(t *testing.T) {
	got := redact("https://h/a.json?auth=secret&x=1")
	if got != "https://h/a.json?auth=REDACTED&x=1" {
		t.Errorf("got %s", got)
	}
}
