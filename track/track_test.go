package track

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/signadot/rtdbview/ir"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]*ir.Node
	puts []string
	fail error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]*ir.Node{}}
}

func (m *memStore) Put(ctx context.Context, path string, node *ir.Node) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.data[path] = node
	m.puts = append(m.puts, path)
	return nil
}

func (m *memStore) Increment(ctx context.Context, path string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	var cur int64
	if v := m.data[path]; v.IsInt() {
		cur = *v.Int64
	}
	m.data[path] = ir.FromInt(cur + delta)
	return cur + delta, nil
}

func (m *memStore) get(path string) *ir.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[path]
}

func TestVisit(t *testing.T) {
	st := newMemStore()
	z := &Zones{Store: st}
	ctx := context.Background()
	for i := range 3 {
		n, err := z.Visit(ctx, "zone1")
		if err != nil || n != int64(i+1) {
			t.Fatalf("visit %d: got %d, %v", i, n, err)
		}
	}
	if got := st.get("zones/zone1/visits"); !ir.Equal(got, ir.FromInt(3)) {
		t.Errorf("stored %v", got)
	}
	for _, bad := range []string{"", " ", "a/b"} {
		if _, err := z.Visit(ctx, bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
	st.fail = errors.New("offline")
	if _, err := z.Visit(ctx, "zone1"); !errors.Is(err, st.fail) {
		t.Errorf("got %v", err)
	}
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestSession(t *testing.T) {
	st := newMemStore()
	st.data["sessions/u1/totalPlayTime"] = ir.FromInt(100)
	clk := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSession(st, "u1")
	s.Clock = clk.now
	ctx := context.Background()

	if err := s.Heartbeat(ctx); !errors.Is(err, ErrNotStarted) {
		t.Errorf("heartbeat before start: %v", err)
	}
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("session id %q: %v", s.ID(), err)
	}
	wantPuts := []string{
		"sessions/u1/loginTime",
		"sessions/u1/lastActive",
		"sessions/u1/isOnline",
		"sessions/u1/sessionId",
	}
	if diff := cmp.Diff(wantPuts, st.puts); diff != "" {
		t.Errorf("puts (-want +got):\n%s", diff)
	}
	if got := st.get("sessions/u1/isOnline"); !ir.Equal(got, ir.FromString("true")) {
		t.Errorf("isOnline %v", got)
	}
	if got := st.get("sessions/u1/loginTime"); got.String != "2024-03-01T10:00:00Z" {
		t.Errorf("loginTime %v", got.String)
	}

	clk.add(5 * time.Second)
	if err := s.Heartbeat(ctx); err != nil {
		t.Fatal(err)
	}
	if got := st.get("sessions/u1/lastActive"); got.String != "2024-03-01T10:00:05Z" {
		t.Errorf("lastActive %v", got.String)
	}

	clk.add(90*time.Second + 700*time.Millisecond)
	played, err := s.End(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if played != 95*time.Second+700*time.Millisecond {
		t.Errorf("played %s", played)
	}
	if got := st.get("sessions/u1/totalPlayTime"); !ir.Equal(got, ir.FromInt(195)) {
		t.Errorf("totalPlayTime %v", got)
	}
	if got := st.get("sessions/u1/isOnline"); !ir.Equal(got, ir.FromString("false")) {
		t.Errorf("isOnline %v", got)
	}
	if got := st.get("sessions/u1/logoutTime"); got.String != "2024-03-01T10:01:35.7Z" {
		t.Errorf("logoutTime %v", got.String)
	}
	if _, err := s.End(ctx); !errors.Is(err, ErrNotStarted) {
		t.Errorf("second end: %v", err)
	}
}

func TestSessionRun(t *testing.T) {
	st := newMemStore()
	s := NewSession(st, "u2")
	s.Interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	start := len(st.puts)
	done := make(chan error)
	go func() { done <- s.Run(ctx, nil) }()
	deadline := time.Now().Add(5 * time.Second)
	for {
		st.mu.Lock()
		n := len(st.puts)
		st.mu.Unlock()
		if n >= start+3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no heartbeats")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("run: %v", err)
	}
}
