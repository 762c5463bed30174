package track

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/signadot/rtdbview/debug"
	"github.com/signadot/rtdbview/ir"
)

const DefaultInterval = 5 * time.Second

var ErrNotStarted = errors.New("session not started")

// Session tracks one player's online time.
type Session struct {
	Store    Store
	User     string
	Interval time.Duration
	Clock    Clock

	id    string
	login time.Time
}

func NewSession(store Store, user string) *Session {
	return &Session{Store: store, User: user}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return utcNow()
}

func (s *Session) fieldPath(field string) string {
	return path.Join("sessions", s.User, field)
}

func (s *Session) put(ctx context.Context, field string, v *ir.Node) error {
	if err := s.Store.Put(ctx, s.fieldPath(field), v); err != nil {
		return fmt.Errorf("error updating session %s: %w", field, err)
	}
	if debug.Track() {
		debug.Logf("session %s %s = %v\n", s.User, field, v)
	}
	return nil
}

func stamp(t time.Time) *ir.Node {
	return ir.FromString(t.UTC().Format(time.RFC3339Nano))
}

// online is the isOnline value other clients of the database read: the
// strings "true" and "false", not JSON booleans.
func online(v bool) *ir.Node {
	return ir.FromString(strconv.FormatBool(v))
}

// Start marks the user online and records the login time.
func (s *Session) Start(ctx context.Context) error {
	if s.User == "" {
		return fmt.Errorf("session has no user")
	}
	s.login = s.now()
	s.id = uuid.NewString()
	for _, kv := range []ir.KeyVal{
		{Key: "loginTime", Val: stamp(s.login)},
		{Key: "lastActive", Val: stamp(s.login)},
		{Key: "isOnline", Val: online(true)},
		{Key: "sessionId", Val: ir.FromString(s.id)},
	} {
		if err := s.put(ctx, kv.Key, kv.Val); err != nil {
			return err
		}
	}
	return nil
}

// Heartbeat refreshes lastActive.
func (s *Session) Heartbeat(ctx context.Context) error {
	if s.id == "" {
		return ErrNotStarted
	}
	return s.put(ctx, "lastActive", stamp(s.now()))
}

// Run sends a heartbeat every Interval until ctx is done. Failed
// heartbeats are passed to onErr, when set, and do not stop the loop.
func (s *Session) Run(ctx context.Context, onErr func(error)) error {
	if s.id == "" {
		return ErrNotStarted
	}
	every := s.Interval
	if every <= 0 {
		every = DefaultInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Heartbeat(ctx); err != nil && onErr != nil && ctx.Err() == nil {
				onErr(err)
			}
		}
	}
}

// End records the logout, adds the whole seconds played to totalPlayTime
// and marks the user offline. It returns the session length.
func (s *Session) End(ctx context.Context) (time.Duration, error) {
	if s.id == "" {
		return 0, ErrNotStarted
	}
	logout := s.now()
	played := logout.Sub(s.login)
	if err := s.put(ctx, "logoutTime", stamp(logout)); err != nil {
		return played, err
	}
	secs := int64(played / time.Second)
	if _, err := s.Store.Increment(ctx, s.fieldPath("totalPlayTime"), secs); err != nil {
		return played, fmt.Errorf("error updating session totalPlayTime: %w", err)
	}
	if err := s.put(ctx, "isOnline", online(false)); err != nil {
		return played, err
	}
	s.id = ""
	return played, nil
}
