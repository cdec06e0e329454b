package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store/drivers/sqlite"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingSender captures outgoing mail. A non-nil err makes every send
// fail.
type recordingSender struct {
	mu   sync.Mutex
	sent []mailx.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mailx.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, msg)
	return fmt.Sprintf("msg-%d", len(s.sent)), nil
}

func (s *recordingSender) Sent() []mailx.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailx.Message(nil), s.sent...)
}

func (s *recordingSender) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type testEnv struct {
	store    *sqlite.Store
	clock    *testClock
	mail     *recordingSender
	invites  *InvitationService
	projects *ProjectService
	tickets  *TicketService
}

func newTestEnv(t *testing.T, dsn string) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := newTestClock()
	mail := &recordingSender{}

	return &testEnv{
		store: st,
		clock: clock,
		mail:  mail,
		invites: &InvitationService{
			Store:  st,
			Mailer: &InvitationMailer{Sender: mail, FrontendURL: "https://app.example.com"},
			Now:    clock.Now,
		},
		projects: &ProjectService{Store: st, Now: clock.Now},
		tickets:  &TicketService{Store: st, Now: clock.Now},
	}
}

func memEnv(t *testing.T) *testEnv {
	return newTestEnv(t, ":memory:")
}

// fileEnv uses a file database so concurrent callers get their own
// connections.
func fileEnv(t *testing.T) *testEnv {
	return newTestEnv(t, filepath.Join(t.TempDir(), "projecthub.db"))
}

func (e *testEnv) user(t *testing.T, name, email string) domain.User {
	t.Helper()

	now := e.clock.Now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: "unused",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))
	return u
}

func (e *testEnv) project(t *testing.T, owner domain.User, title string, members ...string) domain.Project {
	t.Helper()

	d, err := e.projects.Create(context.Background(), owner.ID, title, title+" description", members)
	require.NoError(t, err)
	return d.Project
}

var errSMTPDown = errors.New("smtp: connection refused")
