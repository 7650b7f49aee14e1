package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
	"Community_API/internal/repository/store/storetest"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users       *store.UserRepository
	roles       *store.RoleRepository
	communities *store.CommunityRepository
	members     *store.CommunityMemberRepository
	outbox      *store.OutboxRepository

	auth      *AuthService
	access    *AccessService
	role      *RoleService
	community *CommunityService
	member    *MemberService

	sessions *memSessions
	mailer   *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := storetest.OpenDB(t)
	e := &testEnv{
		users:       store.NewUserRepository(db),
		roles:       store.NewRoleRepository(db),
		communities: store.NewCommunityRepository(db),
		members:     store.NewCommunityMemberRepository(db),
		outbox:      store.NewOutboxRepository(db),
		sessions:    newMemSessions(),
		mailer:      &fakeMailer{sent: make(chan string, 16)},
	}
	e.auth = NewAuthService(e.users, pkg.NewTokenIssuer("test-secret", time.Hour), e.sessions, e.mailer)
	e.access = NewAccessService(e.members)
	e.role = NewRoleService(e.roles)
	e.community = NewCommunityService(e.communities, e.members, e.roles)
	e.member = NewMemberService(e.members, e.users, e.communities, e.roles)

	require.NoError(t, e.role.EnsureDefaults(context.Background()))
	return e
}

// signUp 创建一个密码合规的用户
func (e *testEnv) signUp(t *testing.T, name string) *model.User {
	t.Helper()
	u, _, err := e.auth.SignUp(context.Background(), name, name+"@example.com", "Passw0rd!")
	require.NoError(t, err)
	return u
}

func (e *testEnv) roleByName(t *testing.T, name string) *model.Role {
	t.Helper()
	r, err := e.roles.FindByName(context.Background(), name)
	require.NoError(t, err)
	return r
}

type memSessions struct {
	mu   sync.Mutex
	data map[string]uint64
}

func newMemSessions() *memSessions {
	return &memSessions{data: map[string]uint64{}}
}

func (m *memSessions) Add(_ context.Context, jti string, userID uint64, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[jti] = userID
	return nil
}

func (m *memSessions) Exists(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[jti]
	return ok, nil
}

func (m *memSessions) Delete(_ context.Context, jti string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, jti)
	return nil
}

type fakeMailer struct {
	sent chan string
}

func (f *fakeMailer) SendWelcome(to, _ string) error {
	f.sent <- to
	return nil
}
