package usecase_test

import (
	"context"
	"sync"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/data/repository"
	"truetimeshare/pkg/notify"

	"github.com/google/uuid"
)

// ---------- Mocks ----------

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Phone != nil && *u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		all = append(all, &cp)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockUserRepo) CountAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.UserStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.Status = status
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

type grantKey struct {
	userID uuid.UUID
	kind   entity.GrantKind
}

type mockGrantRepo struct {
	mu     sync.Mutex
	grants map[grantKey]*entity.Grant
}

func newMockGrantRepo() *mockGrantRepo {
	return &mockGrantRepo{grants: make(map[grantKey]*entity.Grant)}
}

func (m *mockGrantRepo) Issue(_ context.Context, grant *entity.Grant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *grant
	m.grants[grantKey{grant.UserID, grant.Kind}] = &cp
	return nil
}

func (m *mockGrantRepo) FindByToken(_ context.Context, kind entity.GrantKind, token string) (*entity.Grant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, g := range m.grants {
		if k.kind == kind && g.Token == token {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockGrantRepo) FindByUser(_ context.Context, kind entity.GrantKind, userID uuid.UUID) (*entity.Grant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.grants[grantKey{userID, kind}]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (m *mockGrantRepo) MarkAccepted(_ context.Context, kind entity.GrantKind, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, g := range m.grants {
		if k.kind == kind && g.Token == token {
			g.Accepted = true
		}
	}
	return nil
}

func (m *mockGrantRepo) Refresh(_ context.Context, kind entity.GrantKind, token, code string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, g := range m.grants {
		if k.kind == kind && g.Token == token {
			g.Code = code
			g.Expiry = expiry
			g.Accepted = false
		}
	}
	return nil
}

func (m *mockGrantRepo) DeleteByUser(_ context.Context, kind entity.GrantKind, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.grants, grantKey{userID, kind})
	return nil
}

// expire rewinds a stored grant's expiry, simulating TTL passage.
func (m *mockGrantRepo) expire(kind entity.GrantKind, userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.grants[grantKey{userID, kind}]; ok {
		g.Expiry = time.Now().Add(-time.Minute)
	}
}

type mockRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*entity.RefreshToken
}

func newMockRefreshTokenRepo() *mockRefreshTokenRepo {
	return &mockRefreshTokenRepo{tokens: make(map[uuid.UUID]*entity.RefreshToken)}
}

func (m *mockRefreshTokenRepo) Replace(_ context.Context, rt *entity.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rt
	m.tokens[rt.UserID] = &cp
	return nil
}

func (m *mockRefreshTokenRepo) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rt := range m.tokens {
		if rt.Token == token {
			cp := *rt
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockRefreshTokenRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, userID)
	return nil
}

func (m *mockRefreshTokenRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

func (m *mockRefreshTokenRepo) expire(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rt, ok := m.tokens[userID]; ok {
		rt.Expiry = time.Now().Add(-time.Minute)
	}
}

type mockPropertyRepo struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*entity.Property
}

func newMockPropertyRepo() *mockPropertyRepo {
	return &mockPropertyRepo{properties: make(map[uuid.UUID]*entity.Property)}
}

func (m *mockPropertyRepo) Create(_ context.Context, property *entity.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *property
	m.properties[property.ID] = &cp
	return nil
}

func (m *mockPropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.properties[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *mockPropertyRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Property
	for _, p := range m.properties {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockPropertyRepo) Update(_ context.Context, property *entity.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *property
	m.properties[property.ID] = &cp
	return nil
}

func (m *mockPropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.properties, id)
	return nil
}

type mockCommunityEmailRepo struct {
	mu     sync.Mutex
	emails map[string]*entity.CommunityEmail
}

func newMockCommunityEmailRepo() *mockCommunityEmailRepo {
	return &mockCommunityEmailRepo{emails: make(map[string]*entity.CommunityEmail)}
}

func (m *mockCommunityEmailRepo) Create(_ context.Context, ce *entity.CommunityEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *ce
	m.emails[ce.Email] = &cp
	return nil
}

func (m *mockCommunityEmailRepo) FindByEmail(_ context.Context, email string) (*entity.CommunityEmail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ce, ok := m.emails[email]; ok {
		cp := *ce
		return &cp, nil
	}
	return nil, nil
}

type mockMailer struct {
	mu       sync.Mutex
	messages []notify.EmailMessage
}

func (m *mockMailer) SendEmail(_ context.Context, msg notify.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMailer) last() *notify.EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return &m.messages[len(m.messages)-1]
}

type mockSMSSender struct {
	mu       sync.Mutex
	messages []notify.SMSMessage
}

func (m *mockSMSSender) SendSMS(_ context.Context, msg notify.SMSMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockSMSSender) last() *notify.SMSMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return &m.messages[len(m.messages)-1]
}

func newMockRepository() (*repository.Repository, *mockUserRepo, *mockGrantRepo, *mockRefreshTokenRepo) {
	users := newMockUserRepo()
	grants := newMockGrantRepo()
	refresh := newMockRefreshTokenRepo()

	repo := &repository.Repository{
		User:           users,
		Grant:          grants,
		RefreshToken:   refresh,
		Property:       newMockPropertyRepo(),
		CommunityEmail: newMockCommunityEmailRepo(),
	}

	return repo, users, grants, refresh
}
