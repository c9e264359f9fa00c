package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Service wraps repository operations with the token lifecycle rules. The
// clock is injectable so expiry can be tested without waiting real time.
type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewService(r Repository, ttl time.Duration) *Service {
	return &Service{repo: r, ttl: ttl, now: time.Now}
}

// WithClock replaces the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue stores a new session for the given identity and returns its token:
// 32 bytes from a cryptographically strong source, hex encoded.
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	now := s.now().UTC()
	sess := &Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Validate returns the session if the token is known and not expired, nil
// otherwise. The expiry instant itself is still valid; a lookup strictly
// after it evicts the entry and reports exactly like an unknown token, so
// callers cannot distinguish "never existed" from "expired".
func (s *Service) Validate(ctx context.Context, token string) (*Session, error) {
	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if s.now().UTC().After(sess.ExpiresAt) {
		_ = s.repo.Delete(ctx, token)
		return nil, nil
	}
	return sess, nil
}

// Revoke removes the session. Idempotent.
func (s *Service) Revoke(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
