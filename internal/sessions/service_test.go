package sessions

import (
	"context"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 2*time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars (256 bits), got %d", len(token))
	}

	sess, err := svc.Validate(ctx, token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if sess == nil || sess.Email != "admin@example.org" {
		t.Fatalf("unexpected session: %v", sess)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour)
	sess, err := svc.Validate(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil for unknown token, got %v", sess)
	}
}

func TestExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issued
	svc := NewService(NewMemoryRepository(), 2*time.Hour).WithClock(func() time.Time { return current })
	ctx := context.Background()

	token, err := svc.Issue(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// accepted up to and including issuance + TTL
	current = issued.Add(2 * time.Hour)
	if sess, _ := svc.Validate(ctx, token); sess == nil {
		t.Fatalf("expected session to still be valid at exactly issuance + TTL")
	}

	// rejected strictly after, identically to an unknown token
	current = issued.Add(2*time.Hour + time.Nanosecond)
	sess, err := svc.Validate(ctx, token)
	if err != nil || sess != nil {
		t.Fatalf("expected nil/nil past the expiry instant, got %v, %v", sess, err)
	}

	// the entry was evicted: a later lookup with a rewound clock still misses
	current = issued
	if sess, _ := svc.Validate(ctx, token); sess != nil {
		t.Fatalf("expected evicted session to stay gone")
	}
}

func TestRevokeIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if sess, _ := svc.Validate(ctx, token); sess != nil {
		t.Fatalf("expected session removed")
	}
	// revoking again (or an unknown token) is not an error
	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("second revoke failed: %v", err)
	}
	if err := svc.Revoke(ctx, "never-existed"); err != nil {
		t.Fatalf("revoke of unknown token failed: %v", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour)
	ctx := context.Background()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := svc.Issue(ctx, "admin@example.org")
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued")
		}
		seen[token] = true
	}
}
