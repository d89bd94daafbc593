package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	repo := NewIdentityRepository()

	created, err := repo.Create(context.Background(), &domain.Identity{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	found, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Role != domain.RoleAdmin || found.PasswordHash != "hash" {
		t.Fatalf("unexpected identity: %+v", found)
	}
}

func TestIdentityRepository_FindIsCaseSensitive(t *testing.T) {
	repo := NewIdentityRepository()

	_, _ = repo.Create(context.Background(), &domain.Identity{Email: "Bob@example.com"})

	if _, err := repo.FindByEmail(context.Background(), "bob@example.com"); err != domain.ErrIdentityNotFound {
		t.Fatalf("expected case-sensitive lookup to miss, got %v", err)
	}
}

func TestIdentityRepository_Duplicate(t *testing.T) {
	repo := NewIdentityRepository()

	if _, err := repo.Create(context.Background(), &domain.Identity{Email: "x@example.com"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.Identity{Email: "x@example.com"}); err != domain.ErrDuplicateIdentity {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
}

func TestIdentityRepository_ConcurrentSameEmail(t *testing.T) {
	repo := NewIdentityRepository()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(context.Background(), &domain.Identity{Email: "race@example.com"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrDuplicateIdentity):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", succeeded)
	}
}

func TestIdentityRepository_ReturnsClones(t *testing.T) {
	repo := NewIdentityRepository()

	_, _ = repo.Create(context.Background(), &domain.Identity{Email: "c@example.com", Role: domain.RoleRead})

	first, _ := repo.FindByEmail(context.Background(), "c@example.com")
	first.Role = domain.RoleAdmin

	second, _ := repo.FindByEmail(context.Background(), "c@example.com")
	if second.Role != domain.RoleRead {
		t.Fatalf("caller mutation leaked into store")
	}
}
