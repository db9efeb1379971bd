package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/clothes-shop/clothes/internal/apierr"
	"github.com/clothes-shop/clothes/internal/auth"
	"github.com/clothes-shop/clothes/internal/identity"
	"github.com/clothes-shop/clothes/internal/logging"
	"github.com/clothes-shop/clothes/internal/metrics"
)

var gateSecret = []byte("0123456789abcdef0123456789abcdef")

type brokenRepo struct {
	identity.Repository
}

func (brokenRepo) FindByID(context.Context, int64) (identity.Identity, error) {
	return identity.Identity{}, errors.New("connection reset")
}

type gateFixture struct {
	app    *fiber.App
	repo   identity.Repository
	tokens *auth.Tokens
	user   identity.Identity
	now    time.Time
}

func setupGate(t *testing.T, repo identity.Repository) *gateFixture {
	t.Helper()
	f := &gateFixture{repo: repo, now: time.Now()}
	tokens, err := auth.NewTokens(gateSecret, auth.WithClock(func() time.Time { return f.now }))
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	f.tokens = tokens

	user, err := repo.Create(context.Background(), identity.Identity{Email: "a@b.com", FullName: "Jane Doe"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	f.user = user

	logger := logging.Discard()
	f.app = fiber.New(fiber.Config{ErrorHandler: apierr.Handler(logger)})
	f.app.Get("/protected", JWTAuth(tokens, repo, metrics.NewCollector(prometheus.NewRegistry()), logger), func(c *fiber.Ctx) error {
		who, ok := auth.IdentityFrom(c.UserContext())
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.JSON(fiber.Map{"id": who.ID, "email": who.Email})
	})
	return f
}

func (f *gateFixture) call(t *testing.T, authorization string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func (f *gateFixture) token(t *testing.T, id int64) string {
	t.Helper()
	tok, err := f.tokens.Issue(id)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func TestJWTAuthAttachesIdentity(t *testing.T) {
	f := setupGate(t, identity.NewMemoryRepository())

	status, body := f.call(t, "Bearer "+f.token(t, f.user.ID))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d (%v)", status, body)
	}
	if body["email"] != "a@b.com" || body["id"] != float64(f.user.ID) {
		t.Fatalf("unexpected identity %v", body)
	}
}

func TestJWTAuthSchemeIsCaseInsensitive(t *testing.T) {
	f := setupGate(t, identity.NewMemoryRepository())

	if status, _ := f.call(t, "bearer "+f.token(t, f.user.ID)); status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
}

func TestJWTAuthMissingCredentials(t *testing.T) {
	f := setupGate(t, identity.NewMemoryRepository())

	for _, header := range []string{"", "Basic YTpi", "Bearer", "Bearer    ", "Token abc"} {
		status, body := f.call(t, header)
		if status != fiber.StatusUnauthorized || body["code"] != "MISSING_CREDENTIALS" {
			t.Fatalf("header %q: expected 401 MISSING_CREDENTIALS got %d %v", header, status, body)
		}
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	f := setupGate(t, identity.NewMemoryRepository())

	other, err := auth.NewTokens([]byte("fedcba9876543210fedcba9876543210"))
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	forged, err := other.Issue(f.user.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, tok := range []string{forged, "garbage", f.token(t, f.user.ID) + "x"} {
		status, body := f.call(t, "Bearer "+tok)
		if status != fiber.StatusUnauthorized || body["code"] != "INVALID_TOKEN" {
			t.Fatalf("expected 401 INVALID_TOKEN got %d %v", status, body)
		}
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	f := setupGate(t, identity.NewMemoryRepository())

	tok := f.token(t, f.user.ID)
	f.now = f.now.Add(auth.TokenTTL + time.Minute)

	status, body := f.call(t, "Bearer "+tok)
	if status != fiber.StatusUnauthorized || body["code"] != "EXPIRED_TOKEN" {
		t.Fatalf("expected 401 EXPIRED_TOKEN got %d %v", status, body)
	}
}

func TestJWTAuthDeletedIdentity(t *testing.T) {
	repo := identity.NewMemoryRepository()
	f := setupGate(t, repo)
	tok := f.token(t, f.user.ID)

	repo.(interface{ Delete(int64) }).Delete(f.user.ID)

	status, body := f.call(t, "Bearer "+tok)
	if status != fiber.StatusUnauthorized || body["code"] != "INVALID_TOKEN" {
		t.Fatalf("expected 401 INVALID_TOKEN got %d %v", status, body)
	}
}

func TestJWTAuthStoreFailure(t *testing.T) {
	f := setupGate(t, brokenRepo{Repository: identity.NewMemoryRepository()})

	status, body := f.call(t, "Bearer "+f.token(t, f.user.ID))
	if status != fiber.StatusInternalServerError || body["error"] != "internal error" {
		t.Fatalf("expected 500 got %d %v", status, body)
	}
}
