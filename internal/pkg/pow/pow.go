/*
Package pow implements a Proof-of-Work gate for endpoints that spend money upstream.

A client fetches a nonce, searches for a counter whose SHA-256(nonce+counter) hex digest has
the configured number of leading zeros, and trades the solution for a short-lived,
single-use proof token.
*/
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/resp"
)

const (
	// TokenHeaderKey is the HTTP header carrying the proof token.
	TokenHeaderKey = "X-PoW-Token"

	// ProofTokenDuration is how long an issued proof token stays valid.
	ProofTokenDuration = 30 * time.Second

	// NonceExpiryDuration is how long a challenge nonce stays valid.
	NonceExpiryDuration = 5 * time.Minute
)

var (
	// ErrNonceInvalid is returned for unknown, expired or already consumed nonces.
	ErrNonceInvalid = errors.New("nonce expired or invalid")

	// ErrProofInsufficient is returned when the hash misses the difficulty target.
	ErrProofInsufficient = errors.New("proof does not meet difficulty requirement")
)

// Manager issues challenges and proof tokens. Safe for concurrent use.
type Manager struct {
	difficulty int

	nonceStore map[string]time.Time
	tokenStore map[string]time.Time

	mu  sync.Mutex
	now func() time.Time
}

// NewManager creates a Manager whose cleanup goroutine runs until ctx is done.
func NewManager(ctx context.Context, difficulty int) *Manager {
	m := &Manager{
		difficulty: difficulty,
		nonceStore: make(map[string]time.Time),
		tokenStore: make(map[string]time.Time),
		now:        time.Now,
	}

	go m.cleanupExpiredEntries(ctx)

	return m
}

// Difficulty returns the number of leading hex zeros a solution needs.
func (m *Manager) Difficulty() int {
	return m.difficulty
}

// GenerateNonce creates and stores a new challenge nonce.
func (m *Manager) GenerateNonce() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	nonce := uuid.New().String()
	m.nonceStore[nonce] = m.now().Add(NonceExpiryDuration)
	return nonce
}

// Solves reports whether nonce+counter meets difficulty.
func Solves(nonce, counter string, difficulty int) bool {
	hash := sha256.Sum256([]byte(nonce + counter))
	return strings.HasPrefix(hex.EncodeToString(hash[:]), strings.Repeat("0", difficulty))
}

// ValidateProof consumes the nonce and returns a proof token if the solution is valid.
func (m *Manager) ValidateProof(nonce, counter string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.nonceStore[nonce]
	if !ok || m.now().After(expiry) {
		return "", ErrNonceInvalid
	}

	if !Solves(nonce, counter, m.difficulty) {
		return "", ErrProofInsufficient
	}

	delete(m.nonceStore, nonce)

	token := uuid.New().String()
	m.tokenStore[token] = m.now().Add(ProofTokenDuration)
	return token, nil
}

// ConsumeProofToken checks the request's proof token (header or pow_token query) and
// invalidates it.
func (m *Manager) ConsumeProofToken(r *http.Request) bool {
	token := r.Header.Get(TokenHeaderKey)
	if token == "" {
		token = r.URL.Query().Get("pow_token")
	}

	if token == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokenStore[token]
	if !ok {
		return false
	}
	delete(m.tokenStore, token)

	return !m.now().After(expiry)
}

// Middleware rejects requests without a valid proof token.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.ConsumeProofToken(r) {
			resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeRequired))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Manager) cleanupExpiredEntries(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.purge()
		}
	}
}

func (m *Manager) purge() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for nonce, expiry := range m.nonceStore {
		if now.After(expiry) {
			delete(m.nonceStore, nonce)
		}
	}
	for token, expiry := range m.tokenStore {
		if now.After(expiry) {
			delete(m.tokenStore, token)
		}
	}
}
