package strava

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

type RepositoryStub struct {
	mu     sync.RWMutex
	nonces map[string]int        // nonce -> athleteId
	tokens map[int]*oauth2.Token // athleteId -> token
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		nonces: make(map[string]int),
		tokens: make(map[int]*oauth2.Token),
	}
}

func (r *RepositoryStub) PrepareAuth(ctx context.Context, athleteId int, nonce string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n, id := range r.nonces {
		if id == athleteId {
			delete(r.nonces, n)
		}
	}
	delete(r.tokens, athleteId)
	r.nonces[nonce] = athleteId
	return nil
}

func (r *RepositoryStub) StoreTokenForNonce(ctx context.Context, nonce string, token *oauth2.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	athleteId, exists := r.nonces[nonce]
	if !exists {
		return fmt.Errorf("no pending Strava auth found for nonce")
	}
	r.tokens[athleteId] = token
	return nil
}

func (r *RepositoryStub) GetToken(ctx context.Context, athleteId int) (*oauth2.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokens[athleteId], nil
}

func (r *RepositoryStub) DeleteAuth(ctx context.Context, athleteId int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n, id := range r.nonces {
		if id == athleteId {
			delete(r.nonces, n)
		}
	}
	delete(r.tokens, athleteId)
	return nil
}
