// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/clash-paysheet/internal/domain"
)

//go:generate mockgen -source=sheet_session.go -destination=mocks/mock_sheet_session.go -package=mocks

type SheetSessionRepository interface {
	Save(session *domain.SheetSession) error
	Get(id string) (*domain.SheetSession, error)
	Delete(id string) (bool, error)
	DeleteExpired(now time.Time) (int, error)
	Count() int
}

// sheetSessionRepository mantém as planilhas normalizadas apenas em memória.
// Os registros são somente leitura depois de salvos.
type sheetSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SheetSession
	now      func() time.Time
}

// NewSheetSessionRepository usa now para decidir a expiração em Get; nil usa time.Now
func NewSheetSessionRepository(now func() time.Time) SheetSessionRepository {
	if now == nil {
		now = time.Now
	}
	return &sheetSessionRepository{
		sessions: make(map[string]*domain.SheetSession),
		now:      now,
	}
}

func (r *sheetSessionRepository) Save(session *domain.SheetSession) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("sessão sem id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	return nil
}

// Get retorna nil, nil quando a sessão não existe ou já expirou
func (r *sheetSessionRepository) Get(id string) (*domain.SheetSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists || isExpired(session, r.now()) {
		return nil, nil
	}
	return session, nil
}

func (r *sheetSessionRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

// DeleteExpired remove as sessões vencidas e retorna quantas foram removidas
func (r *sheetSessionRepository) DeleteExpired(now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if isExpired(session, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *sheetSessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func isExpired(session *domain.SheetSession, now time.Time) bool {
	return !session.ExpiresAt.IsZero() && !now.Before(session.ExpiresAt)
}
