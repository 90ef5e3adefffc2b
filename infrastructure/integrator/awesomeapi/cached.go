package awesomeapi

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/clash-paysheet/pkg/log"
)

// CachedRateProvider guarda a última cotação válida por um TTL.
// Falhas não são guardadas: a próxima chamada tenta de novo.
type CachedRateProvider struct {
	source RateProvider
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	rate      float64
	fetchedAt time.Time
	hasRate   bool
}

func NewCachedRateProvider(source RateProvider, ttl time.Duration) *CachedRateProvider {
	return &CachedRateProvider{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *CachedRateProvider) GetRate(ctx context.Context) (float64, bool) {
	if rate, ok := c.cached(); ok {
		return rate, true
	}
	return c.fetch(ctx)
}

// Refresh ignora o cache e busca uma nova cotação
func (c *CachedRateProvider) Refresh(ctx context.Context) bool {
	_, ok := c.fetch(ctx)
	return ok
}

// LastRate retorna a última cotação obtida, mesmo expirada
func (c *CachedRateProvider) LastRate() (float64, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate, c.fetchedAt, c.hasRate
}

func (c *CachedRateProvider) cached() (float64, bool) {
	if c.ttl <= 0 {
		return 0, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.hasRate || c.now().Sub(c.fetchedAt) >= c.ttl {
		return 0, false
	}
	return c.rate, true
}

func (c *CachedRateProvider) fetch(ctx context.Context) (float64, bool) {
	rate, ok := c.source.GetRate(ctx)
	if !ok {
		return 0, false
	}

	c.mu.Lock()
	c.rate = rate
	c.fetchedAt = c.now()
	c.hasRate = true
	c.mu.Unlock()

	log.ForContext(ctx).Debugf("Cotação atualizada: %.4f", rate)
	return rate, true
}
