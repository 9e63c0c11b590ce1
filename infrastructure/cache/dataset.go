// Package cache mantém o conjunto de vendas em memória com expiração
// deslizante limitada por um teto absoluto.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=dataset.go -destination=mocks/mock_loader.go -package=mocks

// datasetKey é a única chave do cache, compartilhada por todo o processo
const datasetKey = "SalesData"

const (
	DefaultSlidingExpiration  = 30 * time.Minute
	DefaultAbsoluteExpiration = time.Hour
)

// Loader carrega o conjunto completo de vendas
type Loader interface {
	Load(ctx context.Context) ([]domain.SalesRecord, error)
}

// Options configura a expiração do cache. Valores <= 0 desativam o respectivo limite.
type Options struct {
	SlidingExpiration  time.Duration
	AbsoluteExpiration time.Duration
	// Now permite substituir o relógio nos testes
	Now func() time.Time
}

type entry struct {
	records    []domain.SalesRecord
	generation string
	filledAt   time.Time
	lastAccess time.Time
}

// Stats descreve o estado atual do cache
type Stats struct {
	Cached       bool       `json:"cached"`
	Generation   string     `json:"generation,omitempty"`
	Records      int        `json:"records"`
	FilledAt     *time.Time `json:"filled_at,omitempty"`
	LastAccess   *time.Time `json:"last_access,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Hits         int64      `json:"hits"`
	Misses       int64      `json:"misses"`
	Loads        int64      `json:"loads"`
	LoadFailures int64      `json:"load_failures"`
}

// DatasetCache guarda o resultado de uma carga completa. Cargas concorrentes
// de uma mesma geração são unificadas; falhas nunca ficam em cache.
type DatasetCache struct {
	loader  Loader
	options Options
	group   singleflight.Group

	mu       sync.Mutex
	entry    *entry
	epoch    uint64
	hits     int64
	misses   int64
	loads    int64
	failures int64
}

// NewDatasetCache cria o cache sobre o loader informado
func NewDatasetCache(loader Loader, options Options) *DatasetCache {
	if options.Now == nil {
		options.Now = time.Now
	}

	log.L.WithFields(log.Fields{
		"cache_sliding_expiration":  options.SlidingExpiration.String(),
		"cache_absolute_expiration": options.AbsoluteExpiration.String(),
	}).Info("cache: cache de vendas configurado")

	return &DatasetCache{
		loader:  loader,
		options: options,
	}
}

// Get retorna o conjunto em cache ou carrega um novo quando ausente ou expirado
func (c *DatasetCache) Get(ctx context.Context) ([]domain.SalesRecord, error) {
	if records, ok := c.lookup(); ok {
		return records, nil
	}
	return c.fill(ctx)
}

// Invalidate descarta a entrada atual. Uma carga em andamento não é gravada.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil
	c.epoch++
	c.group.Forget(datasetKey)

	log.L.Info("cache: cache de vendas invalidado")
}

// Refresh força uma nova carga, descartando a entrada atual
func (c *DatasetCache) Refresh(ctx context.Context) ([]domain.SalesRecord, error) {
	c.Invalidate()
	return c.fill(ctx)
}

// Stats retorna um retrato do estado do cache
func (c *DatasetCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		Hits:         c.hits,
		Misses:       c.misses,
		Loads:        c.loads,
		LoadFailures: c.failures,
	}

	e := c.entry
	if e == nil || c.expired(e, c.options.Now()) {
		return stats
	}

	filledAt := e.filledAt
	lastAccess := e.lastAccess
	expiresAt := c.expiresAt(e)

	stats.Cached = true
	stats.Generation = e.generation
	stats.Records = len(e.records)
	stats.FilledAt = &filledAt
	stats.LastAccess = &lastAccess
	stats.ExpiresAt = expiresAt
	return stats
}

func (c *DatasetCache) lookup() ([]domain.SalesRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.options.Now()
	if c.entry == nil {
		c.misses++
		return nil, false
	}

	if c.expired(c.entry, now) {
		log.L.WithField("generation", c.entry.generation).Info("cache: dados de vendas expirados")
		c.entry = nil
		c.misses++
		return nil, false
	}

	c.entry.lastAccess = now
	c.hits++
	return c.entry.records, true
}

func (c *DatasetCache) fill(ctx context.Context) ([]domain.SalesRecord, error) {
	loadCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(datasetKey, func() (interface{}, error) {
		c.mu.Lock()
		if e := c.entry; e != nil && !c.expired(e, c.options.Now()) {
			records := e.records
			c.mu.Unlock()
			return records, nil
		}
		epoch := c.epoch
		c.mu.Unlock()

		generation, err := utils.GenerateID()
		if err != nil {
			generation = "unknown"
		}

		logger := log.ForContext(loadCtx).WithField("generation", generation)
		logger.Info("cache: dados de vendas não encontrados no cache, carregando do arquivo")

		records, err := c.loader.Load(loadCtx)

		c.mu.Lock()
		defer c.mu.Unlock()

		if err != nil {
			c.failures++
			logger.WithError(err).Error("cache: falha ao carregar dados de vendas")
			return nil, err
		}

		c.loads++
		if epoch != c.epoch {
			logger.Warn("cache: carga concluída após invalidação, resultado não armazenado")
			return records, nil
		}

		now := c.options.Now()
		c.entry = &entry{
			records:    records,
			generation: generation,
			filledAt:   now,
			lastAccess: now,
		}

		logger.WithField("records", len(records)).Info("cache: dados de vendas armazenados no cache")
		return records, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.SalesRecord), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *DatasetCache) expired(e *entry, now time.Time) bool {
	if c.options.SlidingExpiration > 0 && now.Sub(e.lastAccess) >= c.options.SlidingExpiration {
		return true
	}
	if c.options.AbsoluteExpiration > 0 && now.Sub(e.filledAt) >= c.options.AbsoluteExpiration {
		return true
	}
	return false
}

// expiresAt retorna o primeiro limite a vencer, ou nil quando não há limite
func (c *DatasetCache) expiresAt(e *entry) *time.Time {
	var expiresAt *time.Time

	if c.options.SlidingExpiration > 0 {
		t := e.lastAccess.Add(c.options.SlidingExpiration)
		expiresAt = &t
	}
	if c.options.AbsoluteExpiration > 0 {
		t := e.filledAt.Add(c.options.AbsoluteExpiration)
		if expiresAt == nil || t.Before(*expiresAt) {
			expiresAt = &t
		}
	}
	return expiresAt
}
