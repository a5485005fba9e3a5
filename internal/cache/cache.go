// Package cache guarda respostas já calculadas por um tempo limitado
package cache

import (
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL = 10 * time.Minute
	MinTTL     = time.Second
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Stats struct {
	Size  int   `json:"size"`
	TTLMs int64 `json:"ttlMs"`
}

// ResponseCache é um mapa chave -> valor com expiração preguiçosa, seguro para uso concorrente
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group
}

type Option func(*ResponseCache)

// WithClock troca o relógio usado para calcular expiração
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) {
		c.now = now
	}
}

// New cria o cache. TTL zero ou negativo usa o padrão de 10 minutos; valores abaixo de 1s são
// elevados para 1s.
func New(ttl time.Duration, opts ...Option) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &ResponseCache{
		entries: make(map[string]entry),
		ttl:     clamp(ttl),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func clamp(ttl time.Duration) time.Duration {
	if ttl < MinTTL {
		return MinTTL
	}
	return ttl
}

// Get devolve o valor se ainda válido. Entradas vencidas são removidas na leitura.
func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// outra goroutine pode ter regravado a chave entre os locks
		if current, exists := c.entries[key]; exists && c.now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (c *ResponseCache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL grava com TTL próprio. TTL zero ou negativo usa o TTL padrão do cache.
func (c *ResponseCache) SetWithTTL(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(clamp(ttl))}
	c.mu.Unlock()
}

// GetOrCompute devolve o valor em cache ou executa compute uma única vez por chave, mesmo com
// chamadas concorrentes. hit indica se o valor veio do cache.
func (c *ResponseCache) GetOrCompute(key string, compute func() (any, error)) (value any, hit bool, err error) {
	if value, ok := c.Get(key); ok {
		return value, true, nil
	}

	value, err, _ = c.group.Do(key, func() (any, error) {
		if cached, ok := c.Get(key); ok {
			return cached, nil
		}
		computed, err := compute()
		if err != nil {
			return nil, err
		}
		c.Set(key, computed)
		return computed, nil
	})
	return value, false, err
}

// Invalidate remove as chaves com o prefixo informado. Prefixo vazio limpa tudo.
func (c *ResponseCache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefix == "" {
		removed := len(c.entries)
		c.entries = make(map[string]entry)
		return removed
	}

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Purge remove todas as entradas vencidas
func (c *ResponseCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *ResponseCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		Size:  len(c.entries),
		TTLMs: c.ttl.Milliseconds(),
	}
}

// BuildKey monta a chave role:path?k1=v1&k2=v2 com as chaves ordenadas, ignorando "_".
// Valores repetidos são unidos por vírgula.
func BuildKey(role, path string, query url.Values) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		if key == "_" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+strings.Join(query[key], ","))
	}

	return role + ":" + path + "?" + strings.Join(pairs, "&")
}
