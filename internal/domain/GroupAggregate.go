package domain

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// GroupEntry é um grupo com sua receita somada
type GroupEntry struct {
	Key     string          `json:"key"`
	Revenue decimal.Decimal `json:"revenue"`
}

// GroupAggregate mapeia chaves para receita somada preservando a ordem
// definida por cada agregação. Chaves novas entram no final.
type GroupAggregate struct {
	entries []GroupEntry
	index   map[string]int
}

func NewGroupAggregate() *GroupAggregate {
	return &GroupAggregate{
		entries: make([]GroupEntry, 0),
		index:   make(map[string]int),
	}
}

// Add soma a receita na chave, criando o grupo quando ainda não existe
func (g *GroupAggregate) Add(key string, revenue decimal.Decimal) {
	if i, ok := g.index[key]; ok {
		g.entries[i].Revenue = g.entries[i].Revenue.Add(revenue)
		return
	}
	g.index[key] = len(g.entries)
	g.entries = append(g.entries, GroupEntry{Key: key, Revenue: revenue})
}

func (g *GroupAggregate) Get(key string) (decimal.Decimal, bool) {
	i, ok := g.index[key]
	if !ok {
		return decimal.Zero, false
	}
	return g.entries[i].Revenue, true
}

func (g *GroupAggregate) Len() int {
	return len(g.entries)
}

// Keys retorna as chaves na ordem de iteração
func (g *GroupAggregate) Keys() []string {
	keys := make([]string, len(g.entries))
	for i, e := range g.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries retorna uma cópia dos grupos na ordem de iteração
func (g *GroupAggregate) Entries() []GroupEntry {
	out := make([]GroupEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Total soma a receita de todos os grupos
func (g *GroupAggregate) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range g.entries {
		total = total.Add(e.Revenue)
	}
	return total
}

// SortStable reordena os grupos mantendo a ordem relativa dos empates
func (g *GroupAggregate) SortStable(less func(a, b GroupEntry) bool) {
	sort.SliceStable(g.entries, func(i, j int) bool {
		return less(g.entries[i], g.entries[j])
	})
	g.reindex()
}

// Truncate mantém apenas os n primeiros grupos
func (g *GroupAggregate) Truncate(n int) {
	if n < 0 || n >= len(g.entries) {
		return
	}
	g.entries = g.entries[:n]
	g.reindex()
}

func (g *GroupAggregate) reindex() {
	g.index = make(map[string]int, len(g.entries))
	for i, e := range g.entries {
		g.index[e.Key] = i
	}
}

// MarshalJSON gera um objeto JSON com as chaves na ordem de iteração
func (g *GroupAggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range g.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Revenue)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
