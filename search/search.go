// Package search ranks catalog entries for a free-text query. The external
// AI ranking service is an opaque collaborator that only returns entry ids;
// Ranker is its seam, with a local keyword ranker as the built-in fallback.
package search

import (
	"context"
	"sort"
	"strings"

	"tripnest/models"
)

type Ranker interface {
	// Rank returns entry ids ordered by relevance. Ids not present in the
	// given entries are ignored by callers.
	Rank(ctx context.Context, query string, entries []models.Entry) []string
}

// KeywordRanker scores entries by token matches across title, description,
// location and type. Ties keep catalog order.
type KeywordRanker struct{}

func NewKeywordRanker() *KeywordRanker {
	return &KeywordRanker{}
}

func (k *KeywordRanker) Rank(_ context.Context, query string, entries []models.Entry) []string {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []string{}
	}

	type scored struct {
		id    string
		score int
		pos   int
	}
	var hits []scored
	for i, e := range entries {
		s := score(tokens, e)
		if s > 0 {
			hits = append(hits, scored{id: e.ID, score: s, pos: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}

func score(tokens []string, e models.Entry) int {
	title := strings.ToLower(e.Title)
	desc := strings.ToLower(e.Description)
	loc := strings.ToLower(string(e.Location))
	typ := strings.ToLower(string(e.Type))

	total := 0
	for _, tok := range tokens {
		switch {
		case strings.Contains(title, tok):
			total += 3
		case strings.Contains(loc, tok) || strings.Contains(typ, tok):
			total += 2
		case strings.Contains(desc, tok):
			total++
		}
	}
	return total
}
