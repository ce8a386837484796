// Package fuzzy resolves free-text queries against collections of items by
// substring and word overlap. It is used by the chat command resolver to map
// short commands onto tools, blog posts, pages and themes.
//
// Matching is case-insensitive. Callers project each item onto one or more
// searchable strings; the matcher never inspects the items themselves.
package fuzzy

import (
	"slices"
	"strings"
)

// Score weights used by Score, Rank and FindAll.
const (
	ExactScore     = 100
	PrefixScore    = 50
	SubstringScore = 25
	TokenScore     = 10
)

// Match is an item paired with its relevance score.
type Match[T any] struct {
	Item  T
	Score int
}

// normalize lowercases and trims a query.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// FindBest returns the first item whose searchable text matches query.
//
// Tiers are tried in order and the first tier with a hit wins; inside a tier
// items are scanned in their original order:
//  1. a candidate equals the query
//  2. a candidate contains the query
//  3. a candidate contains at least one whitespace-delimited query token
//
// The boolean is false when the query is blank or nothing matches.
func FindBest[T any](items []T, query string, text func(T) []string) (T, bool) {
	var zero T

	q := normalize(query)
	if q == "" {
		return zero, false
	}
	tokens := strings.Fields(q)

	candidates := make([][]string, len(items))
	for i, item := range items {
		candidates[i] = lowerAll(text(item))
	}

	tiers := []func(string) bool{
		func(c string) bool { return c == q },
		func(c string) bool { return strings.Contains(c, q) },
		func(c string) bool {
			for _, tok := range tokens {
				if strings.Contains(c, tok) {
					return true
				}
			}
			return false
		},
	}

	for _, hit := range tiers {
		for i, cs := range candidates {
			if slices.ContainsFunc(cs, hit) {
				return items[i], true
			}
		}
	}

	return zero, false
}

// FindAll returns every item with a positive score, most relevant first.
// Items with equal scores keep their input order. The result is never nil.
func FindAll[T any](items []T, query string, text func(T) []string) []T {
	ranked := Rank(items, query, text)
	out := make([]T, len(ranked))
	for i, m := range ranked {
		out[i] = m.Item
	}
	return out
}

// Rank is FindAll with the scores kept.
func Rank[T any](items []T, query string, text func(T) []string) []Match[T] {
	out := []Match[T]{}

	q := normalize(query)
	if q == "" {
		return out
	}
	tokens := strings.Fields(q)

	for _, item := range items {
		if s := score(text(item), q, tokens); s > 0 {
			out = append(out, Match[T]{Item: item, Score: s})
		}
	}

	slices.SortStableFunc(out, func(a, b Match[T]) int {
		return b.Score - a.Score
	})
	return out
}

// Score computes the additive relevance of a set of candidate strings for a
// query. Each candidate contributes ExactScore, PrefixScore or
// SubstringScore (the best that applies) plus TokenScore per query token it
// contains.
func Score(candidates []string, query string) int {
	q := normalize(query)
	if q == "" {
		return 0
	}
	return score(candidates, q, strings.Fields(q))
}

func score(candidates []string, q string, tokens []string) int {
	total := 0
	for _, c := range candidates {
		c = strings.ToLower(c)
		if c == "" {
			continue
		}

		switch {
		case c == q:
			total += ExactScore
		case strings.HasPrefix(c, q):
			total += PrefixScore
		case strings.Contains(c, q):
			total += SubstringScore
		}

		for _, tok := range tokens {
			if strings.Contains(c, tok) {
				total += TokenScore
			}
		}
	}
	return total
}

func lowerAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}
