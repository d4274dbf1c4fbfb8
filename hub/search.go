package hub

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type searchResult struct {
	position int
	title    string
	distance int
}

// rankScreens orders selector positions by how closely their titles match
// the query. Substring hits rank first, then close edit distances; anything
// further than half the title length away is dropped.
func rankScreens(titles []string, query string) []searchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]searchResult, len(titles))
		for i, t := range titles {
			out[i] = searchResult{position: i, title: t}
		}
		return out
	}
	var out []searchResult
	for i, t := range titles {
		lt := strings.ToLower(t)
		dist := levenshtein.ComputeDistance(lt, q)
		if strings.Contains(lt, q) {
			dist = 0
		}
		if dist > len(lt)/2 {
			continue
		}
		out = append(out, searchResult{position: i, title: t, distance: dist})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].distance != out[j].distance {
			return out[i].distance < out[j].distance
		}
		return out[i].title < out[j].title
	})
	return out
}
