package engine

import (
	"sort"

	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

// Dedupe drops structurally identical findings and fixes an order so two
// evaluations of the same job compare equal. Finding is comparable, so the
// struct itself is the dedup key; there is no derived key that could
// collide. The order carries no meaning; line 0 (whole file) sorts like any
// other line number. Idempotent.
func Dedupe(in []model.Finding) []model.Finding {
	seen := make(map[model.Finding]struct{}, len(in))
	var out []model.Finding
	for _, f := range in {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		if out[i].IssueType != out[j].IssueType {
			return out[i].IssueType < out[j].IssueType
		}
		return out[i].Description < out[j].Description
	})
	return out
}
