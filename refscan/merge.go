// refscan/merge.go - overlap conflict resolution and final dedup
package refscan

import "sort"

// PruneOverlaps resolves conflicts between matches whose source spans
// overlap: the shape earlier in the priority order wins, a longer span
// breaks ties. Non-overlapping matches always survive. The result is
// ordered by source position.
func PruneOverlaps(matches []RawMatch) []RawMatch {
	if len(matches) <= 1 {
		return matches
	}

	ranked := make([]RawMatch, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Shape != ranked[j].Shape {
			return ranked[i].Shape < ranked[j].Shape
		}
		li, lj := ranked[i].End-ranked[i].Start, ranked[j].End-ranked[j].Start
		if li != lj {
			return li > lj
		}
		return ranked[i].Start < ranked[j].Start
	})

	var kept []RawMatch
	for _, m := range ranked {
		conflict := false
		for _, k := range kept {
			if m.Start < k.End && k.Start < m.End {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, m)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// DedupReferences removes later duplicates of the same VerseKey, keeping
// the first occurrence's span and original text. Input order is
// first-seen order and is preserved.
func DedupReferences(refs []ResolvedReference) []ResolvedReference {
	seen := make(map[VerseKey]struct{}, len(refs))
	out := make([]ResolvedReference, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.Key]; ok {
			continue
		}
		seen[r.Key] = struct{}{}
		out = append(out, r)
	}
	return out
}
