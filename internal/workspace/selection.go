package workspace

// ContainsID reports whether id is in ids.
func ContainsID(ids []string, id string) bool {
	for _, item := range ids {
		if item == id {
			return true
		}
	}
	return false
}

// ToggleID removes id when present. When absent it appends id unless the
// selection already holds max entries, in which case the call is a no-op.
func ToggleID(ids []string, id string, max int) []string {
	if ContainsID(ids, id) {
		out := make([]string, 0, len(ids)-1)
		for _, item := range ids {
			if item == id {
				continue
			}
			out = append(out, item)
		}
		return out
	}
	if len(ids) >= max {
		return ids
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// SelectAll unions candidates into ids, inserting only while the result
// holds fewer than max entries. Candidates beyond the cap are skipped;
// a partial fill near the cap is expected.
func SelectAll(ids []string, candidates []string, max int) []string {
	out := append([]string(nil), ids...)
	for _, id := range candidates {
		if len(out) >= max {
			break
		}
		if ContainsID(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// DeselectAll removes every candidate from ids.
func DeselectAll(ids []string, candidates []string) []string {
	drop := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		drop[id] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, exists := drop[id]; exists {
			continue
		}
		out = append(out, id)
	}
	return out
}
