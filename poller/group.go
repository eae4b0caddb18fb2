package poller

import (
	"github.com/mentalisttraceur/poll/errs"
	"github.com/mentalisttraceur/poll/events"
	"github.com/mentalisttraceur/poll/utils"
)

// ParseTokens turns the positional arguments into poll groups.
//
// A descriptor token opens a new group. Event tokens accumulate into a
// mask, and the mask is handed out when the next descriptor token
// arrives (or the stream ends) to every group opened since the last
// hand-out, which is what makes "3 4 IN" ask for IN on both 3 and 4.
// Event tokens with no descriptor before them land on an implicit
// group for descriptor 0.
func ParseTokens(tokens []string) ([]Group, error) {
	groups := make([]Group, 0, len(tokens))
	applied := 0
	var mask int16
	for _, token := range tokens {
		if fd, ok := utils.ParseNonNegativeInt(token, 32); ok {
			if mask != 0 {
				groups, applied = applyMask(groups, applied, mask)
				mask = 0
			}
			groups = append(groups, Group{Fd: int32(fd)})
			continue
		}
		if flag, ok := events.Parse(token); ok {
			mask |= flag
			continue
		}
		return nil, errs.NewBadArgumentErr(token)
	}
	groups, _ = applyMask(groups, applied, mask)
	return groups, nil
}

func applyMask(groups []Group, applied int, mask int16) ([]Group, int) {
	if len(groups) == 0 {
		groups = append(groups, Group{})
	}
	for ; applied < len(groups); applied++ {
		groups[applied].Events = mask
	}
	return groups, applied
}

// Merge collapses repeated descriptors into a single group whose mask
// is the union of every mask requested for that descriptor. A handful
// of descriptors at most, so no cleverness needed.
func Merge(groups []Group) []Group {
	merged := make([]Group, 0, len(groups))
	seen := make(map[int32]int, len(groups))
	for _, group := range groups {
		if at, ok := seen[group.Fd]; ok {
			merged[at].Events |= group.Events
			continue
		}
		seen[group.Fd] = len(merged)
		merged = append(merged, group)
	}
	return merged
}
