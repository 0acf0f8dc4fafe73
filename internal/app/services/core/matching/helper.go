package matching

import (
	"sort"
	"strings"
)

// assignment pairs one senior with the wire timestamp chosen for the meeting.
type assignment struct {
	SeniorID int
	Time     string
}

// matchSeniors computes the largest possible assignment of a nurse's seniors
// to distinct meeting times. A senior can only take a time that appears both
// in the nurse's availability and in the guardian's request, restricted to the
// target date. Input order never changes the result: seniors are visited by
// ascending ID and candidate times in ascending wire order.
func matchSeniors(available []string, requests map[int][]string, targetDate string) []assignment {
	availableSet := make(map[string]struct{}, len(available))
	for _, t := range available {
		if strings.HasPrefix(t, targetDate) {
			availableSet[t] = struct{}{}
		}
	}

	seniorIDs := make([]int, 0, len(requests))
	for seniorID := range requests {
		seniorIDs = append(seniorIDs, seniorID)
	}
	sort.Ints(seniorIDs)

	candidates := make([][]string, len(seniorIDs))
	for i, seniorID := range seniorIDs {
		var common []string
		for _, t := range requests[seniorID] {
			if _, ok := availableSet[t]; ok {
				common = append(common, t)
			}
		}
		sort.Strings(common)
		candidates[i] = common
	}

	var best []assignment
	current := make([]assignment, 0, len(seniorIDs))
	used := make(map[string]struct{})

	var backtrack func(i int)
	backtrack = func(i int) {
		// Even matching every remaining senior cannot beat the best
		// found so far.
		if len(current)+(len(seniorIDs)-i) <= len(best) {
			return
		}
		if i == len(seniorIDs) {
			best = append([]assignment(nil), current...)
			return
		}

		for _, t := range candidates[i] {
			if _, taken := used[t]; taken {
				continue
			}
			used[t] = struct{}{}
			current = append(current, assignment{SeniorID: seniorIDs[i], Time: t})
			backtrack(i + 1)
			current = current[:len(current)-1]
			delete(used, t)
		}

		// Leaving this senior unmatched may still allow a better overall
		// assignment for the rest.
		backtrack(i + 1)
	}
	backtrack(0)

	sort.Slice(best, func(i, j int) bool { return best[i].SeniorID < best[j].SeniorID })
	return best
}
