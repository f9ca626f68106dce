package library

import (
	"sort"
	"strings"

	"gamevault/backend/internal/models"
)

// FindCrossPlatformDuplicates groups games by normalized title and keeps only
// the groups that span at least two distinct platforms. Same-platform repeats
// are just multiple accounts on one storefront, not duplicates worth flagging.
// Members keep their input order; groups come back sorted by normalized title.
func FindCrossPlatformDuplicates(games []OwnedGame) []DuplicateGroup {
	var order []string
	grouped := make(map[string][]OwnedGame)
	for _, game := range games {
		if strings.TrimSpace(game.Title) == "" {
			continue
		}
		key := NormalizeTitle(game.Title)
		if key == "" {
			// Titles that normalize away entirely cannot be matched.
			continue
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], game)
	}

	duplicates := make([]DuplicateGroup, 0)
	for _, key := range order {
		members := grouped[key]
		platforms := make(map[models.Platform]struct{}, 2)
		for _, member := range members {
			platforms[member.Platform] = struct{}{}
		}
		if len(platforms) < 2 {
			continue
		}
		duplicates = append(duplicates, DuplicateGroup{NormalizedTitle: key, Games: members})
	}

	// Keys are already lowercase alphanumerics, so ordinal order is the
	// case-insensitive order.
	sort.SliceStable(duplicates, func(i, j int) bool {
		return duplicates[i].NormalizedTitle < duplicates[j].NormalizedTitle
	})

	return duplicates
}
