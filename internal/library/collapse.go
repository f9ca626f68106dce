package library

import (
	"sort"
	"strings"

	"gamevault/backend/internal/models"
)

// collapseKey identifies "the same game under the same account". Account and
// title match case- and whitespace-insensitively, but the title is NOT
// normalized: punctuation still separates titles at this stage.
type collapseKey struct {
	platform    models.Platform
	accountName string
	title       string
}

// Collapse folds raw owned-game rows into one entry per (platform, account,
// title) group. A single platform sync can legitimately emit several rows for
// one purchase (Epic bundles and DLC share a title); the collapsed entry
// carries the representative row plus every raw row as a group item.
//
// The representative is the row with the latest sync time, ties broken by
// external id ascending. The collapsed sync time is the maximum across the
// group. Output is sorted by title, account name, then platform.
func Collapse(games []OwnedGame) []CollapsedGame {
	groups := make(map[collapseKey][]OwnedGame)
	for _, game := range games {
		if strings.TrimSpace(game.Title) == "" {
			continue
		}
		key := collapseKey{
			platform:    game.Platform,
			accountName: strings.ToUpper(strings.TrimSpace(game.AccountName)),
			title:       strings.ToUpper(strings.TrimSpace(game.Title)),
		}
		groups[key] = append(groups[key], game)
	}

	collapsed := make([]CollapsedGame, 0, len(groups))
	for key, members := range groups {
		rep := members[0]
		maxSynced := members[0].SyncedAtUtc
		items := make([]GroupItem, 0, len(members))
		for i, member := range members {
			if member.SyncedAtUtc.After(maxSynced) {
				maxSynced = member.SyncedAtUtc
			}
			if i > 0 && betterRepresentative(member, rep) {
				rep = member
			}
			items = append(items, GroupItem{
				ExternalID:  member.ExternalID,
				EpicAppName: member.EpicAppName,
				SyncedAtUtc: member.SyncedAtUtc,
			})
		}

		collapsed = append(collapsed, CollapsedGame{
			GroupKey:       GroupKey(key.platform, rep.AccountName, rep.Title),
			ExternalID:     rep.ExternalID,
			Title:          rep.Title,
			Platform:       rep.Platform,
			AccountName:    rep.AccountName,
			EpicAppName:    rep.EpicAppName,
			SyncedAtUtc:    maxSynced,
			GroupItemCount: len(members),
			GroupItems:     items,
		})
	}

	sort.SliceStable(collapsed, func(i, j int) bool {
		a, b := collapsed[i], collapsed[j]
		if c := compareFold(a.Title, b.Title); c != 0 {
			return c < 0
		}
		if c := compareFold(a.AccountName, b.AccountName); c != 0 {
			return c < 0
		}
		return a.Platform < b.Platform
	})

	return collapsed
}

// GroupKey is the stable identity of a collapsed (platform, account, title)
// group, matching the grouping rules of Collapse.
func GroupKey(platform models.Platform, accountName, title string) string {
	return string(platform) + "|" +
		strings.ToUpper(strings.TrimSpace(accountName)) + "|" +
		strings.ToUpper(strings.TrimSpace(title))
}

// betterRepresentative reports whether candidate should replace current:
// later sync wins, ties fall to the lower external id.
func betterRepresentative(candidate, current OwnedGame) bool {
	if candidate.SyncedAtUtc.After(current.SyncedAtUtc) {
		return true
	}
	if candidate.SyncedAtUtc.Equal(current.SyncedAtUtc) {
		return compareFold(candidate.ExternalID, current.ExternalID) < 0
	}
	return false
}

// compareFold orders strings case-insensitively without locale rules.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}
