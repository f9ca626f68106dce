// Package library holds the aggregation core: title normalization, same-game
// collapsing, cross-platform duplicate detection and the query service that
// assembles the read models served over HTTP.
package library

import (
	"time"

	"gamevault/backend/internal/models"
)

// OwnedGame is one synced library row as the core operates on it: a fully
// materialized value, never a lazy database handle.
type OwnedGame struct {
	ExternalID  string          `json:"externalId"`
	Title       string          `json:"title"`
	Platform    models.Platform `json:"platform"`
	AccountName string          `json:"accountName"`
	EpicAppName string          `json:"epicAppName,omitempty"`
	SyncedAtUtc time.Time       `json:"syncedAtUtc"`
}

// DuplicateGroup is a set of owned games sharing a normalized title across
// two or more distinct platforms.
type DuplicateGroup struct {
	NormalizedTitle string      `json:"normalizedTitle"`
	Games           []OwnedGame `json:"games"`
}

// GroupItem is one raw row inside a collapsed group, kept so the UI can
// expand a group on demand.
type GroupItem struct {
	ExternalID  string    `json:"externalId"`
	EpicAppName string    `json:"epicAppName,omitempty"`
	SyncedAtUtc time.Time `json:"syncedAtUtc"`
}

// CollapsedGame is one display row standing in for every raw record of the
// same game under the same account. SyncedAtUtc carries the freshest sync
// time across the group; the remaining fields come from the representative.
type CollapsedGame struct {
	GroupKey       string          `json:"groupKey"`
	ExternalID     string          `json:"externalId"`
	Title          string          `json:"title"`
	Platform       models.Platform `json:"platform"`
	AccountName    string          `json:"accountName"`
	EpicAppName    string          `json:"epicAppName,omitempty"`
	SyncedAtUtc    time.Time       `json:"syncedAtUtc"`
	GroupItemCount int             `json:"groupItemCount"`
	GroupItems     []GroupItem     `json:"groupItems"`
}

// Owned re-expresses the collapsed entry as a plain owned-game row, which is
// what the duplicate detector consumes.
func (c CollapsedGame) Owned() OwnedGame {
	return OwnedGame{
		ExternalID:  c.ExternalID,
		Title:       c.Title,
		Platform:    c.Platform,
		AccountName: c.AccountName,
		EpicAppName: c.EpicAppName,
		SyncedAtUtc: c.SyncedAtUtc,
	}
}
