package library

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GameSource supplies the fully-materialized game set the in-memory pipeline
// runs over.
type GameSource interface {
	GetAllGames(ctx context.Context) ([]OwnedGame, *apperr.Error)
}

// QueryService produces the two library read models: the collapsed summary
// with duplicate groups, and the filtered paginated grouped listing.
type QueryService struct {
	db     *gorm.DB
	source GameSource
}

// NewQueryService wires a query service over the given connection and source.
func NewQueryService(db *gorm.DB, source GameSource) *QueryService {
	return &QueryService{db: db, source: source}
}

// LibraryResponse is the aggregate library view.
type LibraryResponse struct {
	TotalGames      int              `json:"totalGames"`
	DuplicateGroups int              `json:"duplicateGroups"`
	Games           []CollapsedGame  `json:"games"`
	Duplicates      []DuplicateGroup `json:"duplicates"`
}

// GetLibrary collapses the full game set and detects cross-platform
// duplicates over the collapsed entries. The collapsed list itself is only
// included when includeGames is set, so callers can poll counts cheaply.
func (s *QueryService) GetLibrary(ctx context.Context, includeGames bool) (*LibraryResponse, *apperr.Error) {
	allGames, err := s.source.GetAllGames(ctx)
	if err != nil {
		return nil, err
	}

	collapsed := Collapse(allGames)
	representatives := make([]OwnedGame, 0, len(collapsed))
	for _, entry := range collapsed {
		representatives = append(representatives, entry.Owned())
	}
	duplicates := FindCrossPlatformDuplicates(representatives)

	games := []CollapsedGame{}
	if includeGames {
		games = collapsed
	}

	return &LibraryResponse{
		TotalGames:      len(collapsed),
		DuplicateGroups: len(duplicates),
		Games:           games,
		Duplicates:      duplicates,
	}, nil
}

// LibraryGamesQuery carries the filters and paging of the grouped listing.
type LibraryGamesQuery struct {
	GameTitle         string
	Platform          *models.Platform
	AccountName       string
	AccountExternalID string
	PageNumber        int
	PageSize          int
}

// LibraryGameListItem is one collapsed group in the paged listing.
type LibraryGameListItem struct {
	GroupKey          string          `json:"groupKey"`
	Title             string          `json:"title"`
	Platform          models.Platform `json:"platform"`
	AccountName       string          `json:"accountName"`
	AccountExternalID *string         `json:"accountExternalId"`
	SyncedAtUtc       time.Time       `json:"syncedAtUtc"`
	GroupItemCount    int             `json:"groupItemCount"`
	EpicAppName       string          `json:"epicAppName,omitempty"`
	GroupItems        []GroupItem     `json:"groupItems"`
}

// LibraryGamesPageResponse is one page of collapsed groups.
type LibraryGamesPageResponse struct {
	PageNumber int                   `json:"pageNumber"`
	PageSize   int                   `json:"pageSize"`
	TotalCount int64                 `json:"totalCount"`
	Items      []LibraryGameListItem `json:"items"`
}

// pageGroupRow is the scan target of the grouped page query. Groups key on
// the account id, not the display name, so renaming an account never
// regroups its rows.
type pageGroupRow struct {
	AccountID         int64
	Platform          models.Platform
	AccountName       string
	ExternalAccountID *string
	Title             string
}

// Title grouping trims before folding case so it matches pageGroupKey, which
// buckets the child rows.
const pageGroupBy = "owned_games.account_id, owned_games.platform, owned_games.account_name, platform_accounts.external_account_id, UPPER(TRIM(owned_games.title))"

// GetLibraryGamesPage filters owned games, groups them per account and title,
// and paginates the groups. Every group on the page is returned with all of
// its raw rows attached for expand-on-demand display.
func (s *QueryService) GetLibraryGamesPage(ctx context.Context, query LibraryGamesQuery) (*LibraryGamesPageResponse, *apperr.Error) {
	pageNumber := query.PageNumber
	if pageNumber <= 0 {
		pageNumber = 1
	}
	pageSize := query.PageSize
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	// Count distinct groups through a subquery; counting a grouped query
	// directly miscounts.
	subQuery := s.filteredQuery(ctx, query).
		Group(pageGroupBy).
		Select("owned_games.account_id")
	var totalCount int64
	if err := s.db.WithContext(ctx).Table("(?) as sub", subQuery).Count(&totalCount).Error; err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to count library games.")
	}

	var groupRows []pageGroupRow
	err := s.filteredQuery(ctx, query).
		Select("owned_games.account_id AS account_id, " +
			"owned_games.platform AS platform, " +
			"owned_games.account_name AS account_name, " +
			"platform_accounts.external_account_id AS external_account_id, " +
			"MAX(owned_games.title) AS title").
		Group(pageGroupBy).
		Order("LOWER(MAX(owned_games.title)), LOWER(owned_games.account_name), owned_games.platform").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Scan(&groupRows).Error
	if err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to query library games.")
	}

	items, appErr := s.attachGroupItems(ctx, groupRows)
	if appErr != nil {
		return nil, appErr
	}

	return &LibraryGamesPageResponse{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Items:      items,
	}, nil
}

// filteredQuery builds a fresh joined query with the request filters applied.
// Substring filters compare lowercased on both sides so behavior matches
// across backends.
func (s *QueryService) filteredQuery(ctx context.Context, query LibraryGamesQuery) *gorm.DB {
	db := s.db.WithContext(ctx).
		Model(&models.OwnedGame{}).
		Joins("JOIN platform_accounts ON platform_accounts.id = owned_games.account_id")

	if title := strings.TrimSpace(query.GameTitle); title != "" {
		db = db.Where("LOWER(owned_games.title) LIKE ?", containsPattern(title))
	}
	if query.Platform != nil {
		db = db.Where("owned_games.platform = ?", *query.Platform)
	}
	if accountName := strings.TrimSpace(query.AccountName); accountName != "" {
		db = db.Where("LOWER(owned_games.account_name) LIKE ?", containsPattern(accountName))
	}
	if externalID := strings.TrimSpace(query.AccountExternalID); externalID != "" {
		db = db.Where("LOWER(COALESCE(platform_accounts.external_account_id, '')) LIKE ?", containsPattern(externalID))
	}

	return db
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// attachGroupItems loads every raw row of the page's groups in one query and
// folds them under their group. Item count, freshest sync time and the
// representative epic app name are derived from the full row set, not just
// the rows the filters matched.
func (s *QueryService) attachGroupItems(ctx context.Context, groupRows []pageGroupRow) ([]LibraryGameListItem, *apperr.Error) {
	items := make([]LibraryGameListItem, 0, len(groupRows))
	if len(groupRows) == 0 {
		return items, nil
	}

	accountIDs := make([]int64, 0, len(groupRows))
	seen := make(map[int64]struct{}, len(groupRows))
	for _, row := range groupRows {
		if _, ok := seen[row.AccountID]; !ok {
			seen[row.AccountID] = struct{}{}
			accountIDs = append(accountIDs, row.AccountID)
		}
	}

	var children []models.OwnedGame
	if err := s.db.WithContext(ctx).
		Where("account_id IN ?", accountIDs).
		Find(&children).Error; err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to load library game details.")
	}

	byGroup := make(map[string][]models.OwnedGame)
	for _, child := range children {
		key := pageGroupKey(child.AccountID, child.Title)
		byGroup[key] = append(byGroup[key], child)
	}

	for _, row := range groupRows {
		members := byGroup[pageGroupKey(row.AccountID, row.Title)]
		if len(members) == 0 {
			continue
		}

		sort.SliceStable(members, func(i, j int) bool {
			return compareFold(members[i].ExternalGameID, members[j].ExternalGameID) < 0
		})

		representative := members[0]
		maxSynced := members[0].SyncedAtUtc
		groupItems := make([]GroupItem, 0, len(members))
		for _, member := range members {
			if member.SyncedAtUtc.After(maxSynced) {
				maxSynced = member.SyncedAtUtc
			}
			if member.SyncedAtUtc.After(representative.SyncedAtUtc) {
				representative = member
			}
			groupItems = append(groupItems, GroupItem{
				ExternalID:  member.ExternalGameID,
				EpicAppName: optionalString(member.EpicAppName),
				SyncedAtUtc: member.SyncedAtUtc,
			})
		}

		items = append(items, LibraryGameListItem{
			GroupKey:          pageGroupKey(row.AccountID, row.Title),
			Title:             row.Title,
			Platform:          row.Platform,
			AccountName:       row.AccountName,
			AccountExternalID: row.ExternalAccountID,
			SyncedAtUtc:       maxSynced,
			GroupItemCount:    len(members),
			EpicAppName:       optionalString(representative.EpicAppName),
			GroupItems:        groupItems,
		})
	}

	return items, nil
}

func pageGroupKey(accountID int64, title string) string {
	return fmt.Sprintf("%d|%s", accountID, strings.ToUpper(strings.TrimSpace(title)))
}

func optionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
