// Package syncer orchestrates platform syncs: it resolves credentials, calls
// the storefront client and hands the result to the store, which replaces the
// account's inventory wholesale.
package syncer

import (
	"context"
	"log"
	"strings"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/store"
)

const (
	credentialTypeSteamAPIKey     = "steam_api_key"
	credentialTypeEpicAccessToken = "epic_access_token"

	defaultEpicAccountName = "EpicAccount"
)

// SteamGamesClient and EpicGamesClient let tests substitute the HTTP clients.
type SteamGamesClient interface {
	GetOwnedGames(ctx context.Context, apiKey, steamID string) ([]library.OwnedGame, *apperr.Error)
}

type EpicGamesClient interface {
	GetOwnedGames(ctx context.Context, accessToken string) ([]library.OwnedGame, *apperr.Error)
}

// Syncer runs initial syncs and resyncs of saved accounts.
type Syncer struct {
	steam            SteamGamesClient
	epic             EpicGamesClient
	store            *store.Store
	fallbackSteamKey string
}

// New wires a syncer. fallbackSteamKey is the server-configured Steam API key
// used when a request does not carry one; it may be empty.
func New(steam SteamGamesClient, epic EpicGamesClient, st *store.Store, fallbackSteamKey string) *Syncer {
	return &Syncer{steam: steam, epic: epic, store: st, fallbackSteamKey: fallbackSteamKey}
}

// SteamSyncRequest is a fresh Steam sync. AccountName defaults to the
// SteamID when omitted.
type SteamSyncRequest struct {
	SteamID     string
	APIKey      string
	AccountName string
}

// EpicSyncRequest is a fresh Epic sync. AccountName defaults to a fixed
// alias because Epic exposes no stable account identifier.
type EpicSyncRequest struct {
	AccessToken string
	AccountName string
}

// SyncSteam fetches and saves a Steam library. Returns the number of synced
// games.
func (s *Syncer) SyncSteam(ctx context.Context, req SteamSyncRequest) (int, *apperr.Error) {
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(s.fallbackSteamKey)
	}
	if apiKey == "" {
		return 0, apperr.New(apperr.Validation, "Steam API Key is required.")
	}

	steamID := strings.TrimSpace(req.SteamID)
	if steamID == "" {
		return 0, apperr.New(apperr.Validation, "SteamId is required.")
	}

	log.Printf("Starting Steam sync for SteamId %s", steamID)

	games, err := s.steam.GetOwnedGames(ctx, apiKey, steamID)
	if err != nil {
		log.Printf("Steam sync failed for SteamId %s: %s", steamID, err.Message)
		return 0, err
	}

	accountName := strings.TrimSpace(req.AccountName)
	if accountName == "" {
		accountName = steamID
	}

	// Full replace per account: the stored inventory always mirrors the
	// latest successful sync.
	if err := s.store.SaveAccountAndGames(
		ctx,
		models.PlatformSteam,
		accountName,
		&steamID,
		credentialTypeSteamAPIKey,
		apiKey,
		games,
	); err != nil {
		return 0, err
	}

	log.Printf("Steam sync finished for account %s. Synced %d games.", accountName, len(games))
	return len(games), nil
}

// SyncEpic fetches and saves an Epic library. Returns the number of synced
// games.
func (s *Syncer) SyncEpic(ctx context.Context, req EpicSyncRequest) (int, *apperr.Error) {
	accessToken := strings.TrimSpace(req.AccessToken)
	if accessToken == "" {
		return 0, apperr.New(apperr.Validation, "Epic access token is required.")
	}

	accountName := strings.TrimSpace(req.AccountName)
	if accountName == "" {
		accountName = defaultEpicAccountName
	}

	log.Printf("Starting Epic sync for account alias %s", accountName)

	games, err := s.epic.GetOwnedGames(ctx, accessToken)
	if err != nil {
		log.Printf("Epic sync failed for account alias %s: %s", accountName, err.Message)
		return 0, err
	}

	if err := s.store.SaveAccountAndGames(
		ctx,
		models.PlatformEpic,
		accountName,
		nil,
		credentialTypeEpicAccessToken,
		accessToken,
		games,
	); err != nil {
		return 0, err
	}

	log.Printf("Epic sync finished for account %s. Synced %d games.", accountName, len(games))
	return len(games), nil
}

// Resync replays a saved account's stored credential through the right
// client.
func (s *Syncer) Resync(ctx context.Context, accountID int64) (int, *apperr.Error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	log.Printf("Starting resync for saved account %d (%s/%s)", account.ID, account.Platform, account.AccountName)

	switch account.Platform {
	case models.PlatformSteam:
		return s.resyncSteam(ctx, account)
	case models.PlatformEpic:
		return s.resyncEpic(ctx, account)
	default:
		return 0, apperr.New(apperr.Validation, "Unsupported platform: "+string(account.Platform))
	}
}

func (s *Syncer) resyncSteam(ctx context.Context, account *models.PlatformAccount) (int, *apperr.Error) {
	if account.ExternalAccountID == nil || strings.TrimSpace(*account.ExternalAccountID) == "" {
		return 0, apperr.New(apperr.Validation, "Steam account is missing ExternalAccountId (SteamId).")
	}
	if strings.TrimSpace(account.CredentialValue) == "" {
		return 0, apperr.New(apperr.Validation, "Steam account is missing saved API key.")
	}

	return s.SyncSteam(ctx, SteamSyncRequest{
		SteamID:     strings.TrimSpace(*account.ExternalAccountID),
		APIKey:      strings.TrimSpace(account.CredentialValue),
		AccountName: account.AccountName,
	})
}

func (s *Syncer) resyncEpic(ctx context.Context, account *models.PlatformAccount) (int, *apperr.Error) {
	if strings.TrimSpace(account.CredentialValue) == "" {
		return 0, apperr.New(apperr.Validation, "Epic account is missing saved access token.")
	}

	return s.SyncEpic(ctx, EpicSyncRequest{
		AccessToken: strings.TrimSpace(account.CredentialValue),
		AccountName: account.AccountName,
	})
}
