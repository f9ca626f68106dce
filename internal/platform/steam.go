// Package platform holds the storefront HTTP clients. Each client returns
// games already mapped to the core's owned-game shape; all fallibility is
// reported as an upstream error with a human-readable message.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"
)

const steamDefaultBaseURL = "https://api.steampowered.com"

// SteamClient fetches a Steam account's owned games via the Web API.
type SteamClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewSteamClient creates a client against the public Steam Web API.
func NewSteamClient() *SteamClient {
	return &SteamClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    steamDefaultBaseURL,
	}
}

// NewSteamClientWithBase creates a client against a custom endpoint, used by
// tests.
func NewSteamClientWithBase(httpClient *http.Client, baseURL string) *SteamClient {
	return &SteamClient{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// GetOwnedGames calls IPlayerService/GetOwnedGames for the given SteamID64.
// A response without a games array means an empty or private library, not an
// error. Rows without a resolvable title are skipped; a missing appid falls
// back to the title as the external id.
func (c *SteamClient) GetOwnedGames(ctx context.Context, apiKey, steamID string) ([]library.OwnedGame, *apperr.Error) {
	endpoint := fmt.Sprintf(
		"%s/IPlayerService/GetOwnedGames/v1/?key=%s&steamid=%s&include_appinfo=true&include_played_free_games=true",
		c.baseURL,
		url.QueryEscape(apiKey),
		url.QueryEscape(steamID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to build Steam API request.")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("Steam API request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("Steam API request failed: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Steam API error response: status=%d body-length=%d", resp.StatusCode, len(body))
		return nil, apperr.New(apperr.Upstream,
			fmt.Sprintf("Steam API request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, apperr.New(apperr.Upstream, "Steam API response is not valid JSON.")
	}

	rawResponse, ok := root["response"]
	if !ok {
		return nil, apperr.New(apperr.Upstream, "Steam API response is invalid: missing `response`.")
	}

	var payload struct {
		Games []struct {
			AppID json.Number `json:"appid"`
			Name  string      `json:"name"`
		} `json:"games"`
	}
	if err := json.Unmarshal(rawResponse, &payload); err != nil {
		return nil, apperr.New(apperr.Upstream, "Steam API response is invalid: malformed `response`.")
	}

	// Steam omits the games array for empty or privacy-restricted
	// libraries; treat that as an empty library.
	games := make([]library.OwnedGame, 0, len(payload.Games))
	now := time.Now().UTC()
	for _, game := range payload.Games {
		title := game.Name
		if strings.TrimSpace(title) == "" {
			continue
		}
		externalID := game.AppID.String()
		if externalID == "" {
			externalID = title
		}
		games = append(games, library.OwnedGame{
			ExternalID:  externalID,
			Title:       title,
			Platform:    models.PlatformSteam,
			SyncedAtUtc: now,
		})
	}

	return games, nil
}
