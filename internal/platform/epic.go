package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/library"
	"gamevault/backend/internal/models"
)

const epicDefaultItemsURL = "https://library-service.live.use1a.on.epicgames.com/library/api/public/items?includeMetadata=true"

// EpicClient fetches an Epic account's library items with a user-supplied
// bearer token.
type EpicClient struct {
	httpClient *http.Client
	itemsURL   string
}

// NewEpicClient creates a client against the public Epic library service.
func NewEpicClient() *EpicClient {
	return &EpicClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		itemsURL:   epicDefaultItemsURL,
	}
}

// NewEpicClientWithURL creates a client against a custom endpoint, used by
// tests.
func NewEpicClientWithURL(httpClient *http.Client, itemsURL string) *EpicClient {
	return &EpicClient{httpClient: httpClient, itemsURL: itemsURL}
}

// GetOwnedGames lists the account's library items. The payload shape varies
// between deployments (bare array, or an object wrapping the array under
// records/elements/items), and titles live in several possible fields, so
// extraction is deliberately tolerant. Items without a resolvable title are
// skipped.
func (c *EpicClient) GetOwnedGames(ctx context.Context, accessToken string) ([]library.OwnedGame, *apperr.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.itemsURL, nil)
	if err != nil {
		return nil, apperr.New(apperr.Internal, "Failed to build Epic library request.")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("Epic library request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("Epic library request failed: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Epic library error response: status=%d body-length=%d", resp.StatusCode, len(body))
		return nil, apperr.New(apperr.Upstream,
			fmt.Sprintf("Epic library request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	items, appErr := extractEpicItems(body)
	if appErr != nil {
		return nil, appErr
	}

	games := make([]library.OwnedGame, 0, len(items))
	now := time.Now().UTC()
	for _, item := range items {
		title := resolveEpicTitle(item)
		if strings.TrimSpace(title) == "" {
			continue
		}
		externalID := resolveEpicID(item)
		if externalID == "" {
			externalID = title
		}
		games = append(games, library.OwnedGame{
			ExternalID:  externalID,
			Title:       title,
			Platform:    models.PlatformEpic,
			EpicAppName: readJSONString(item, "appName"),
			SyncedAtUtc: now,
		})
	}

	return games, nil
}

type jsonObject map[string]json.RawMessage

// extractEpicItems pulls the item list out of whichever wrapper the payload
// uses.
func extractEpicItems(body []byte) ([]jsonObject, *apperr.Error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var items []jsonObject
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, apperr.New(apperr.Upstream, "Epic library response is not valid JSON.")
		}
		return items, nil
	}

	var root jsonObject
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, apperr.New(apperr.Upstream, "Epic library response is not valid JSON.")
	}

	for _, field := range []string{"records", "elements", "items"} {
		raw, ok := root[field]
		if !ok {
			continue
		}
		var items []jsonObject
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		return items, nil
	}

	return nil, nil
}

func resolveEpicID(item jsonObject) string {
	for _, field := range []string{"catalogItemId", "appName", "id", "artifactId"} {
		if value := readJSONString(item, field); value != "" {
			return value
		}
	}
	return ""
}

func resolveEpicTitle(item jsonObject) string {
	directFields := []string{"sandboxName", "title", "displayName", "appName"}
	for _, field := range directFields {
		if value := readJSONString(item, field); value != "" {
			return value
		}
	}

	if metadata := readJSONObject(item, "metadata"); metadata != nil {
		for _, field := range directFields {
			if value := readJSONString(metadata, field); value != "" {
				return value
			}
		}
	}

	if catalogItem := readJSONObject(item, "catalogItem"); catalogItem != nil {
		for _, field := range []string{"sandboxName", "title", "name"} {
			if value := readJSONString(catalogItem, field); value != "" {
				return value
			}
		}
	}

	return ""
}

// readJSONString returns the field as a string, accepting both string and
// number values. Anything else reads as empty.
func readJSONString(obj jsonObject, field string) string {
	raw, ok := obj[field]
	if !ok {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}

	return ""
}

func readJSONObject(obj jsonObject, field string) jsonObject {
	raw, ok := obj[field]
	if !ok {
		return nil
	}
	var nested jsonObject
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil
	}
	return nested
}
