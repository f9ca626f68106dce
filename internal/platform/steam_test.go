package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamevault/backend/internal/apperr"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/syncer"
)

// The concrete clients must keep satisfying the syncer's client interfaces.
var (
	_ syncer.SteamGamesClient = (*SteamClient)(nil)
	_ syncer.EpicGamesClient  = (*EpicClient)(nil)
)

func newSteamTestServer(t *testing.T, handler http.HandlerFunc) *SteamClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSteamClientWithBase(server.Client(), server.URL)
}

func TestSteamGetOwnedGames(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IPlayerService/GetOwnedGames/v1/", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "76561198000000001", r.URL.Query().Get("steamid"))
		assert.Equal(t, "true", r.URL.Query().Get("include_appinfo"))
		assert.Equal(t, "true", r.URL.Query().Get("include_played_free_games"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"game_count":2,"games":[
			{"appid":620,"name":"Portal 2","playtime_forever":120},
			{"appid":570,"name":"Dota 2","playtime_forever":9000}
		]}}`))
	})

	games, err := client.GetOwnedGames(context.Background(), "test-key", "76561198000000001")
	require.Nil(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "620", games[0].ExternalID)
	assert.Equal(t, "Portal 2", games[0].Title)
	assert.Equal(t, models.PlatformSteam, games[0].Platform)
	assert.False(t, games[0].SyncedAtUtc.IsZero())
}

func TestSteamGetOwnedGames_MissingGamesIsEmptyLibrary(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{}}`))
	})

	games, err := client.GetOwnedGames(context.Background(), "test-key", "76561198000000001")
	require.Nil(t, err)
	assert.Empty(t, games)
}

func TestSteamGetOwnedGames_MissingResponseIsUpstreamError(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.GetOwnedGames(context.Background(), "test-key", "76561198000000001")
	require.NotNil(t, err)
	assert.Equal(t, apperr.Upstream, err.Kind)
	assert.Contains(t, err.Message, "missing `response`")
}

func TestSteamGetOwnedGames_HTTPError(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.GetOwnedGames(context.Background(), "bad-key", "76561198000000001")
	require.NotNil(t, err)
	assert.Equal(t, apperr.Upstream, err.Kind)
	assert.Contains(t, err.Message, "403")
}

func TestSteamGetOwnedGames_SkipsUnnamedRows(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"games":[
			{"appid":1,"name":"  "},
			{"appid":2,"name":"Kept"}
		]}}`))
	})

	games, err := client.GetOwnedGames(context.Background(), "test-key", "76561198000000001")
	require.Nil(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Kept", games[0].Title)
}

func TestSteamGetOwnedGames_InvalidJSON(t *testing.T) {
	client := newSteamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.GetOwnedGames(context.Background(), "test-key", "76561198000000001")
	require.NotNil(t, err)
	assert.Equal(t, apperr.Upstream, err.Kind)
}
