package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/boxscore"
	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/players"
	"github.com/mpcost/hoopzone/go/internal/prefs"
	"github.com/mpcost/hoopzone/go/internal/source"
)

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiError{Error: msg})
}

// handleListGames serves the scoreboard for a date (today by default).
func (s *Services) handleListGames(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	snaps, err := s.Games.ListGames(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("list games failed")
		writeError(w, http.StatusBadGateway, "could not load games")
		return
	}
	writeJSON(w, http.StatusOK, snaps)
}

// handleGetGame serves one game snapshot, from cache when warm.
func (s *Services) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "game id is required")
		return
	}

	if s.Cache != nil {
		if snap, err := s.Cache.ReadGameSnapshot(r.Context(), gameID); err == nil {
			writeJSON(w, http.StatusOK, snap)
			return
		}
	}

	snap, err := s.Games.FetchSnapshot(r.Context(), gameID)
	if errors.Is(err, source.ErrAllSourcesFailed) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("game_id", gameID).Msg("fetch game failed")
		writeError(w, http.StatusBadGateway, "could not load game")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleGetBoxScore serves an archived final box score.
func (s *Services) handleGetBoxScore(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	snap, err := s.BoxScores.GetBoxScore(r.Context(), gameID)
	if errors.Is(err, boxscore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "box score not archived")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("game_id", gameID).Msg("get box score failed")
		writeError(w, http.StatusInternalServerError, "could not load box score")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleStandings serves ranked conference tables.
func (s *Services) handleStandings(w http.ResponseWriter, r *http.Request) {
	conf := r.URL.Query().Get("conference")

	switch conf {
	case "":
		east, west, err := s.Standings.GetTables(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("standings failed")
			writeError(w, http.StatusBadGateway, "could not load standings")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"east": east, "west": west})
	case string(models.ConferenceEast), string(models.ConferenceWest):
		table, err := s.Standings.GetConference(r.Context(), models.Conference(conf))
		if err != nil {
			log.Error().Err(err).Msg("standings failed")
			writeError(w, http.StatusBadGateway, "could not load standings")
			return
		}
		writeJSON(w, http.StatusOK, table)
	default:
		writeError(w, http.StatusBadRequest, "conference must be east or west")
	}
}

// handleSearchPlayers serves one page of the player directory.
func (s *Services) handleSearchPlayers(w http.ResponseWriter, r *http.Request) {
	cursor := 0
	if v := r.URL.Query().Get("cursor"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "cursor must be a non-negative integer")
			return
		}
		cursor = parsed
	}

	page, err := s.Players.Search(r.Context(), r.URL.Query().Get("search"), cursor)
	if err != nil {
		log.Error().Err(err).Msg("player search failed")
		writeError(w, http.StatusBadGateway, "could not search players")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// handleGetPlayer serves a player profile with recent game lines.
func (s *Services) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("id")

	profile, err := s.Players.GetProfile(r.Context(), playerID)
	if errors.Is(err, players.ErrNotFound) {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("player_id", playerID).Msg("get player failed")
		writeError(w, http.StatusBadGateway, "could not load player")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Services) handleGetMyTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	pref, err := s.Prefs.GetMyTeam(r.Context(), userID)
	if errors.Is(err, prefs.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no team preference saved")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pref)
}

func (s *Services) handleSetMyTeam(w http.ResponseWriter, r *http.Request) {
	var pref models.TeamPreference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.Prefs.SetMyTeam(r.Context(), pref)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Services) handleClearMyTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	err := s.Prefs.ClearMyTeam(r.Context(), userID)
	if errors.Is(err, prefs.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no team preference saved")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
