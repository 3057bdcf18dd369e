package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/otychat/server/internal/game"
)

const maxListLimit = 100

type LeaderboardHandler struct {
	board game.Leaderboard
	feed  game.Feed
	size  int
}

func NewLeaderboardHandler(board game.Leaderboard, feed game.Feed, size int) *LeaderboardHandler {
	return &LeaderboardHandler{board: board, feed: feed, size: size}
}

// limitParam reads ?limit=, falling back to def and capping at maxListLimit
func limitParam(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxListLimit)
}

// GetLeaderboard returns the four rankings
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	boards, err := h.board.Top(r.Context(), limitParam(r, h.size))
	if err != nil {
		log.Printf("[API] Failed to load leaderboards: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load leaderboards")
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

// GetFeed returns recent activity, newest first
func (h *LeaderboardHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.feed.Recent(r.Context(), limitParam(r, 0))
	if err != nil {
		log.Printf("[API] Failed to load feed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load feed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
