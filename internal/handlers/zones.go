package handlers

import (
	"net/http"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/game"
)

// Roster lists the connected trainers
type Roster interface {
	Online() []game.OnlineTrainer
}

type ZoneHandler struct {
	roster Roster
}

func NewZoneHandler(roster Roster) *ZoneHandler {
	return &ZoneHandler{roster: roster}
}

// ZoneSummary is a zone with its current trainer count
type ZoneSummary struct {
	*catalog.Zone
	Online int `json:"online"`
}

// GetZones returns all zones with the number of trainers currently in each
func (h *ZoneHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	online := make(map[string]int)
	for _, t := range h.roster.Online() {
		online[t.Zone]++
	}

	zones := catalog.GetAllZones()
	out := make([]ZoneSummary, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneSummary{Zone: z, Online: online[z.ID]})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"zones":        out,
		"requirements": catalog.ZoneRequirements(),
	})
}
