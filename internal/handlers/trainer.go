package handlers

import (
	"errors"
	"log"
	"net/http"
	"slices"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/game"
	"github.com/otychat/server/internal/models"
)

type TrainerHandler struct {
	db           *database.DB
	roster       Roster
	achievements *achievements.Set
}

func NewTrainerHandler(db *database.DB, roster Roster, set *achievements.Set) *TrainerHandler {
	if set == nil {
		set = achievements.Default()
	}
	return &TrainerHandler{db: db, roster: roster, achievements: set}
}

// TrainerCard is the public profile of a trainer
type TrainerCard struct {
	Name         string                                         `json:"name"`
	Title        string                                         `json:"title"`
	Level        int                                            `json:"level"`
	XP           int64                                          `json:"xp"`
	CurrentZone  string                                         `json:"current_zone"`
	Avatar       string                                         `json:"avatar,omitempty"`
	Status       string                                         `json:"status,omitempty"`
	NameColor    string                                         `json:"name_color,omitempty"`
	Creatures    models.CreatureCounts                          `json:"creatures"`
	Achievements []string                                       `json:"achievements"`
	Progress     map[achievements.Metric]achievements.Milestone `json:"progress"`
	Kudos        models.KudosCounts                             `json:"kudos"`
	Online       bool                                           `json:"online"`
}

// GetTrainer returns the public card for /api/trainers/{name}
func (h *TrainerHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, ok := game.NormalizeName(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid trainer name")
		return
	}

	ctx := r.Context()
	user, err := h.db.GetUserByName(ctx, name)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Trainer not found")
		return
	}
	if err != nil {
		log.Printf("[API] Failed to fetch trainer %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	card := TrainerCard{
		Name:        user.Name,
		Title:       user.Title,
		Level:       user.Level,
		XP:          user.XP,
		CurrentZone: user.CurrentZone,
		Avatar:      user.Avatar,
		Status:      user.Status,
		NameColor:   user.NameColor,
	}
	if card.Creatures, err = h.db.CreatureCounts(ctx, user.ID); err != nil {
		log.Printf("[API] Failed to count creatures for %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if card.Kudos, err = h.db.KudosCounts(ctx, user.ID); err != nil {
		log.Printf("[API] Failed to count kudos for %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	lifetime, err := h.db.LifetimeStats(ctx, user.ID)
	if err != nil {
		log.Printf("[API] Failed to load stats for %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	card.Progress = h.achievements.Progress(achievements.Stats{
		Reactions: lifetime.Reactions,
		Questions: lifetime.Questions,
		Drinks:    lifetime.Drinks,
		Caught:    card.Creatures.Total,
	})

	unlocked, err := h.db.UnlockedAchievements(ctx, user.ID)
	if err != nil {
		log.Printf("[API] Failed to load achievements for %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	card.Achievements = make([]string, 0, len(unlocked))
	for id := range unlocked {
		card.Achievements = append(card.Achievements, id)
	}
	slices.Sort(card.Achievements)

	for _, t := range h.roster.Online() {
		if t.Name == user.Name {
			card.Online = true
			break
		}
	}

	writeJSON(w, http.StatusOK, card)
}
