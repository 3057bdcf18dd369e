package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/models"
)

const (
	maxEmojiLength    = 8
	maxQuestionLength = 280
	maxMessageLength  = 280
	maxDrawingBytes   = 512 << 10
	kudosCooldown     = time.Hour
	maxSuggestions    = 3
)

func (c *Coordinator) reject(m *member, a Action, reason, msg string) {
	c.out.ToConn(m.conn, Rejected{Action: a.ActionType(), Reason: reason, Message: msg})
}

func (c *Coordinator) sendReaction(ctx context.Context, m *member, a SendReaction) error {
	emoji := strings.TrimSpace(a.Emoji)
	if emoji == "" || utf8.RuneCountInString(emoji) > maxEmojiLength {
		c.reject(m, a, ReasonInvalidInput, "Invalid reaction")
		return nil
	}

	if c.presentation != nil {
		if err := c.db.IncrementStat(ctx, m.userID, c.presentation.ID, database.StatReactions, 1); err != nil {
			return err
		}
		c.rank(ctx, m.name, models.MetricReactions, 1)
	}
	if err := c.awardXP(ctx, m.userID, xpReaction); err != nil {
		return err
	}

	c.out.ToAll(EmojiBlast{Name: m.name, Emoji: emoji})
	c.publish(ctx, models.FeedItem{Kind: models.FeedReaction, Name: m.name, Icon: emoji})
	return c.checkAchievements(ctx, m.userID, achievements.Flags{})
}

// sendQuestion only takes questions while a presentation is live; they are
// attached to it and counted on its stat row.
func (c *Coordinator) sendQuestion(ctx context.Context, m *member, a SendQuestion) error {
	text := strings.TrimSpace(a.Text)
	if (text == "" && a.Drawing == "") ||
		utf8.RuneCountInString(text) > maxQuestionLength ||
		len(a.Drawing) > maxDrawingBytes {
		c.reject(m, a, ReasonInvalidInput, "A question needs text or a drawing")
		return nil
	}
	if c.presentation == nil {
		c.reject(m, a, ReasonNotLive, "No presentation is running")
		return nil
	}
	isDrawing := a.Drawing != ""

	presID := c.presentation.ID
	q, err := c.db.CreateQuestion(ctx, m.userID, presID, text, a.Drawing, c.now())
	if err != nil {
		return err
	}
	if err := c.db.IncrementStat(ctx, m.userID, presID, database.StatQuestions, 1); err != nil {
		return err
	}

	xp := int64(xpQuestion)
	if isDrawing {
		xp = xpDrawing
	}
	if err := c.awardXP(ctx, m.userID, xp); err != nil {
		return err
	}

	c.out.ToAll(QuestionAdded{Question: *q})
	if isDrawing {
		c.out.ToRole(RoleDisplay, DrawingBlast{Name: m.name, Text: text, Drawing: a.Drawing})
		c.publish(ctx, models.FeedItem{Kind: models.FeedDrawing, Name: m.name, Icon: "🎨"})
	} else {
		c.publish(ctx, models.FeedItem{Kind: models.FeedQuestion, Name: m.name, Detail: text, Icon: "❓"})
	}
	log.Printf("[Game] %s asked question %d", m.name, q.ID)
	return c.checkAchievements(ctx, m.userID, achievements.Flags{Drawing: isDrawing})
}

func (c *Coordinator) upvoteQuestion(ctx context.Context, m *member, a UpvoteQuestion) error {
	q, err := c.db.GetQuestion(ctx, a.QuestionID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	counted, votes, err := c.db.UpvoteQuestion(ctx, q.ID, m.userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !counted {
		return nil
	}

	c.out.ToAll(QuestionUpvoted{QuestionID: q.ID, Votes: votes})
	if q.UserID == m.userID {
		return nil
	}
	if err := c.awardXP(ctx, q.UserID, xpUpvoteReceived); err != nil {
		return err
	}
	return c.checkAchievements(ctx, q.UserID, achievements.Flags{QuestionVotes: votes})
}

func (c *Coordinator) logDrink(ctx context.Context, m *member) error {
	if c.presentation == nil {
		c.reject(m, LogDrink{}, ReasonNotLive, "No presentation is running")
		return nil
	}
	presID := c.presentation.ID
	if err := c.db.IncrementStat(ctx, m.userID, presID, database.StatDrinks, 1); err != nil {
		return err
	}
	if err := c.awardXP(ctx, m.userID, xpDrink); err != nil {
		return err
	}

	session, err := c.db.SessionStats(ctx, m.userID, presID)
	if err != nil {
		return err
	}
	total, err := c.db.TotalDrinks(ctx, presID)
	if err != nil {
		return err
	}
	c.out.ToAll(DrinkLogged{Name: m.name, Count: session.Drinks, TotalDrinks: total})
	c.publish(ctx, models.FeedItem{Kind: models.FeedDrink, Name: m.name, Icon: "🍺"})
	return c.checkAchievements(ctx, m.userID, achievements.Flags{})
}

// sendDM delivers only to a connected recipient; otherwise it is dropped.
func (c *Coordinator) sendDM(ctx context.Context, m *member, a SendDM) error {
	text := strings.TrimSpace(a.Text)
	if (text == "" && a.Drawing == "") ||
		utf8.RuneCountInString(text) > maxMessageLength ||
		len(a.Drawing) > maxDrawingBytes {
		c.reject(m, a, ReasonInvalidInput, "A message needs text or a drawing")
		return nil
	}
	name, _ := NormalizeName(a.To)
	to := c.memberByName(name)
	if to == nil {
		return nil
	}

	c.toIdentity(to.userID, DMReceived{From: m.name, Text: text, Drawing: a.Drawing, At: c.now()})
	if err := c.awardXP(ctx, m.userID, xpDM); err != nil {
		return err
	}
	return c.checkAchievements(ctx, m.userID, achievements.Flags{DM: true})
}

func (c *Coordinator) sendKudos(ctx context.Context, m *member, a SendKudos) error {
	to, _ := NormalizeName(a.To)
	message := strings.TrimSpace(a.Message)
	if utf8.RuneCountInString(message) > maxMessageLength {
		c.reject(m, a, ReasonInvalidInput, "Message too long")
		return nil
	}
	if to == m.name {
		c.out.ToConn(m.conn, KudosResult{To: to, Reason: ReasonSelfKudos, Message: "You can't send kudos to yourself"})
		return nil
	}

	toID, err := c.db.UserIDByName(ctx, to)
	if errors.Is(err, database.ErrNotFound) {
		suggestions, err := c.suggestNames(ctx, to, m.name)
		if err != nil {
			return err
		}
		c.out.ToConn(m.conn, KudosResult{
			To:          to,
			Reason:      ReasonUnknownUser,
			Message:     fmt.Sprintf("No trainer named %q", to),
			Suggestions: suggestions,
		})
		return nil
	}
	if err != nil {
		return err
	}

	now := c.now()
	last, ok, err := c.db.LastKudos(ctx, m.userID, toID)
	if err != nil {
		return err
	}
	if ok && now.Sub(last) < kudosCooldown {
		wait := kudosCooldown - now.Sub(last)
		c.out.ToConn(m.conn, KudosResult{
			To:         to,
			Reason:     ReasonCooldown,
			Message:    fmt.Sprintf("You can send %s kudos again in %d minutes", to, int(wait.Minutes())+1),
			RetryAfter: int64(wait.Seconds()) + 1,
		})
		return nil
	}

	if err := c.db.AddKudos(ctx, m.userID, toID, message, now); err != nil {
		return err
	}
	c.out.ToConn(m.conn, KudosResult{OK: true, To: to})

	ev := KudosSent{From: m.name, To: to, Message: message}
	c.out.ToRole(RoleDisplay, ev)
	if c.isOnline(toID) {
		c.toIdentity(toID, ev)
	} else if err := c.notifier.Notify(ctx, to, "Kudos from "+m.name, message); err != nil {
		log.Printf("[Game] Failed to notify %s: %v", to, err)
	}
	c.publish(ctx, models.FeedItem{Kind: models.FeedKudos, Name: m.name, Target: to, Detail: message, Icon: "🙌"})
	return nil
}

// suggestNames returns the closest known names to a mistyped one.
func (c *Coordinator) suggestNames(ctx context.Context, pattern, exclude string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}
	names, err := c.db.ListUserNames(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, match := range fuzzy.Find(pattern, names) {
		if match.Str == exclude {
			continue
		}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out, nil
}
