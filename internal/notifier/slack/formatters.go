package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/mauv0809/shuttle-score/internal/scoring"
	"github.com/mauv0809/shuttle-score/internal/session"
	"github.com/slack-go/slack"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatResultNotification creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatResultNotification(result session.Result) slack.Message {
	blocks := make([]slack.Block, 0)

	header := fmt.Sprintf("🏸 %s match finished! 🏸", cases.Title(language.English).String(string(result.Mode)))
	headerText := slack.NewTextBlockObject("plain_text", header, true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	winner := teamName(result.Formation, result.Winner, result.Mode)
	won, lost := result.GamesWonA, result.GamesWonB
	if result.Winner == scoring.SideB {
		won, lost = lost, won
	}
	summary := fmt.Sprintf("%s won %d-%d 🏆", winner, won, lost)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", summary, true, false), nil, nil))

	if len(result.Games) > 0 {
		nameA := teamName(result.Formation, scoring.SideA, result.Mode)
		nameB := teamName(result.Formation, scoring.SideB, result.Mode)
		var fields []*slack.TextBlockObject
		for i, g := range result.Games {
			text := fmt.Sprintf("Game %d\n• %s: %d\n• %s: %d", i+1, nameA, g.A, nameB, g.B)
			fields = append(fields, slack.NewTextBlockObject("plain_text", text, true, false))
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Result:", true, false), fields, nil))
	}

	duration := time.Duration(result.DurationSeconds * float64(time.Second)).Round(time.Minute)
	contextText := fmt.Sprintf("Best of %d, %d points, %s. Played in %s.", result.BestOf, result.PointsToWin, result.Mode, duration)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, false, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatScore renders the live state of a match.
func (s *Notifier) formatScore(view session.View) slack.Message {
	st := view.State
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏸 Game %d", st.GameIndex+1), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	nameA := teamName(st.Formation, scoring.SideA, view.Mode)
	nameB := teamName(st.Formation, scoring.SideB, view.Mode)
	score := fmt.Sprintf("*%s* %d - %d *%s*\nGames: %d-%d", nameA, st.Game.A, st.Game.B, nameB, st.GamesWonA, st.GamesWonB)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", score, false, false), nil, nil))

	details := []string{view.StatusText}
	if !st.MatchOver {
		details = append(details, fmt.Sprintf("Serving: %s from the %s court", servingPlayer(st, view.Mode), courtName(st.ServerCourt)))
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", strings.Join(details, "\n"), false, false)))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatMatchNotFound(query string) slack.Message {
	text := fmt.Sprintf("No active match found for %q.", query)
	return slack.NewBlockMessage(slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, false, false), nil, nil))
}

func teamName(f scoring.Formation, side scoring.Side, mode scoring.Mode) string {
	p := f.A
	if side == scoring.SideB {
		p = f.B
	}
	if mode == scoring.Singles || p.Right == "" {
		return p.Left
	}
	return p.Left + " & " + p.Right
}

// servingPlayer is whoever of the serving pair stands in the service court.
func servingPlayer(st scoring.MatchState, mode scoring.Mode) string {
	p := st.Formation.A
	if st.Server == scoring.SideB {
		p = st.Formation.B
	}
	if mode == scoring.Singles || st.ServerCourt == scoring.CourtLeft {
		return p.Left
	}
	return p.Right
}

func courtName(c scoring.Court) string {
	if c == scoring.CourtLeft {
		return "left"
	}
	return "right"
}
