package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/scoring"
	"github.com/mauv0809/shuttle-score/internal/session"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

var doubles = scoring.Formation{
	A: scoring.Pair{Left: "Kento", Right: "Yuta"},
	B: scoring.Pair{Left: "Viktor", Right: "Anders"},
}

func testResult() session.Result {
	return session.Result{
		SessionID:   "s1",
		Mode:        scoring.Doubles,
		BestOf:      3,
		PointsToWin: 21,
		Winner:      scoring.SideB,
		GamesWonA:   1,
		GamesWonB:   2,
		Games: []scoring.GameState{
			{A: 21, B: 18, Over: true, Winner: scoring.SideA},
			{A: 19, B: 21, Over: true, Winner: scoring.SideB},
			{A: 29, B: 30, Over: true, Winner: scoring.SideB},
		},
		Formation:       doubles,
		DurationSeconds: (72 * time.Minute).Seconds(),
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(context.Background(), message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestNewNotifier_WithoutTokenOnlyLogs(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewNotifier("", "C123", metrics)

	require.NoError(t, notifier.SendResultNotification(context.Background(), testResult(), false))
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(context.Background(), message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(context.Background(), slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendResultNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	err := notifier.SendResultNotification(context.Background(), testResult(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendResultNotification")
}

func TestFormatResultNotification(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatResultNotification(testResult())
	require.Len(t, msg.Blocks.BlockSet, 4, "Expected 4 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🏸 Doubles match finished! 🏸", header.Text.Text)

	summary, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Viktor & Anders won 2-1 🏆", summary.Text.Text)

	games, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	require.Len(t, games.Fields, 3)
	assert.Equal(t, "Game 3\n• Kento & Yuta: 29\n• Viktor & Anders: 30", games.Fields[2].Text)

	footer, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, footer.ContextElements.Elements, 1)
	text, ok := footer.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Best of 3, 21 points, doubles. Played in 1h12m0s.", text.Text)
}

func TestFormatScore(t *testing.T) {
	state := scoring.NewMatch(doubles)
	state.Game = scoring.GameState{A: 5, B: 3}
	state.ServerCourt = scoring.CourtLeft
	view := session.View{Mode: scoring.Doubles, State: state, StatusText: "Playing"}

	client := &Notifier{channelID: "C123"}
	msg := client.formatScore(view)
	require.Len(t, msg.Blocks.BlockSet, 3)

	score, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Kento & Yuta* 5 - 3 *Viktor & Anders*\nGames: 0-0", score.Text.Text)

	footer, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := footer.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Playing\nServing: Kento from the left court", text.Text)
}

func TestTeamName(t *testing.T) {
	singles := scoring.Formation{A: scoring.Pair{Left: "Lin"}, B: scoring.Pair{Left: "Lee"}}
	assert.Equal(t, "Lin", teamName(singles, scoring.SideA, scoring.Singles))
	assert.Equal(t, "Viktor & Anders", teamName(doubles, scoring.SideB, scoring.Doubles))
	assert.Equal(t, "Viktor", teamName(doubles, scoring.SideB, scoring.Singles))
}
