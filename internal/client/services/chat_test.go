package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/notify"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func msg(id int, from, body string) models.Message {
	return models.Message{
		ID:        models.FlexString(fmt.Sprint(id)),
		From:      from,
		Body:      body,
		Timestamp: models.FlexString(fmt.Sprintf("2026-10-16 09:%02d:00", id)),
	}
}

func newChat(t *testing.T, fc *fakeClient) (*ChatService, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	c := NewChatService(fc, loggedIn(t), rec, nil, 10*time.Millisecond, nop())
	require.NoError(t, c.ConfigureNotifications(context.Background()))
	return c, rec
}

func TestChat_OneNotificationPerGrowingPoll(t *testing.T) {
	a := msg(1, models.SenderEmployee, "hello")
	b := msg(2, models.SenderHR, "hi, how can we help?")
	c := msg(3, models.SenderEmployee, "payslip please")
	d := msg(4, models.SenderHR, "sent to your email")

	fc := &fakeClient{ChatRets: [][]models.Message{
		{a, b},
		{a, b, c, d},
		{a, b, c, d},
		{a, b, c, d},
	}}
	chat, rec := newChat(t, fc)
	ctx := context.Background()

	for range 4 {
		_, err := chat.Refresh(ctx)
		require.NoError(t, err)
	}

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, notify.Notification{
		ChannelID: notify.ChatChannel.ID,
		Title:     "New message from HR",
		Body:      "hi, how can we help?",
	}, sent[0])
	assert.Equal(t, "sent to your email", sent[1].Body)
	assert.Equal(t, []models.Message{a, b, c, d}, chat.Messages())
	assert.Equal(t, "E1001", fc.LastEmpNo)
}

func TestChat_EmployeeOnlyGrowthIsSilent(t *testing.T) {
	a := msg(1, models.SenderHR, "welcome")
	b := msg(2, models.SenderEmployee, "thanks")

	fc := &fakeClient{ChatRets: [][]models.Message{{a}, {a, b}}}
	chat, rec := newChat(t, fc)
	ctx := context.Background()

	_, err := chat.Refresh(ctx)
	require.NoError(t, err)
	_, err = chat.Refresh(ctx)
	require.NoError(t, err)

	assert.Len(t, rec.Sent(), 1)
}

func TestChat_SeveralNewMessagesPluralTitle(t *testing.T) {
	fc := &fakeClient{ChatRets: [][]models.Message{{
		msg(1, models.SenderHR, "first"),
		msg(2, models.SenderHR, "second"),
		msg(3, models.SenderHR, "third"),
	}}}
	chat, rec := newChat(t, fc)

	_, err := chat.Refresh(context.Background())
	require.NoError(t, err)

	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "3 new messages from HR", sent[0].Title)
	assert.Equal(t, "third", sent[0].Body)
}

func TestChat_TimestampWatermark(t *testing.T) {
	a := models.Message{From: models.SenderHR, Body: "a", Timestamp: "2026-10-16 09:00:00"}
	b := models.Message{From: models.SenderHR, Body: "b", Timestamp: "2026-10-16 09:05:00"}

	fc := &fakeClient{ChatRets: [][]models.Message{{a}, {a}, {a, b}}}
	chat, rec := newChat(t, fc)
	ctx := context.Background()

	for range 3 {
		_, err := chat.Refresh(ctx)
		require.NoError(t, err)
	}
	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "b", sent[1].Body)
}

func TestChat_OpaqueIDsFallBackToListLength(t *testing.T) {
	a := models.Message{ID: "a1f3", From: models.SenderEmployee, Body: "hello"}
	b := models.Message{ID: "b7c2", From: models.SenderHR, Body: "hi"}
	c := models.Message{ID: "c9d0", From: models.SenderHR, Body: "anything else?"}

	fc := &fakeClient{ChatRets: [][]models.Message{{a}, {a, b}, {a, b}, {a, b, c}}}
	chat, rec := newChat(t, fc)
	ctx := context.Background()

	for range 4 {
		_, err := chat.Refresh(ctx)
		require.NoError(t, err)
	}

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "hi", sent[0].Body)
	assert.Equal(t, "anything else?", sent[1].Body)
}

func TestChat_WatermarkResetsForOtherEmployee(t *testing.T) {
	a := msg(1, models.SenderHR, "for jane")
	fc := &fakeClient{ChatRets: [][]models.Message{{a}}}
	chat, rec := newChat(t, fc)
	ctx := context.Background()

	_, err := chat.Refresh(ctx)
	require.NoError(t, err)

	require.NoError(t, chat.session.SetUser(ctx, models.NewUser(map[string]any{"emp_no": "E1002"})))
	_, err = chat.Refresh(ctx)
	require.NoError(t, err)

	assert.Len(t, rec.Sent(), 2)
	assert.Equal(t, "E1002", fc.LastEmpNo)
}

func TestChat_NotifierFailureDoesNotFailPoll(t *testing.T) {
	fc := &fakeClient{ChatRets: [][]models.Message{{msg(1, models.SenderHR, "x")}}}
	chat, rec := newChat(t, fc)
	rec.Err = assert.AnError

	msgs, err := chat.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestChat_Send(t *testing.T) {
	reply := msg(1, models.SenderEmployee, "leave balance?")
	fc := &fakeClient{ChatRets: [][]models.Message{{reply}}}
	chat, _ := newChat(t, fc)
	ctx := context.Background()

	err := chat.Send(ctx, "   ")
	require.ErrorIs(t, err, common.ErrorValidation)
	require.ErrorIs(t, err, common.ErrEmptyMessage)
	assert.Equal(t, 0, fc.SendCalls)

	require.NoError(t, chat.Send(ctx, " leave balance? "))
	assert.Equal(t, 1, fc.SendCalls)
	assert.Equal(t, "leave balance?", fc.LastSendText)
	assert.Equal(t, 1, fc.chatCalls())
	assert.Equal(t, []models.Message{reply}, chat.Messages())
}

func TestChat_SendFailureSkipsRefetch(t *testing.T) {
	fc := &fakeClient{SendErr: assert.AnError}
	chat, _ := newChat(t, fc)

	require.ErrorIs(t, chat.Send(context.Background(), "hi"), assert.AnError)
	assert.Equal(t, 0, fc.chatCalls())
}

func TestChat_RequiresSession(t *testing.T) {
	fc := &fakeClient{}
	chat := NewChatService(fc, NewSessionService(setupStore(t), nop()), &notify.Recorder{}, nil, 0, nop())

	require.ErrorIs(t, chat.Start(context.Background()), common.ErrNotLoggedIn)
	_, err := chat.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	assert.False(t, chat.Running())
}

func TestChat_StartStop(t *testing.T) {
	fc := &fakeClient{ChatRets: [][]models.Message{{msg(1, models.SenderHR, "hi")}}}
	chat, rec := newChat(t, fc)

	var updates int
	chat.OnUpdate(func([]models.Message) { updates++ })

	ctx := context.Background()
	require.NoError(t, chat.Start(ctx))
	require.NoError(t, chat.Start(ctx))
	assert.True(t, chat.Running())

	require.Eventually(t, func() bool { return fc.chatCalls() >= 3 }, 2*time.Second, 5*time.Millisecond)

	chat.Stop()
	assert.False(t, chat.Running())
	calls := fc.chatCalls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, fc.chatCalls())

	assert.Len(t, rec.Sent(), 1)
	assert.Equal(t, calls, updates)

	chat.Stop()
}
