package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/notify"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/i18n"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

const DefaultChatPollInterval = 5 * time.Second

// watermark is the newest message seen so far. Numeric ids are compared
// when both sides have one, timestamps otherwise. Messages with neither are
// new when they sit past the length of the previous list.
type watermark struct {
	id    int64
	hasID bool
	ts    time.Time
	count int
}

func (w watermark) below(m models.Message, pos int, loc *time.Location) bool {
	if id, ok := m.ID.Int64(); ok {
		return !w.hasID || id > w.id
	}
	if ts, ok := m.SentAt(loc); ok {
		return ts.After(w.ts)
	}
	return pos >= w.count
}

func (w *watermark) advance(m models.Message, loc *time.Location) {
	if id, ok := m.ID.Int64(); ok && (!w.hasID || id > w.id) {
		w.id, w.hasID = id, true
	}
	if ts, ok := m.SentAt(loc); ok && ts.After(w.ts) {
		w.ts = ts
	}
}

// ChatService keeps the conversation with HR. While started it polls the
// backend every interval and notifies about new HR messages.
type ChatService struct {
	client   client.Client
	session  *SessionService
	notifier notify.Notifier
	lang     *LanguageService
	interval time.Duration
	loc      *time.Location
	log      logging.Logger

	// fetchMu serialises fetches so results are applied in issue order.
	fetchMu sync.Mutex

	mu       sync.RWMutex
	empNo    string
	messages []models.Message
	mark     watermark
	onUpdate func([]models.Message)

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewChatService(c client.Client, session *SessionService, n notify.Notifier, lang *LanguageService, interval time.Duration, log logging.Logger) *ChatService {
	if interval <= 0 {
		interval = DefaultChatPollInterval
	}
	return &ChatService{
		client:   c,
		session:  session,
		notifier: n,
		lang:     lang,
		interval: interval,
		loc:      time.Local,
		log:      log,
	}
}

// ConfigureNotifications registers the chat channel with the notifier.
func (c *ChatService) ConfigureNotifications(ctx context.Context) error {
	return c.notifier.CreateChannel(ctx, notify.ChatChannel)
}

// OnUpdate sets a callback run after every applied fetch.
func (c *ChatService) OnUpdate(fn func([]models.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

func (c *ChatService) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Message(nil), c.messages...)
}

// Start fetches at once and then every interval until Stop is called or
// ctx is done. It does nothing when already running.
func (c *ChatService) Start(ctx context.Context) error {
	if _, err := c.session.RequireEmpNo(); err != nil {
		return err
	}

	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel, c.done = cancel, done
	go c.run(ctx, done)
	return nil
}

func (c *ChatService) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	c.poll(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c *ChatService) poll(ctx context.Context) {
	if _, err := c.Refresh(ctx); err != nil && ctx.Err() == nil {
		c.log.Warn(ctx, "chat poll failed", "error", err)
	}
}

// Stop ends polling and waits for the loop to exit.
func (c *ChatService) Stop() {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel, c.done = nil, nil
}

// Running reports whether the poll loop is active.
func (c *ChatService) Running() bool {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	return c.cancel != nil
}

// Refresh fetches the conversation and replaces the held list with it.
func (c *ChatService) Refresh(ctx context.Context) ([]models.Message, error) {
	empNo, err := c.session.RequireEmpNo()
	if err != nil {
		return nil, err
	}

	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	msgs, err := c.client.ChatMessages(ctx, empNo)
	if err != nil {
		return nil, err
	}
	fresh := c.apply(empNo, msgs)
	if len(fresh) > 0 {
		c.notifyNew(ctx, fresh)
	}

	c.mu.RLock()
	fn := c.onUpdate
	c.mu.RUnlock()
	if fn != nil {
		fn(append([]models.Message(nil), msgs...))
	}
	return msgs, nil
}

// apply stores msgs and returns the HR messages above the watermark.
func (c *ChatService) apply(empNo string, msgs []models.Message) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if empNo != c.empNo {
		c.empNo = empNo
		c.mark = watermark{}
	}

	var fresh []models.Message
	next := c.mark
	for i, m := range msgs {
		if c.mark.below(m, i, c.loc) && m.FromHR() {
			fresh = append(fresh, m)
		}
		next.advance(m, c.loc)
	}
	next.count = len(msgs)
	c.mark = next
	c.messages = msgs
	return fresh
}

// notifyNew shows one notification for the batch, carrying the newest
// message.
func (c *ChatService) notifyNew(ctx context.Context, fresh []models.Message) {
	lang := i18n.Fallback
	if c.lang != nil {
		lang = c.lang.Language()
	}
	title := i18n.T(lang, "chat.newMessage")
	if len(fresh) > 1 {
		title = i18n.T(lang, "chat.newMessages", len(fresh))
	}

	n := notify.Notification{
		ChannelID: notify.ChatChannel.ID,
		Title:     title,
		Body:      fresh[len(fresh)-1].Body,
	}
	if err := c.notifier.Notify(ctx, n); err != nil {
		c.log.Warn(ctx, "chat notification failed", "error", err)
	}
}

// Send posts text to HR and refetches the conversation. Blank text is
// rejected without a request.
func (c *ChatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: %w", common.ErrorValidation, common.ErrEmptyMessage)
	}
	empNo, err := c.session.RequireEmpNo()
	if err != nil {
		return err
	}

	if err := c.client.SendChatMessage(ctx, empNo, text); err != nil {
		return err
	}
	if _, err := c.Refresh(ctx); err != nil {
		c.log.Warn(ctx, "chat refetch after send failed", "error", err)
	}
	return nil
}
