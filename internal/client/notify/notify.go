// Package notify delivers local notifications. Channels are registered
// once at startup; every notification names the channel it belongs to.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

type Importance string

const (
	ImportanceDefault Importance = "default"
	ImportanceHigh    Importance = "high"
	ImportanceMax     Importance = "max"
)

type Channel struct {
	ID         string
	Name       string
	Importance Importance
	Sound      string
	Vibration  []time.Duration
	LightColor string
}

// ChatChannel carries new messages from HR.
var ChatChannel = Channel{
	ID:         "chat-messages",
	Name:       "Chat Messages",
	Importance: ImportanceMax,
	Sound:      "default",
	Vibration:  []time.Duration{0, 250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond},
	LightColor: "#FF231F7C",
}

type Notification struct {
	ChannelID string
	Title     string
	Body      string
}

type Notifier interface {
	CreateChannel(ctx context.Context, ch Channel) error
	Notify(ctx context.Context, n Notification) error
}

// Console writes notifications to a terminal, ringing the bell for
// channels with sound.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	channels map[string]Channel
	log      logging.Logger
	now      func() time.Time
}

func NewConsole(w io.Writer, log logging.Logger) *Console {
	return &Console{
		w:        w,
		channels: map[string]Channel{},
		log:      log,
		now:      time.Now,
	}
}

func (c *Console) CreateChannel(ctx context.Context, ch Channel) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[ch.ID] = ch
	c.log.Debug(ctx, "notification channel created", "channel", ch.ID, "importance", ch.Importance)
	return nil
}

func (c *Console) Notify(ctx context.Context, n Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch, ok := c.channels[n.ChannelID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, n.ChannelID)
	}

	bell := ""
	if ch.Sound != "" {
		bell = "\a"
	}
	_, err := fmt.Fprintf(c.w, "%s[%s] %s: %s\n", bell, c.now().Format("15:04"), n.Title, n.Body)
	if err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	c.log.Info(ctx, "notification shown", "channel", n.ChannelID, "title", n.Title)
	return nil
}

// Recorder keeps notifications in memory. Tests use it in place of a real
// notifier.
type Recorder struct {
	mu       sync.Mutex
	channels []Channel
	sent     []Notification
	Err      error
}

func (r *Recorder) CreateChannel(_ context.Context, ch Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels = append(r.channels, ch)
	return nil
}

func (r *Recorder) Notify(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

func (r *Recorder) Channels() []Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Channel(nil), r.channels...)
}
