package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func (a *App) Chat(ctx context.Context, _ []string) error {
	msgs, err := a.chat.Refresh(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}
	a.printChat(msgs)
	return nil
}

func (a *App) printChat(msgs []models.Message) {
	a.println("==", a.t("chat.title"), "==")
	for _, m := range msgs {
		who := "You"
		if m.FromHR() {
			who = "HR"
		}
		a.printf("[%s] %s: %s\n", m.Timestamp, who, m.Body)
	}
}

// Send posts the arguments as one message and shows the updated chat.
func (a *App) Send(ctx context.Context, args []string) error {
	err := a.chat.Send(ctx, strings.Join(args, " "))
	if errors.Is(err, common.ErrEmptyMessage) {
		a.println(a.t("chat.empty"))
		return err
	}
	if err != nil {
		return a.fail(err, "chat.sendError")
	}
	a.printChat(a.chat.Messages())
	return nil
}
