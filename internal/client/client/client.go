package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Employee(ctx context.Context, empNo string) (models.Employee, error)
	UpdateProfile(ctx context.Context, empNo string, p models.ProfileUpdate) error
	Documents(ctx context.Context, empNo string) ([]models.Document, error)
	Notices(ctx context.Context) ([]models.Notice, error)
	Holidays(ctx context.Context) ([]models.Holiday, error)
	LeaveBalances(ctx context.Context, empNo string) (models.LeaveBalances, error)
	LeaveHistory(ctx context.Context, empNo string) ([]models.LeaveRecord, error)
	Handbook(ctx context.Context) ([]models.HandbookSection, error)
	ChatMessages(ctx context.Context, empNo string) ([]models.Message, error)
	SendChatMessage(ctx context.Context, empNo, text string) error
	Birthdays(ctx context.Context) ([]models.Birthday, error)
	DownloadFile(ctx context.Context, name string) (io.ReadCloser, error)
	FileURL(name string) string
}
