package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/postgres"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Cfg      *config.Config
	Logger   *zap.Logger
	Database *postgres.DB
	Ctx      context.Context
}
