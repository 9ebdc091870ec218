package handler

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/i18n"
	"github.com/bagdasarian/role-membership-service/internal/service"
	"go.uber.org/zap"
)

// Pinger - минимальный контракт проверки живости хранилища.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	roleService       service.RoleService
	membershipService service.MembershipService
	statsService      service.StatsService
	translator        *i18n.Translator
	defaultLocale     string
	logger            *zap.Logger
	db                Pinger
}

func NewHandler(
	roleService service.RoleService,
	membershipService service.MembershipService,
	statsService service.StatsService,
	translator *i18n.Translator,
	defaultLocale string,
	logger *zap.Logger,
	db Pinger,
) *Handler {
	return &Handler{
		roleService:       roleService,
		membershipService: membershipService,
		statsService:      statsService,
		translator:        translator,
		defaultLocale:     defaultLocale,
		logger:            logger,
		db:                db,
	}
}
