package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fatflowers/gemcashier/internal/app/api/server"
	"github.com/fatflowers/gemcashier/internal/app/service/checkout"
	notificationhandler "github.com/fatflowers/gemcashier/internal/app/service/notification_handler"
	notificationlog "github.com/fatflowers/gemcashier/internal/app/service/notification_log"
	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/app/service/reconcile"
	"github.com/fatflowers/gemcashier/internal/app/service/statistics"
	"github.com/fatflowers/gemcashier/internal/app/service/verification"
	"github.com/fatflowers/gemcashier/internal/platform/db"
	"github.com/fatflowers/gemcashier/pkg/config"
	"github.com/fatflowers/gemcashier/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

// ServiceModule wires storage and the payment services without HTTP.
var ServiceModule = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	order.Module,
	payment.Module,
	notificationlog.Module,
	checkout.Module,
	reconcile.Module,
	verification.Module,
	statistics.Module,
	notificationhandler.Module,
)

var Module = fx.Options(
	ServiceModule,
	server.Module,
)
