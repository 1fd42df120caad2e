package payment

import "go.uber.org/fx"

// Module exposes the payment store and back-office queries via Fx.
var Module = fx.Options(
	fx.Provide(NewStore),
	fx.Provide(NewAdminService),
)
