package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/controllers"
	"github.com/dealerdesk/dealerdesk.go/lib/authz"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
)

// RegisterEndpoints wires the REST surface. Reads are public (and cached),
// every mutation goes through the secured group plus the policy check for
// its action.
func RegisterEndpoints(svc *service.DealerdeskService, e *echo.Echo, secured *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc) {
	cacheClient := CreateCacheClient()

	e.GET("/", controllers.NewHomeController().Home)

	authCtrl := controllers.NewAuthController(svc)
	e.POST("/api/auth/register", authCtrl.Register)
	e.POST("/api/auth/login", authCtrl.Login)
	secured.GET("/api/auth/profile", authCtrl.Profile)
	e.POST("/api/auth/generate-otp", authCtrl.GenerateOTP, strictRateLimitMiddleware)
	e.POST("/api/auth/verify-otp", authCtrl.VerifyOTP, strictRateLimitMiddleware)
	e.POST("/api/auth/reset-password", authCtrl.ResetPassword)

	usersCtrl := controllers.NewUsersController(svc)
	e.GET("/api/users", usersCtrl.List, cacheClient.Middleware())
	e.GET("/api/users/:id", usersCtrl.Get)
	secured.POST("/api/users", usersCtrl.Create, authz.Middleware(authz.ActionUserWrite))
	secured.PUT("/api/users/:id", usersCtrl.Update, authz.Middleware(authz.ActionUserWrite))
	secured.DELETE("/api/users/:id", usersCtrl.Delete, authz.Middleware(authz.ActionUserDelete))

	vehiclesCtrl := controllers.NewVehiclesController(svc)
	e.GET("/api/vehicles", vehiclesCtrl.List, cacheClient.Middleware())
	e.GET("/api/vehicles/:id", vehiclesCtrl.Get)
	secured.POST("/api/vehicles", vehiclesCtrl.Create, authz.Middleware(authz.ActionVehicleWrite))
	secured.PUT("/api/vehicles/:id", vehiclesCtrl.Update, authz.Middleware(authz.ActionVehicleWrite))
	secured.DELETE("/api/vehicles/:id", vehiclesCtrl.Delete, authz.Middleware(authz.ActionVehicleDelete))

	workshopCtrl := controllers.NewWorkshopController(svc)
	e.GET("/api/workshop", workshopCtrl.List, cacheClient.Middleware())
	e.GET("/api/workshop/:id", workshopCtrl.Get)
	secured.POST("/api/workshop", workshopCtrl.Create, authz.Middleware(authz.ActionTicketCreate))
	secured.PUT("/api/workshop/:id", workshopCtrl.Update, authz.Middleware(authz.ActionTicketWrite))
	secured.DELETE("/api/workshop/:id", workshopCtrl.Delete, authz.Middleware(authz.ActionTicketDelete))

	ledgerCtrl := controllers.NewLedgerController(svc)
	e.GET("/api/ledger", ledgerCtrl.List, cacheClient.Middleware())
	e.GET("/api/ledger/:id", ledgerCtrl.Get)
	secured.POST("/api/ledger", ledgerCtrl.Create, authz.Middleware(authz.ActionLedgerCreate))
	secured.PUT("/api/ledger/:id", ledgerCtrl.Update, authz.Middleware(authz.ActionLedgerWrite))
	secured.DELETE("/api/ledger/:id", ledgerCtrl.Delete, authz.Middleware(authz.ActionLedgerDelete))
}
