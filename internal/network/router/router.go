package router

import (
	"github.com/denmor86/ya-exchange/internal/config"
	"github.com/denmor86/ya-exchange/internal/network/handlers"
	"github.com/denmor86/ya-exchange/internal/network/middleware"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	Config   config.ServerConfig
	Identity services.IdentityService
	Exchange services.ExchangeService
	Settings services.SettingsService
	Market   services.MarketService
}

func NewRouter(config config.ServerConfig,
	identity services.IdentityService,
	exchange services.ExchangeService,
	settings services.SettingsService,
	market services.MarketService) *Router {
	return &Router{
		Config:   config,
		Identity: identity,
		Exchange: exchange,
		Settings: settings,
		Market:   market,
	}
}

// HandleRouter - маршруты доступны от корня и с префиксом /api
func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LogHandle)

	r.Group(router.routes)
	r.Route("/api", router.routes)
	return r
}

func (router *Router) routes(r chi.Router) {
	ja := router.Identity.GetTokenAuth()

	r.Post("/register", handlers.RegisterUserHandler(router.Identity))
	r.Post("/login", handlers.LoginHandler(router.Identity, router.Config.CookieSecure))
	r.Post("/logout", handlers.LogoutHandler(router.Config.CookieSecure))
	r.Get("/get_course", handlers.GetCourseHandler(router.Settings))
	r.Get("/get-prices", handlers.GetPricesHandler(router.Market))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Verifier(ja))
		r.Use(middleware.Authenticator)

		r.Get("/validate-user", handlers.ValidateUserHandler(router.Identity))
		r.Get("/get-user-data", handlers.GetUserDataHandler(router.Identity))
		r.Post("/update-user-address", handlers.UpdateUserAddressHandler(router.Identity))
		r.Get("/get-wallet-balance", handlers.GetWalletBalanceHandler(router.Identity, router.Market))

		r.Post("/create-exchange", handlers.CreateExchangeHandler(router.Exchange))
		r.Get("/get-transactions", handlers.GetUserExchangesHandler(router.Exchange, handlers.TransactionsPageLimit))
		r.Get("/get-user-exchanges", handlers.GetUserExchangesHandler(router.Exchange, handlers.ExchangesPageLimit))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/get-exchange-requests", handlers.GetExchangeRequestsHandler(router.Exchange))
			r.Post("/update-exchange-status", handlers.UpdateExchangeStatusHandler(router.Exchange))
			r.Post("/update-course", handlers.UpdateCourseHandler(router.Settings))
		})
	})
}
