package router

import (
	"github.com/gin-gonic/gin"

	authhandler "energy_backend/internal/feature/auth/transport/handler"
	glossaryhandler "energy_backend/internal/feature/glossary/transport/handler"
	pricehandler "energy_backend/internal/feature/prices/transport/handler"
	"energy_backend/internal/platform/http/handler"
	sessionmw "energy_backend/internal/platform/session"
)

// NewRouter wires the HTTP routes. The legacy endpoints stay public GET
// routes with query parameters; only the monthly table sits behind the
// session middleware.
func NewRouter(auth *authhandler.AuthHandler, prices *pricehandler.PriceHandler,
	glossary *glossaryhandler.GlossaryHandler, sessions sessionmw.Validator) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)
	r.GET("/fuelprice", prices.GetFuelPrice)
	r.GET("/jargon", glossary.Explain)
	r.GET("/register_user", auth.Register)
	r.GET("/login", auth.Login)

	guarded := r.Group("/")
	guarded.Use(sessionmw.AuthRequired(sessions))
	{
		guarded.GET("/fuelprice/monthly", prices.GetMonthly)
	}

	return r
}
