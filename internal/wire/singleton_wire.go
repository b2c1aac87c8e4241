package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireSingletonTour mounts a singleton tour resource (VIP, Nile) at the
// given prefix.
func wireSingletonTour(
	r chi.Router,
	handler *adaptor.SingletonTourHandler,
	prefix string,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get(prefix, handler.Get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post(prefix, handler.Create)
		r.Put(prefix, handler.Update)
	})
}
