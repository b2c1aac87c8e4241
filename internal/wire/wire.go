package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/gateway"
	"travel-booking/internal/upload"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the dependency graph once at startup: gateway clients,
// the upload saver, services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	rates := gateway.NewExchangeClient(config.Exchange.BaseURL, logger)
	payments := gateway.NewPaymobClient(config.Payment, logger)

	saver, err := upload.NewSaver(config.Upload, logger)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, rates, payments, config, logger)
	handler := adaptor.NewHandler(service, saver, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireTour(r, handler.Tour, config, logger)
	wireSingletonTour(r, handler.VIP, "/api/vip", config, logger)
	wireSingletonTour(r, handler.Nile, "/api/nile", config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireReview(r, handler.Review, config, logger)
	wireContact(r, handler.Contact)

	// Uploaded media is served straight from disk
	fileServer := http.StripPrefix(config.Upload.URLPrefix+"/", http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get(config.Upload.URLPrefix+"/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
