package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hHealth *HealthHandler,
	hVoices *VoicesHandler,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(30, time.Minute),
		)

		pr.Get("/healthz", hHealth.Healthz)
		pr.Get("/voices", hVoices.List)
	})
}
