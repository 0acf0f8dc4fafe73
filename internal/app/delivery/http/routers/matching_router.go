package routers

import (
	"handicare-service/internal/app/delivery/http/controllers"
	"handicare-service/internal/app/delivery/http/middlewares"
	"handicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMatchingRoutes(router chi.Router, middlewares *middlewares.Middlewares, matchingController *controllers.MatchingController) {
	router.Use(middlewares.Authentication)
	router.Use(middlewares.RequireRole(constvars.RoleEmployee))

	router.Post("/run", matchingController.RunMatching)
	router.Get("/", matchingController.ListMatches)
}
