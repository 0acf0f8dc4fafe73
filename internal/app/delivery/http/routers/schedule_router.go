package routers

import (
	"handicare-service/internal/app/delivery/http/controllers"
	"handicare-service/internal/app/delivery/http/middlewares"
	"handicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	nurse := middlewares.RequireRole(constvars.RoleEmployee)
	guardian := middlewares.RequireRole(constvars.RoleGuardian)

	router.Use(middlewares.Authentication)

	router.With(nurse).Get("/employee", scheduleController.GetEmployeeSchedule)
	router.With(nurse).Post("/employee", scheduleController.RegisterEmployeeSchedule)

	router.With(guardian).Get("/guardian/{seniorID}", scheduleController.GetGuardianSchedule)
	router.With(guardian).Post("/guardian", scheduleController.RegisterGuardianSchedule)

	router.Route("/editor", func(r chi.Router) {
		r.Use(nurse)
		r.Post("/", scheduleController.OpenEditor)
		r.Get("/", scheduleController.EditorState)
		r.Delete("/", scheduleController.CloseEditor)
		r.Put("/date", scheduleController.EditorSelectDate)
		r.Put("/slot", scheduleController.EditorToggleSlot)
		r.Put("/slots/all", scheduleController.EditorSelectAllSlots)
		r.Post("/stage", scheduleController.EditorStageCurrentDate)
		r.Post("/reset", scheduleController.EditorResetCurrentDate)
		r.Post("/submit", scheduleController.EditorSubmitAll)
	})
}
