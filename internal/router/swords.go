package router

import (
	"net/http"

	"github.com/deppfellow/legendary-swords/internal/handler"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/labstack/echo/v4"
)

func registerSwordRoutes(r *echo.Echo, h *handler.SwordHandler) {
	swords := r.Group("/sword")

	swords.POST("", handler.Handle(
		h.Handler,
		h.CreateSword,
		http.StatusCreated,
		handler.NewRequest[model.SwordCreate],
	))

	swords.GET("", handler.Handle(
		h.Handler,
		h.ListSwords,
		http.StatusOK,
		handler.NewRequest[handler.ListSwordsRequest],
	))

	swords.GET("/insurance/:uuid_insurance", handler.Handle(
		h.Handler,
		h.GetSwordByInsurance,
		http.StatusOK,
		handler.NewRequest[handler.SwordInsuranceRequest],
	))

	swords.GET("/:uuid", handler.Handle(
		h.Handler,
		h.GetSword,
		http.StatusOK,
		handler.NewRequest[handler.SwordIDRequest],
	))

	swords.PUT("/:uuid", handler.Handle(
		h.Handler,
		h.UpdateSword,
		http.StatusOK,
		handler.NewRequest[handler.UpdateSwordRequest],
	))

	swords.DELETE("/:uuid", handler.Handle(
		h.Handler,
		h.DeleteSword,
		http.StatusOK,
		handler.NewRequest[handler.SwordIDRequest],
	))
}
