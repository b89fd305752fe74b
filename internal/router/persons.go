package router

import (
	"net/http"

	"github.com/deppfellow/legendary-swords/internal/handler"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/labstack/echo/v4"
)

func registerPersonRoutes(r *echo.Echo, h *handler.PersonHandler) {
	persons := r.Group("/person")

	persons.POST("", handler.Handle(h.Handler, h.CreatePerson, http.StatusCreated, handler.NewRequest[model.PersonCreate]))
	persons.GET("", handler.Handle(h.Handler, h.ListPersons, http.StatusOK, handler.NewRequest[handler.ListPersonsRequest]))
	persons.GET("/document/:document_number", handler.Handle(h.Handler, h.GetPersonByDocument, http.StatusOK, handler.NewRequest[handler.PersonDocumentRequest]))
	persons.GET("/:uuid", handler.Handle(h.Handler, h.GetPerson, http.StatusOK, handler.NewRequest[handler.PersonIDRequest]))
	persons.PUT("/:uuid", handler.Handle(h.Handler, h.UpdatePerson, http.StatusOK, handler.NewRequest[handler.UpdatePersonRequest]))
	persons.DELETE("/:uuid", handler.Handle(h.Handler, h.DeletePerson, http.StatusOK, handler.NewRequest[handler.PersonIDRequest]))
}
