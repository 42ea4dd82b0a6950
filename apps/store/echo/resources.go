package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type collectionApi struct {
	col *Collection
}

func registerCollectionAPI(e *echo.Echo, col *Collection) {
	api := collectionApi{col: col}

	g := e.Group("/" + col.name)
	g.GET("", api.list)
	g.POST("", api.create)
	g.PUT("/:id", api.update)
	g.DELETE("/:id", api.destroy)
}

// Handlers

func (api *collectionApi) list(ctx echo.Context) error {
	sortField := ctx.QueryParam("_sort")
	descending := ctx.QueryParam("_order") == "desc"
	return ctx.JSON(http.StatusOK, api.col.List(sortField, descending))
}

func (api *collectionApi) create(ctx echo.Context) error {
	var rec Record
	if err := ctx.Bind(&rec); err != nil {
		return errors.Wrap(err, "binding to Record")
	}
	return ctx.JSON(http.StatusCreated, api.col.Create(rec))
}

func (api *collectionApi) update(ctx echo.Context) error {
	var rec Record
	if err := ctx.Bind(&rec); err != nil {
		return errors.Wrap(err, "binding to Record")
	}
	updated, ok := api.col.Update(ctx.Param("id"), rec)
	if !ok {
		return errRecordNotFound
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *collectionApi) destroy(ctx echo.Context) error {
	if ok := api.col.Delete(ctx.Param("id")); !ok {
		return errRecordNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
