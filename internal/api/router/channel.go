package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-finder/internal/api/dto"
	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/news"
	"github.com/labstack/echo/v4"
)

type ChannelRouter struct {
	e       *echo.Echo
	service *news.ChannelService
}

func NewChannelRouter(e *echo.Echo, service *news.ChannelService) *ChannelRouter {
	return &ChannelRouter{
		e:       e,
		service: service,
	}
}

func (r *ChannelRouter) Bind() {
	g := r.e.Group("/api/v1/channels")
	g.GET("", r.listHandler)
	g.POST("", r.createHandler)
	g.DELETE("/:id", r.deleteHandler)
}

func (r *ChannelRouter) listHandler(c echo.Context) error {
	channels, err := r.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewChannels(channels))
}

func (r *ChannelRouter) createHandler(c echo.Context) error {
	var req dto.CreateChannelRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ch, err := r.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewChannel(*ch))
}

func (r *ChannelRouter) deleteHandler(c echo.Context) error {
	if err := r.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
