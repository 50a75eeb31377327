package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-finder/internal/api/dto"
	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/news"
	"github.com/labstack/echo/v4"
)

type NewsRouter struct {
	e       *echo.Echo
	service *news.Service
}

func NewNewsRouter(e *echo.Echo, service *news.Service) *NewsRouter {
	return &NewsRouter{
		e:       e,
		service: service,
	}
}

func (r *NewsRouter) Bind() {
	g := r.e.Group("/api/v1/news")
	g.GET("", r.listHandler)
	g.POST("", r.submitHandler)
}

func (r *NewsRouter) listHandler(c echo.Context) error {
	params := news.QueryParams{
		ChannelName: c.QueryParam("channel_name"),
		WordCount:   c.QueryParam("word_count"),
		Page:        c.QueryParam("page"),
		PageSize:    c.QueryParam("page_size"),
		Source:      c.QueryParam("source"),
	}

	res, err := r.service.Query(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewArticleViews(res.Items))
}

func (r *NewsRouter) submitHandler(c echo.Context) error {
	var req dto.SubmitArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	rows, err := r.service.Submit(c.Request().Context(), req.ToSubmission())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewArticles(rows))
}
