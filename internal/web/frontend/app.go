// Package frontend implements the public reader web app: an index of
// published topics and a detail page per topic.
package frontend

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/models"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/web/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

type App struct {
	cate   rpc.CategoryServiceClient
	topic  rpc.TopicServiceClient
	logger logging.Logger
}

func New(cate rpc.CategoryServiceClient, topic rpc.TopicServiceClient, logger logging.Logger) *App {
	return &App{
		cate:   cate,
		topic:  topic,
		logger: logger.With("module", "blog-frontend"),
	}
}

func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(a.logger))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", a.index)
	r.GET("/detail/:id", a.detail)

	return r
}

func (a *App) fail(c *gin.Context, err error) {
	a.logger.Error(c.Request.Context(), "handler failed", "path", c.Request.URL.Path, "error", err.Error())
	c.String(http.StatusInternalServerError, "something went wrong")
}

// categories returns the live categories keyed by id. The category service
// reports an empty listing as NotFound; the reader treats that as no
// categories.
func (a *App) categories(c *gin.Context) (map[int64]string, []models.Category, error) {
	live := false
	reply, err := a.cate.ListCategory(c.Request.Context(), &rpc.ListCategoryRequest{IsDel: &live})
	if status.Code(err) == codes.NotFound {
		return map[int64]string{}, []models.Category{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	names := make(map[int64]string, len(reply.Categories))
	for _, cat := range reply.Categories {
		names[cat.ID] = cat.Name
	}
	return names, reply.Categories, nil
}

// topicView pairs a topic with its resolved category name for rendering.
type topicView struct {
	models.Topic
	CategoryName string
}

func (a *App) index(c *gin.Context) {
	var page *int64
	if p, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil {
		page = &p
	}
	var categoryID *int64
	if id, err := strconv.ParseInt(c.Query("cate"), 10, 64); err == nil {
		categoryID = &id
	}

	live := false
	reply, err := a.topic.ListTopic(c.Request.Context(), &rpc.ListTopicRequest{
		Page:       page,
		CategoryID: categoryID,
		IsDel:      &live,
	})
	if err != nil {
		a.fail(c, err)
		return
	}

	names, cates, err := a.categories(c)
	if err != nil {
		a.fail(c, err)
		return
	}

	views := make([]topicView, 0, len(reply.Topics))
	for _, t := range reply.Topics {
		views = append(views, topicView{Topic: t, CategoryName: names[t.CategoryID]})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Topics":      views,
		"CateList":    cates,
		"Page":        reply.Page,
		"PageTotal":   reply.PageTotal,
		"RecordTotal": reply.RecordTotal,
	})
}

// detail renders one published topic, counting the visit.
func (a *App) detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	live := false
	inc := true
	reply, err := a.topic.GetTopic(c.Request.Context(), &rpc.GetTopicRequest{
		ID:     id,
		IsDel:  &live,
		IncHit: &inc,
	})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "topic not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}

	names, _, err := a.categories(c)
	if err != nil {
		a.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Topic":        reply.Topic,
		"CategoryName": names[reply.Topic.CategoryID],
	})
}
