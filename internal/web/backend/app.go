// Package backend implements the editor web app: a token-gated admin UI
// over the category, topic and admin services.
package backend

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dberestov/microblog/internal/auth"
	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/web/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

type App struct {
	cate   rpc.CategoryServiceClient
	topic  rpc.TopicServiceClient
	admin  rpc.AdminServiceClient
	jwt    *auth.Jwt
	logger logging.Logger
}

func New(cate rpc.CategoryServiceClient, topic rpc.TopicServiceClient, admin rpc.AdminServiceClient, jwt *auth.Jwt, logger logging.Logger) *App {
	return &App{
		cate:   cate,
		topic:  topic,
		admin:  admin,
		jwt:    jwt,
		logger: logger.With("module", "blog-backend"),
	}
}

// Router builds the gin engine with all editor routes. Everything under /m
// is behind the session-token gate.
func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(a.logger))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	r.GET("/login", a.loginUI)
	r.POST("/login", a.login)
	r.GET("/logout", a.logout)

	m := r.Group("/m", middleware.Auth(a.jwt))

	m.GET("/cate", a.listCate)
	m.GET("/cate/add", a.addCateUI)
	m.POST("/cate/add", a.addCate)
	m.GET("/cate/edit/:id", a.editCateUI)
	m.POST("/cate/edit/:id", a.editCate)
	m.GET("/cate/toggle/:id", a.toggleCate)

	m.GET("/topic", a.listTopic)
	m.GET("/topic/add", a.addTopicUI)
	m.POST("/topic/add", a.addTopic)
	m.GET("/topic/edit/:id", a.editTopicUI)
	m.POST("/topic/edit/:id", a.editTopic)
	m.GET("/topic/toggle/:id", a.toggleTopic)

	m.GET("/admin", a.listAdmin)
	m.GET("/admin/add", a.addAdminUI)
	m.POST("/admin/add", a.addAdmin)
	m.GET("/admin/toggle/:id", a.toggleAdmin)

	return r
}

// fail renders an RPC or template failure as plain text. The editor UI is
// internal; a terse error page beats hiding the cause.
func (a *App) fail(c *gin.Context, err error) {
	a.logger.Error(c.Request.Context(), "handler failed", "path", c.Request.URL.Path, "error", err.Error())
	c.String(http.StatusInternalServerError, err.Error())
}

func paramID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// queryInt64 returns nil when the parameter is absent or not a number.
func queryInt64(c *gin.Context, name string) *int64 {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryString returns nil when the parameter is absent or blank.
func queryString(c *gin.Context, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}
