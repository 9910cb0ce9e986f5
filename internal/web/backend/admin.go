package backend

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/rpc"
)

func (a *App) listAdmin(c *gin.Context) {
	reply, err := a.admin.ListAdmin(c.Request.Context(), &rpc.ListAdminRequest{
		Email: queryString(c, "email"),
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Admins": reply.Admins,
		"Msg":    c.Query("msg"),
	})
}

func (a *App) addAdminUI(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_add.html", gin.H{})
}

func (a *App) addAdmin(c *gin.Context) {
	reply, err := a.admin.CreateAdmin(c.Request.Context(), &rpc.CreateAdminRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	if status.Code(err) == codes.AlreadyExists {
		c.HTML(http.StatusOK, "admin_add.html", gin.H{"Msg": "email already registered"})
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/admin?msg=admin %d created", reply.ID))
}

func (a *App) toggleAdmin(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	reply, err := a.admin.ToggleAdmin(c.Request.Context(), &rpc.ToggleAdminRequest{ID: id})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "admin not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/admin?msg=admin %d is_del=%t", reply.ID, reply.IsDel))
}
