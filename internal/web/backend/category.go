package backend

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/models"
	"github.com/dberestov/microblog/internal/rpc"
)

func (a *App) listCate(c *gin.Context) {
	reply, err := a.cate.ListCategory(c.Request.Context(), &rpc.ListCategoryRequest{
		Name: queryString(c, "name"),
	})
	// The category service reports an empty listing as NotFound; the
	// editor shows an empty table instead.
	if status.Code(err) == codes.NotFound {
		reply = &rpc.ListCategoryReply{Categories: []models.Category{}}
	} else if err != nil {
		a.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "cate_list.html", gin.H{
		"CateList": reply.Categories,
		"Msg":      c.Query("msg"),
	})
}

func (a *App) addCateUI(c *gin.Context) {
	c.HTML(http.StatusOK, "cate_add.html", gin.H{})
}

func (a *App) addCate(c *gin.Context) {
	reply, err := a.cate.CreateCategory(c.Request.Context(), &rpc.CreateCategoryRequest{
		Name: c.PostForm("name"),
	})
	if status.Code(err) == codes.AlreadyExists {
		c.HTML(http.StatusOK, "cate_add.html", gin.H{"Msg": "category already exists"})
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/cate?msg=category %d created", reply.ID))
}

func (a *App) editCateUI(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	reply, err := a.cate.GetCategory(c.Request.Context(), &rpc.GetCategoryRequest{ID: id})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "cate_edit.html", gin.H{"Cate": reply.Category})
}

func (a *App) editCate(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	_, err = a.cate.EditCategory(c.Request.Context(), &rpc.EditCategoryRequest{
		ID:   id,
		Name: c.PostForm("name"),
	})
	if status.Code(err) == codes.AlreadyExists {
		c.HTML(http.StatusOK, "cate_edit.html", gin.H{
			"Cate": &models.Category{ID: id, Name: c.PostForm("name")},
			"Msg":  "name already taken",
		})
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/cate?msg=category %d updated", id))
}

func (a *App) toggleCate(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	reply, err := a.cate.ToggleCategory(c.Request.Context(), &rpc.ToggleCategoryRequest{ID: id})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/cate?msg=category %d is_del=%t", reply.ID, reply.IsDel))
}
