package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/models"
	"github.com/dberestov/microblog/internal/rpc"
)

// categoryOptions fetches the categories for select boxes and filters. The
// service reports an empty listing as NotFound, which here simply means no
// options.
func (a *App) categoryOptions(ctx context.Context) ([]models.Category, error) {
	reply, err := a.cate.ListCategory(ctx, &rpc.ListCategoryRequest{})
	if status.Code(err) == codes.NotFound {
		return []models.Category{}, nil
	}
	if err != nil {
		return nil, err
	}
	return reply.Categories, nil
}

func (a *App) listTopic(c *gin.Context) {
	reply, err := a.topic.ListTopic(c.Request.Context(), &rpc.ListTopicRequest{
		Page:       queryInt64(c, "page"),
		CategoryID: queryInt64(c, "category_id"),
		Keyword:    queryString(c, "keyword"),
	})
	if err != nil {
		a.fail(c, err)
		return
	}

	cates, err := a.categoryOptions(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "topic_list.html", gin.H{
		"Topics":      reply.Topics,
		"Page":        reply.Page,
		"PageTotal":   reply.PageTotal,
		"RecordTotal": reply.RecordTotal,
		"CateList":    cates,
		"Msg":         c.Query("msg"),
	})
}

func (a *App) addTopicUI(c *gin.Context) {
	cates, err := a.categoryOptions(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "topic_add.html", gin.H{"CateList": cates})
}

// topicForm reads the shared add/edit form fields. An empty summary is left
// nil so the topic service derives one from the content.
func topicForm(c *gin.Context) (title string, categoryID int64, content string, summary *string, err error) {
	title = c.PostForm("title")
	content = c.PostForm("content")
	if s := c.PostForm("summary"); s != "" {
		summary = &s
	}
	_, err = fmt.Sscanf(c.PostForm("category_id"), "%d", &categoryID)
	return title, categoryID, content, summary, err
}

func (a *App) addTopic(c *gin.Context) {
	title, categoryID, content, summary, err := topicForm(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad category id")
		return
	}

	reply, err := a.topic.CreateTopic(c.Request.Context(), &rpc.CreateTopicRequest{
		Title:      title,
		CategoryID: categoryID,
		Content:    content,
		Summary:    summary,
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/topic?msg=topic %d created", reply.ID))
}

func (a *App) editTopicUI(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	reply, err := a.topic.GetTopic(c.Request.Context(), &rpc.GetTopicRequest{ID: id})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "topic not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}

	cates, err := a.categoryOptions(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "topic_edit.html", gin.H{"Topic": reply.Topic, "CateList": cates})
}

func (a *App) editTopic(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	title, categoryID, content, summary, err := topicForm(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad category id")
		return
	}

	_, err = a.topic.EditTopic(c.Request.Context(), &rpc.EditTopicRequest{
		ID:         id,
		Title:      title,
		CategoryID: categoryID,
		Content:    content,
		Summary:    summary,
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/topic?msg=topic %d updated", id))
}

func (a *App) toggleTopic(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	reply, err := a.topic.ToggleTopic(c.Request.Context(), &rpc.ToggleTopicRequest{ID: id})
	if status.Code(err) == codes.NotFound {
		c.String(http.StatusNotFound, "topic not found")
		return
	}
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/m/topic?msg=topic %d is_del=%t", reply.ID, reply.IsDel))
}
