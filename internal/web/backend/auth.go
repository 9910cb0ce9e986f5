package backend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/rpc"
)

func (a *App) loginUI(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// login checks the submitted credentials against the admin service and, on
// success, issues a session token cookie and lands on the category list.
// A failed login never touches the cookie.
func (a *App) login(c *gin.Context) {
	email := c.PostForm("email")
	pwd := c.PostForm("password")

	reply, err := a.admin.GetAdmin(c.Request.Context(), &rpc.GetAdminRequest{
		Condition: rpc.GetAdminCondition{ByAuth: &rpc.ByAuth{Email: email, Password: pwd}},
	})
	if err != nil || reply.Admin == nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Msg": "login failed"})
		return
	}

	token, err := a.jwt.Token(a.jwt.NewClaims(reply.Admin.ID, reply.Admin.Email))
	if err != nil {
		a.fail(c, err)
		return
	}

	c.SetCookie(common.TokenCookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/m/cate")
}

func (a *App) logout(c *gin.Context) {
	c.SetCookie(common.TokenCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
