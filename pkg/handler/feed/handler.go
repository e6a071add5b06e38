package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/pkg/response"
	"github.com/xyhcode/gocms/pkg/service/feed"
)

const atomContentType = "application/atom+xml; charset=utf-8"

type Handler struct {
	svc feed.Service
}

func NewHandler(svc feed.Service) *Handler {
	return &Handler{svc: svc}
}

// Posts
// @Summary      文章 Feed
// @Description  最新已发布文章的 Atom Feed
// @Tags         Feed
// @Produce      xml
// @Success      200 {string} string "Atom XML"
// @Router       /feed [get]
func (h *Handler) Posts(c *gin.Context) {
	f, err := h.svc.LatestPosts(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成 Feed 失败")
		return
	}
	c.Data(http.StatusOK, atomContentType, []byte(h.svc.GenerateXML(f)))
}

// Comments
// @Summary      评论 Feed
// @Description  最新评论的 Atom Feed
// @Tags         Feed
// @Produce      xml
// @Success      200 {string} string "Atom XML"
// @Router       /comments/feed [get]
func (h *Handler) Comments(c *gin.Context) {
	f, err := h.svc.LatestComments(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成 Feed 失败")
		return
	}
	c.Data(http.StatusOK, atomContentType, []byte(h.svc.GenerateXML(f)))
}
