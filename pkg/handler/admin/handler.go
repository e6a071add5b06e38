package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/datatable"
	"github.com/xyhcode/gocms/pkg/response"
	"github.com/xyhcode/gocms/pkg/service/admin"
)

type Handler struct {
	svc admin.Service
}

func NewHandler(svc admin.Service) *Handler {
	return &Handler{svc: svc}
}

// Dashboard
// @Summary      后台仪表盘
// @Description  返回各实体的总数统计
// @Tags         后台
// @Produce      json
// @Success      200 {object} response.Response{data=admin.Dashboard} "成功响应"
// @Router       /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	data, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
		return
	}
	response.Success(c, data, "获取成功")
}

// Posts 文章表格查询
// @Router /admin/posts [post]
func (h *Handler) Posts(c *gin.Context) {
	req, ok := bindTableRequest(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListPosts(c.Request.Context(), req)
	respond(c, resp, err)
}

// Pages 页面表格查询
// @Router /admin/pages [post]
func (h *Handler) Pages(c *gin.Context) {
	req, ok := bindTableRequest(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListPages(c.Request.Context(), req)
	respond(c, resp, err)
}

// Tags 标签表格查询
// @Router /admin/tags [post]
func (h *Handler) Tags(c *gin.Context) {
	req, ok := bindTableRequest(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListTags(c.Request.Context(), req)
	respond(c, resp, err)
}

// Categories 分类表格查询
// @Router /admin/categories [post]
func (h *Handler) Categories(c *gin.Context) {
	req, ok := bindTableRequest(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListCategories(c.Request.Context(), req)
	respond(c, resp, err)
}

// Comments 评论表格查询
// @Router /admin/comments [post]
func (h *Handler) Comments(c *gin.Context) {
	req, ok := bindTableRequest(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListComments(c.Request.Context(), req)
	respond(c, resp, err)
}

func bindTableRequest(c *gin.Context) (*datatable.Request, bool) {
	var req datatable.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.ErrBadRequest.Error())
		return nil, false
	}
	return &req, true
}

// respond 按 DataTables 协议回写响应；draw 已由服务层原样回显。
func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		switch {
		case errors.Is(err, constant.ErrInvalidLength),
			errors.Is(err, constant.ErrInvalidSort),
			errors.Is(err, constant.ErrBadRequest):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
		}
		return
	}
	c.JSON(http.StatusOK, data)
}
