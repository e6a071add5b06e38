package comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/response"
	"github.com/xyhcode/gocms/pkg/service/comment"
)

type Handler struct {
	svc comment.Service
}

func NewHandler(svc comment.Service) *Handler {
	return &Handler{svc: svc}
}

// Create
// @Summary      发表评论
// @Description  向指定文章提交一条匿名评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        key path int true "文章ID"
// @Param        draft body comment.Draft true "评论内容"
// @Success      201 {object} response.Response "评论创建成功"
// @Failure      400 {object} response.Response "字段校验失败"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /post/{id}/comment [post]
func (h *Handler) Create(c *gin.Context) {
	contentID, err := strconv.Atoi(c.Param("key"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, constant.ErrNotFound.Error())
		return
	}

	var draft comment.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Fail(c, http.StatusBadRequest, constant.ErrBadRequest.Error())
		return
	}

	created, err := h.svc.AddComment(c.Request.Context(), contentID, &draft)
	if err != nil {
		if ve, ok := constant.AsValidationError(err); ok {
			response.FailWithData(c, http.StatusBadRequest, ve.Fields, "字段校验失败")
			return
		}
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, created, "评论发表成功")
}

// Latest
// @Summary      最新评论列表
// @Description  分页获取全站最新评论
// @Tags         评论
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        pageSize query int false "每页数量" default(10)
// @Success      200 {object} response.Response "成功响应"
// @Router       /comments [get]
func (h *Handler) Latest(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	result, err := h.svc.Latest(c.Request.Context(), page-1, pageSize)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取评论列表失败: "+err.Error())
		return
	}

	response.Success(c, result, "获取成功")
}
