package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/response"
	"github.com/xyhcode/gocms/pkg/service/content"
)

type Handler struct {
	svc content.Service
}

func NewHandler(svc content.Service) *Handler {
	return &Handler{svc: svc}
}

// Index
// @Summary      首页文章列表
// @Description  分页列出全部已发布文章
// @Tags         内容
// @Produce      json
// @Param        n path int false "页码" default(1)
// @Success      200 {object} response.Response "成功响应"
// @Router       / [get]
func (h *Handler) Index(c *gin.Context) {
	vm, err := h.svc.List(c.Request.Context(), pageParam(c))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, vm, "获取成功")
}

// Archive
// @Summary      归档文章列表
// @Description  列出指定年/月/日窗口内的已发布文章
// @Tags         内容
// @Produce      json
// @Success      200 {object} response.Response "成功响应"
// @Router       /{year}/{month}/{day} [get]
func (h *Handler) Archive(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		response.Fail(c, http.StatusBadRequest, constant.ErrInvalidDate.Error())
		return
	}
	month, day := 0, 0
	if c.Param("month") != "" {
		if month, ok = intParam(c, "month"); !ok {
			response.Fail(c, http.StatusBadRequest, constant.ErrInvalidDate.Error())
			return
		}
	}
	if c.Param("day") != "" {
		if day, ok = intParam(c, "day"); !ok {
			response.Fail(c, http.StatusBadRequest, constant.ErrInvalidDate.Error())
			return
		}
	}

	vm, err := h.svc.ListByDate(c.Request.Context(), year, month, day, pageParam(c))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, vm, "获取成功")
}

// Tag
// @Summary      标签文章列表
// @Description  列出带指定标签（ID或别名）的已发布文章
// @Tags         内容
// @Produce      json
// @Param        key path string true "标签ID或别名"
// @Success      200 {object} response.Response "成功响应"
// @Router       /tag/{key} [get]
func (h *Handler) Tag(c *gin.Context) {
	key := c.Param("key")
	page := pageParam(c)

	var (
		vm  content.ViewModel
		err error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		vm, err = h.svc.ListByTagID(c.Request.Context(), id, page)
	} else {
		vm, err = h.svc.ListByTagSlug(c.Request.Context(), key, page)
	}
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, vm, "获取成功")
}

// Category
// @Summary      分类文章列表
// @Description  列出指定分类（ID或别名）下的已发布文章
// @Tags         内容
// @Produce      json
// @Param        key path string true "分类ID或别名"
// @Success      200 {object} response.Response "成功响应"
// @Router       /category/{key} [get]
func (h *Handler) Category(c *gin.Context) {
	key := c.Param("key")
	page := pageParam(c)

	var (
		vm  content.ViewModel
		err error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		vm, err = h.svc.ListByCategoryID(c.Request.Context(), id, page)
	} else {
		vm, err = h.svc.ListByCategorySlug(c.Request.Context(), key, page)
	}
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, vm, "获取成功")
}

// Detail
// @Summary      文章详情
// @Description  按ID或别名获取已发布文章详情
// @Tags         内容
// @Produce      json
// @Param        key path string true "文章ID或别名"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /post/{key} [get]
func (h *Handler) Detail(c *gin.Context) {
	key := c.Param("key")

	var (
		vm  content.ViewModel
		err error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		vm, err = h.svc.GetByID(c.Request.Context(), id)
	} else {
		vm, err = h.svc.GetBySlug(c.Request.Context(), key)
	}
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, vm, "获取成功")
}

// pageParam 从路径中取 1 基页码，缺省为 1。
func pageParam(c *gin.Context) int {
	raw := c.Param("n")
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0 // 交给 service 返回 ErrInvalidPage
	}
	return n
}

func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return n, true
}

// failWith 把业务错误翻译成 HTTP 状态码。
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrInvalidDate),
		errors.Is(err, constant.ErrInvalidPage),
		errors.Is(err, constant.ErrInvalidLength),
		errors.Is(err, constant.ErrInvalidSort),
		errors.Is(err, constant.ErrBadRequest):
		response.Fail(c, http.StatusBadRequest, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
	}
}
