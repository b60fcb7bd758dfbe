package handlers

import (
	"cms-api/helper"
	"cms-api/models"
	"cms-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.ArticleCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.articleService.Create(c.Request.Context(), req))
}

func (h *ArticleHandler) Fetch(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.articleService.Fetch(c.Request.Context()))
}

func (h *ArticleHandler) FetchByID(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.articleService.FetchByID(c.Request.Context(), c.Param("id")))
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var req models.UpdateArticleCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.articleService.Update(c.Request.Context(), c.Param("id"), req))
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.articleService.Delete(c.Request.Context(), c.Param("id")))
}
