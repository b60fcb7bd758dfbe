package handlers

import (
	"cms-api/helper"
	"cms-api/models"
	"cms-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req models.TagCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.tagService.Create(c.Request.Context(), req))
}

func (h *TagHandler) Fetch(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.tagService.Fetch(c.Request.Context()))
}

func (h *TagHandler) FetchByID(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.tagService.FetchByID(c.Request.Context(), c.Param("id")))
}

func (h *TagHandler) Update(c *gin.Context) {
	var req models.UpdateTagCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.tagService.Update(c.Request.Context(), c.Param("id"), req))
}

func (h *TagHandler) Delete(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.tagService.Delete(c.Request.Context(), c.Param("id")))
}
