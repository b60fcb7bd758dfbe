package handlers

import (
	"cms-api/helper"
	"cms-api/models"
	"cms-api/services"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorService services.AuthorService
	Helper        *helper.HTTPHelper
}

func NewAuthorHandler(authorService services.AuthorService, h *helper.HTTPHelper) *AuthorHandler {
	return &AuthorHandler{authorService: authorService, Helper: h}
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req models.AuthorCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.authorService.Create(c.Request.Context(), req))
}

func (h *AuthorHandler) Fetch(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.authorService.Fetch(c.Request.Context()))
}

func (h *AuthorHandler) FetchByID(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.authorService.FetchByID(c.Request.Context(), c.Param("id")))
}

func (h *AuthorHandler) Update(c *gin.Context) {
	var req models.UpdateAuthorCredentials
	if !bind(c, h.Helper, &req) {
		return
	}

	_ = h.Helper.SendResult(c, h.authorService.Update(c.Request.Context(), c.Param("id"), req))
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	_ = h.Helper.SendResult(c, h.authorService.Delete(c.Request.Context(), c.Param("id")))
}
