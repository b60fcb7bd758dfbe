package handlers

import (
	"errors"

	"cms-api/helper"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// bind decodes the JSON body into req and validates it. On failure the error
// response is already written and false is returned.
func bind(c *gin.Context, h *helper.HTTPHelper, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
		return false
	}
	if err := h.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = h.SendValidationError(c, verrs)
		} else {
			_ = h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
		}
		return false
	}
	return true
}
