package helper

import (
	"net/http"
	"strings"
	"unicode"

	"cms-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	enTranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// requiredMessages words a missing required field per credentials field.
var requiredMessages = map[string]string{
	"ArticleCredentials.Title":       "The title of an article is required",
	"ArticleCredentials.Description": "The description of an article is required",
	"ArticleCredentials.Content":     "The content of an article is required",
	"ArticleCredentials.AuthorID":    "The author id of an article is required",
	"ArticleCredentials.Caption":     "The caption of an article is required",
	"AuthorCredentials.Title":        "The author's title is required",
	"AuthorCredentials.FirstName":    "The author's first name is required",
	"AuthorCredentials.LastName":     "The author's last name is required",
	"AuthorCredentials.Photo":        "The author's display photo is required",
	"TagCredentials.Title":           "The title of a tag is required",
}

// NewHTTPHelper builds a validator with english messages registered.
func NewHTTPHelper() (*HTTPHelper, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := validate.RegisterTranslation("required", trans, registerRequired, translateRequired); err != nil {
		return nil, err
	}
	return &HTTPHelper{Validate: validate, Translator: trans}, nil
}

func registerRequired(trans ut.Translator) error {
	return trans.Add("required", "{0} is a required field", true)
}

func translateRequired(trans ut.Translator, fe validator.FieldError) string {
	if msg, ok := requiredMessages[fe.StructNamespace()]; ok {
		return msg
	}
	msg, err := trans.T("required", fe.Field())
	if err != nil {
		return fe.Field() + " is a required field"
	}
	return msg
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusBadRequest, models.TitleBadRequest)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	res := u.SetResponse(c, textError, errorResponse, u.EmptyJsonMap(), http.StatusBadRequest, models.TitleBadRequest)
	return u.SendResponse(res)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusNotFound, models.TitleNotFound)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusOK, `success`)

	return u.SendResponse(res)
}

// SendResult ...
// Send a service envelope to consumers. 204 carries no body.
func (u *HTTPHelper) SendResult(c *gin.Context, result models.Envelope) error {
	if !result.Successful() {
		title, detail := result.Problem()
		if result.Status() == http.StatusNotFound {
			return u.SendNotFoundError(c, detail, u.EmptyJsonMap())
		}
		return u.SendError(c, detail, u.EmptyJsonMap(), result.Status(), title)
	}

	switch result.Status() {
	case http.StatusNoContent:
		c.Status(http.StatusNoContent)
		return nil
	case http.StatusCreated:
		res := u.SetResponse(c, textOk, `created`, u.EmptyJsonMap(), http.StatusCreated, `created`)
		return u.SendResponse(res)
	default:
		return u.SendSuccess(c, `success`, result.Payload())
	}
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if res.Message == nil || res.Message == "" {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// Underscore converts a Go field name to its snake_case json key, e.g.
// AuthorID to author_id.
func Underscore(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
