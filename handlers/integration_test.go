package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cms-api/config"
	"cms-api/helper"
	"cms-api/logger"
	"cms-api/mediastore"
	"cms-api/models"
	"cms-api/repositories"
	"cms-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	media  *mediastore.Memory
	router *gin.Engine
	image  string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for x := 0; x < 32; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	suite.Require().NoError(png.Encode(&buf, img))
	suite.image = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (suite *IntegrationTestSuite) SetupTest() {
	db, err := config.InitDB(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"})
	suite.Require().NoError(err)
	suite.Require().NoError(config.AutoMigrate(db))
	suite.db = db
	suite.media = mediastore.NewMemory()

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) TearDownTest() {
	config.CloseDB(suite.db)
}

func (suite *IntegrationTestSuite) setupRouter() {
	log := logger.Nop()
	h, err := helper.NewHTTPHelper()
	suite.Require().NoError(err)

	// Initialize repositories
	authorRepo := repositories.NewAuthorRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, authorRepo, suite.media, log)
	authorService := services.NewAuthorService(authorRepo, suite.media, log)
	tagService := services.NewTagService(tagRepo, log)

	suite.router = NewRouter(log, Handlers{
		Article: NewArticleHandler(articleService, h),
		Author:  NewAuthorHandler(authorService, h),
		Tag:     NewTagHandler(tagService, h),
	})
}

func (suite *IntegrationTestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func (suite *IntegrationTestSuite) createAuthor(firstName string) string {
	w, _ := suite.request(http.MethodPost, "/api/author/create", map[string]interface{}{
		"title":      "Mx",
		"first_name": firstName,
		"last_name":  "Lovelace",
		"photo":      suite.image,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var author models.Author
	suite.Require().NoError(suite.db.Where("first_name = ?", firstName).First(&author).Error)
	return author.ID
}

func (suite *IntegrationTestSuite) TestHealth() {
	w, response := suite.request(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("healthy", response["status"])
	suite.NotEmpty(w.Header().Get("X-Request-Id"))
}

func (suite *IntegrationTestSuite) TestArticleLifecycle() {
	authorID := suite.createAuthor("Ada")

	w, response := suite.request(http.MethodPost, "/api/article/create", map[string]interface{}{
		"title":       "Notes",
		"description": "Sketch of the analytical engine",
		"content":     "The engine weaves algebraic patterns.",
		"author_id":   authorID,
		"tags":        []string{"math"},
		"caption":     suite.image,
	})
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal(map[string]interface{}{}, response["data"])
	suite.Equal(2, suite.media.Len())

	w, response = suite.request(http.MethodGet, "/api/articles/fetch", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	list := response["data"].([]interface{})
	suite.Require().Len(list, 1)
	article := list[0].(map[string]interface{})
	suite.Equal("Ada", article["author"].(map[string]interface{})["first_name"])
	suite.Equal([]interface{}{"math"}, article["tags"])
	suite.True(strings.HasPrefix(article["image_url"].(string), "memory://article_caption/"))
	id := article["id"].(string)

	w, _ = suite.request(http.MethodPut, "/api/article/update/"+id, map[string]interface{}{"tags": []string{}})
	suite.Equal(http.StatusCreated, w.Code)

	w, response = suite.request(http.MethodGet, "/api/article/fetch/"+id, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal([]interface{}{"math"}, response["data"].(map[string]interface{})["tags"])
	oldImage := response["data"].(map[string]interface{})["image_url"]

	w, _ = suite.request(http.MethodPut, "/api/article/update/"+id, map[string]interface{}{"caption": suite.image})
	suite.Equal(http.StatusCreated, w.Code)
	_, response = suite.request(http.MethodGet, "/api/article/fetch/"+id, nil)
	suite.NotEqual(oldImage, response["data"].(map[string]interface{})["image_url"])
	suite.Equal(2, suite.media.Len())

	w, response = suite.request(http.MethodDelete, "/api/article/delete/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Nil(response)
	suite.Equal(1, suite.media.Len())

	w, response = suite.request(http.MethodGet, "/api/article/fetch/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT FOUND", response["code_type"])
	suite.Equal("Article with the specified id could not be found", response["code_message"])
}

func (suite *IntegrationTestSuite) TestCreateArticleWithUnknownAuthor() {
	w, response := suite.request(http.MethodPost, "/api/article/create", map[string]interface{}{
		"title":       "Notes",
		"description": "d",
		"content":     "c",
		"author_id":   "00000000-0000-0000-0000-000000000000",
		"caption":     suite.image,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("BAD REQUEST", response["code_type"])
	suite.Equal("The specified author id does not match any existing author", response["code_message"])
	suite.Zero(suite.media.Len())
}

func (suite *IntegrationTestSuite) TestValidationErrors() {
	w, response := suite.request(http.MethodPost, "/api/article/create", map[string]interface{}{"title": "Notes"})
	suite.Equal(http.StatusBadRequest, w.Code)
	messages := response["code_message"].(map[string]interface{})
	suite.Contains(messages, "author_id")
	suite.Contains(messages, "caption")

	w, response = suite.request(http.MethodPost, "/api/author/create", "{not json")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("BAD REQUEST", response["code_type"])
}

func (suite *IntegrationTestSuite) TestInvalidPhotoIsSystemError() {
	w, response := suite.request(http.MethodPost, "/api/author/create", map[string]interface{}{
		"title":      "Mx",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"photo":      "not an image!",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("SYSTEM ERROR", response["code_type"])
	suite.True(strings.HasPrefix(response["code_message"].(string), "Invalid media payload\n"))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Author{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *IntegrationTestSuite) TestAuthorWithArticles() {
	authorID := suite.createAuthor("Ada")
	for _, title := range []string{"One", "Two"} {
		w, _ := suite.request(http.MethodPost, "/api/article/create", map[string]interface{}{
			"title":       title,
			"description": "d",
			"content":     "c",
			"author_id":   authorID,
			"caption":     suite.image,
		})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w, response := suite.request(http.MethodGet, "/api/author/fetch/"+authorID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	author := response["data"].(map[string]interface{})
	suite.Equal("Ada", author["first_name"])
	suite.Len(author["articles"], 2)

	w, _ = suite.request(http.MethodPut, "/api/author/update/"+authorID, map[string]interface{}{"first_name": "Augusta"})
	suite.Equal(http.StatusCreated, w.Code)

	w, response = suite.request(http.MethodGet, "/api/author/fetch", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	authors := response["data"].([]interface{})
	suite.Require().Len(authors, 1)
	suite.Equal("Augusta", authors[0].(map[string]interface{})["first_name"])
	suite.Equal("Lovelace", authors[0].(map[string]interface{})["last_name"])

	w, _ = suite.request(http.MethodDelete, "/api/author/delete/"+authorID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Zero(suite.media.Len())

	w, response = suite.request(http.MethodGet, "/api/articles/fetch", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(response["data"])
}

func (suite *IntegrationTestSuite) TestTagRoutes() {
	w, _ := suite.request(http.MethodPost, "/api/tag/create", map[string]interface{}{"title": "math"})
	suite.Equal(http.StatusCreated, w.Code)

	w, response := suite.request(http.MethodPost, "/api/tag/create", map[string]interface{}{"title": "math"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("A tag with the specified title already exists", response["code_message"])

	_, response = suite.request(http.MethodGet, "/api/tag/fetch", nil)
	tags := response["data"].([]interface{})
	suite.Require().Len(tags, 1)
	id := tags[0].(map[string]interface{})["id"].(string)

	w, _ = suite.request(http.MethodPut, "/api/tag/update/"+id, map[string]interface{}{"title": "logic"})
	suite.Equal(http.StatusCreated, w.Code)

	_, response = suite.request(http.MethodGet, "/api/tag/fetch/"+id, nil)
	suite.Equal("logic", response["data"].(map[string]interface{})["title"])

	w, _ = suite.request(http.MethodDelete, "/api/tag/delete/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w, _ = suite.request(http.MethodDelete, "/api/tag/delete/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestMetrics() {
	suite.request(http.MethodGet, "/health", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "http_requests_total")
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
