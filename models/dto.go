package models

import "time"

// ArticleCredentials is the payload to create an article. Caption is a
// base64 (optionally data-URI) encoded image.
type ArticleCredentials struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	AuthorID    string   `json:"author_id" validate:"required"`
	Tags        []string `json:"tags"`
	Caption     string   `json:"caption" validate:"required"`
}

// UpdateArticleCredentials carries a partial update; empty fields are left unchanged.
type UpdateArticleCredentials struct {
	Title       string   `json:"title" validate:"max=255"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	AuthorID    string   `json:"author_id"`
	Tags        []string `json:"tags"`
	Caption     string   `json:"caption"`
}

type AuthorCredentials struct {
	Title     string `json:"title" validate:"required,max=50"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Photo     string `json:"photo" validate:"required"`
}

type UpdateAuthorCredentials struct {
	Title     string `json:"title" validate:"max=50"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Photo     string `json:"photo"`
}

type TagCredentials struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

type UpdateTagCredentials struct {
	Title string `json:"title" validate:"max=100"`
}

// AuthorSummary is the author as embedded in an article projection.
type AuthorSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

type ArticleView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	ImageURL    string        `json:"image_url"`
	Tags        []string      `json:"tags"`
	Author      AuthorSummary `json:"author"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ArticleSummary is an article nested under its author, without a back-reference.
type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthorView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	PhotoURL  string    `json:"photo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorDetail is a single author with its articles. Articles is never
// omitted, an author without articles carries an empty list.
type AuthorDetail struct {
	AuthorView
	Articles []ArticleSummary `json:"articles"`
}

func NewArticleView(a *Article) ArticleView {
	view := ArticleView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		Tags:        a.TagList(),
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Author != nil {
		view.Author = AuthorSummary{
			FirstName: a.Author.FirstName,
			LastName:  a.Author.LastName,
			PhotoURL:  a.Author.PhotoURL,
		}
	}
	return view
}

func NewArticleSummary(a *Article) ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewAuthorDetail(a *Author) AuthorDetail {
	detail := AuthorDetail{
		AuthorView: NewAuthorView(a),
		Articles:   make([]ArticleSummary, 0, len(a.Articles)),
	}
	for i := range a.Articles {
		detail.Articles = append(detail.Articles, NewArticleSummary(&a.Articles[i]))
	}
	return detail
}

func NewAuthorView(a *Author) AuthorView {
	return AuthorView{
		ID:        a.ID,
		Title:     a.Title,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		PhotoURL:  a.PhotoURL,
		UpdatedAt: a.UpdatedAt,
	}
}
