package services

import (
	"context"
	"net/http"

	"cms-api/logger"
	"cms-api/mediastore"
	"cms-api/models"
	"cms-api/repositories"
)

const (
	msgArticleIDRequired = "The article id is required"
	msgArticleNotFound   = "Article with the specified id could not be found"
	msgAuthorMismatch    = "The specified author id does not match any existing author"
)

type ArticleService interface {
	Create(ctx context.Context, req models.ArticleCredentials) models.OperationResult[any]
	Fetch(ctx context.Context) models.OperationResult[[]models.ArticleView]
	FetchByID(ctx context.Context, id string) models.OperationResult[*models.ArticleView]
	Update(ctx context.Context, id string, req models.UpdateArticleCredentials) models.OperationResult[any]
	Delete(ctx context.Context, id string) models.OperationResult[any]
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	authorRepo  repositories.AuthorRepository
	media       mediastore.Client
	log         *logger.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	authorRepo repositories.AuthorRepository,
	media mediastore.Client,
	log *logger.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		authorRepo:  authorRepo,
		media:       media,
		log:         log.With("service", "ArticleService"),
	}
}

func (s *articleService) Create(ctx context.Context, req models.ArticleCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Create", &res)

	return models.Resolve[any](http.StatusCreated, nil, s.create(ctx, log, req))
}

func (s *articleService) create(ctx context.Context, log *logger.Logger, req models.ArticleCredentials) error {
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return err
	}

	asset, err := upload(ctx, s.media, req.Caption, mediastore.PresetArticleCaption)
	if err != nil {
		log.Error("failed to upload article caption", "error", err)
		return err
	}

	article := &models.Article{
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        models.JoinTags(req.Tags),
	}
	article.SetImage(asset.ID, asset.URL)

	if err := s.articleRepo.Create(ctx, article); err != nil {
		log.Error("failed to insert article", "error", err)
		discard(ctx, log, s.media, asset.ID, "article insert failed")
		return err
	}

	log.Info("article created", "article_id", article.ID, "author_id", article.AuthorID)
	return nil
}

func (s *articleService) Fetch(ctx context.Context) (res models.OperationResult[[]models.ArticleView]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Fetch", &res)

	articles, err := s.articleRepo.GetList(ctx)
	if err != nil {
		log.Error("failed to list articles", "error", err)
		return models.Resolve[[]models.ArticleView](http.StatusOK, nil, err)
	}

	views := make([]models.ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, models.NewArticleView(&articles[i]))
	}
	return models.Resolve(http.StatusOK, views, nil)
}

func (s *articleService) FetchByID(ctx context.Context, id string) (res models.OperationResult[*models.ArticleView]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "FetchByID", &res)

	if id == "" {
		return models.Resolve[*models.ArticleView](http.StatusOK, nil, models.BadRequest(msgArticleIDRequired))
	}

	article, err := s.articleRepo.GetWithAuthor(ctx, id)
	if err != nil {
		return models.Resolve[*models.ArticleView](http.StatusOK, nil, lookup(err, msgArticleNotFound))
	}

	view := models.NewArticleView(article)
	return models.Resolve(http.StatusOK, &view, nil)
}

func (s *articleService) Update(ctx context.Context, id string, req models.UpdateArticleCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Update", &res)

	return models.Resolve[any](http.StatusCreated, nil, s.update(ctx, log, id, req))
}

func (s *articleService) update(ctx context.Context, log *logger.Logger, id string, req models.UpdateArticleCredentials) error {
	if id == "" {
		return models.BadRequest(msgArticleIDRequired)
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return lookup(err, msgArticleNotFound)
	}

	if req.AuthorID != "" && req.AuthorID != article.AuthorID {
		if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
			return err
		}
		article.AuthorID = req.AuthorID
	}
	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Description != "" {
		article.Description = req.Description
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if tags := models.JoinTags(req.Tags); tags != nil {
		article.Tags = tags
	}

	var replacement *mediastore.Asset
	if req.Caption != "" {
		replacement, err = upload(ctx, s.media, req.Caption, mediastore.PresetArticleCaption)
		if err != nil {
			log.Error("failed to upload replacement caption", "article_id", id, "error", err)
			return err
		}
		discard(ctx, log, s.media, article.ImageAssetID, "caption replaced")
		article.SetImage(replacement.ID, replacement.URL)
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		log.Error("failed to update article", "article_id", id, "error", err)
		if replacement != nil {
			discard(ctx, log, s.media, replacement.ID, "article update failed")
		}
		return err
	}

	log.Info("article updated", "article_id", id)
	return nil
}

func (s *articleService) Delete(ctx context.Context, id string) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Delete", &res)

	return models.Resolve[any](http.StatusNoContent, nil, s.delete(ctx, log, id))
}

func (s *articleService) delete(ctx context.Context, log *logger.Logger, id string) error {
	if id == "" {
		return models.BadRequest(msgArticleIDRequired)
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return lookup(err, msgArticleNotFound)
	}

	if err := remove(ctx, s.media, article.ImageAssetID); err != nil {
		log.Error("failed to delete article caption", "article_id", id, "asset_id", article.ImageAssetID, "error", err)
		return err
	}

	if err := s.articleRepo.Delete(ctx, article); err != nil {
		log.Error("failed to delete article", "article_id", id, "error", err)
		return err
	}

	log.Info("article deleted", "article_id", id)
	return nil
}

func (s *articleService) requireAuthor(ctx context.Context, authorID string) error {
	if authorID == "" {
		return models.BadRequest(msgAuthorMismatch)
	}
	exists, err := s.authorRepo.Exists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return models.BadRequest(msgAuthorMismatch)
	}
	return nil
}
