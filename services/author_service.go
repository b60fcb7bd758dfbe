package services

import (
	"context"
	"net/http"

	"cms-api/logger"
	"cms-api/mediastore"
	"cms-api/models"
	"cms-api/repositories"

	"golang.org/x/sync/errgroup"
)

const (
	msgAuthorIDRequired = "The author id is required"
	msgAuthorNotFound   = "Author with the specified id could not be found"
)

type AuthorService interface {
	Create(ctx context.Context, req models.AuthorCredentials) models.OperationResult[any]
	Fetch(ctx context.Context) models.OperationResult[[]models.AuthorView]
	FetchByID(ctx context.Context, id string) models.OperationResult[*models.AuthorDetail]
	Update(ctx context.Context, id string, req models.UpdateAuthorCredentials) models.OperationResult[any]
	Delete(ctx context.Context, id string) models.OperationResult[any]
}

type authorService struct {
	authorRepo repositories.AuthorRepository
	media      mediastore.Client
	log        *logger.Logger
}

func NewAuthorService(authorRepo repositories.AuthorRepository, media mediastore.Client, log *logger.Logger) AuthorService {
	return &authorService{
		authorRepo: authorRepo,
		media:      media,
		log:        log.With("service", "AuthorService"),
	}
}

func (s *authorService) Create(ctx context.Context, req models.AuthorCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Create", &res)

	asset, err := upload(ctx, s.media, req.Photo, mediastore.PresetAuthorPhoto)
	if err != nil {
		log.Error("failed to upload author photo", "error", err)
		return models.Resolve[any](http.StatusCreated, nil, err)
	}

	author := &models.Author{
		Title:     req.Title,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	author.SetPhoto(asset.ID, asset.URL)

	if err := s.authorRepo.Create(ctx, author); err != nil {
		log.Error("failed to insert author", "error", err)
		discard(ctx, log, s.media, asset.ID, "author insert failed")
		return models.Resolve[any](http.StatusCreated, nil, err)
	}

	log.Info("author created", "author_id", author.ID)
	return models.Resolve[any](http.StatusCreated, nil, nil)
}

func (s *authorService) Fetch(ctx context.Context) (res models.OperationResult[[]models.AuthorView]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Fetch", &res)

	authors, err := s.authorRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to list authors", "error", err)
		return models.Resolve[[]models.AuthorView](http.StatusOK, nil, err)
	}

	views := make([]models.AuthorView, 0, len(authors))
	for i := range authors {
		views = append(views, models.NewAuthorView(&authors[i]))
	}
	return models.Resolve(http.StatusOK, views, nil)
}

func (s *authorService) FetchByID(ctx context.Context, id string) (res models.OperationResult[*models.AuthorDetail]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "FetchByID", &res)

	if id == "" {
		return models.Resolve[*models.AuthorDetail](http.StatusOK, nil, models.BadRequest(msgAuthorIDRequired))
	}

	author, err := s.authorRepo.GetWithArticles(ctx, id)
	if err != nil {
		return models.Resolve[*models.AuthorDetail](http.StatusOK, nil, lookup(err, msgAuthorNotFound))
	}

	detail := models.NewAuthorDetail(author)
	return models.Resolve(http.StatusOK, &detail, nil)
}

func (s *authorService) Update(ctx context.Context, id string, req models.UpdateAuthorCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Update", &res)

	return models.Resolve[any](http.StatusCreated, nil, s.update(ctx, log, id, req))
}

func (s *authorService) update(ctx context.Context, log *logger.Logger, id string, req models.UpdateAuthorCredentials) error {
	if id == "" {
		return models.BadRequest(msgAuthorIDRequired)
	}

	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return lookup(err, msgAuthorNotFound)
	}

	if req.Title != "" {
		author.Title = req.Title
	}
	if req.FirstName != "" {
		author.FirstName = req.FirstName
	}
	if req.LastName != "" {
		author.LastName = req.LastName
	}

	var replacement *mediastore.Asset
	if req.Photo != "" {
		replacement, err = upload(ctx, s.media, req.Photo, mediastore.PresetAuthorPhoto)
		if err != nil {
			log.Error("failed to upload replacement photo", "author_id", id, "error", err)
			return err
		}
		discard(ctx, log, s.media, author.PhotoAssetID, "photo replaced")
		author.SetPhoto(replacement.ID, replacement.URL)
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		log.Error("failed to update author", "author_id", id, "error", err)
		if replacement != nil {
			discard(ctx, log, s.media, replacement.ID, "author update failed")
		}
		return err
	}

	log.Info("author updated", "author_id", id)
	return nil
}

func (s *authorService) Delete(ctx context.Context, id string) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Delete", &res)

	return models.Resolve[any](http.StatusNoContent, nil, s.delete(ctx, log, id))
}

// delete removes every asset the author owns before any row goes, so a
// store failure leaves the author and its articles in place.
func (s *authorService) delete(ctx context.Context, log *logger.Logger, id string) error {
	if id == "" {
		return models.BadRequest(msgAuthorIDRequired)
	}

	author, err := s.authorRepo.GetWithArticles(ctx, id)
	if err != nil {
		return lookup(err, msgAuthorNotFound)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return remove(gctx, s.media, author.PhotoAssetID)
	})
	for _, article := range author.Articles {
		assetID := article.ImageAssetID
		g.Go(func() error {
			return remove(gctx, s.media, assetID)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("failed to delete author media", "author_id", id, "error", err)
		return err
	}

	if err := s.authorRepo.Delete(ctx, author); err != nil {
		log.Error("failed to delete author", "author_id", id, "error", err)
		return err
	}

	log.Info("author deleted", "author_id", id, "articles", len(author.Articles))
	return nil
}
