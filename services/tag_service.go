package services

import (
	"context"
	"errors"
	"net/http"

	"cms-api/logger"
	"cms-api/models"
	"cms-api/repositories"

	"gorm.io/gorm"
)

const (
	msgTagIDRequired = "The tag id is required"
	msgTagNotFound   = "Tag with the specified id could not be found"
	msgTagExists     = "A tag with the specified title already exists"
)

type TagService interface {
	Create(ctx context.Context, req models.TagCredentials) models.OperationResult[any]
	Fetch(ctx context.Context) models.OperationResult[[]models.Tag]
	FetchByID(ctx context.Context, id string) models.OperationResult[*models.Tag]
	Update(ctx context.Context, id string, req models.UpdateTagCredentials) models.OperationResult[any]
	Delete(ctx context.Context, id string) models.OperationResult[any]
}

type tagService struct {
	tagRepo repositories.TagRepository
	log     *logger.Logger
}

func NewTagService(tagRepo repositories.TagRepository, log *logger.Logger) TagService {
	return &tagService{
		tagRepo: tagRepo,
		log:     log.With("service", "TagService"),
	}
}

func (s *tagService) Create(ctx context.Context, req models.TagCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Create", &res)

	// Check if tag already exists
	if err := s.requireUniqueTitle(ctx, req.Title); err != nil {
		return models.Resolve[any](http.StatusCreated, nil, err)
	}

	tag := &models.Tag{Title: req.Title}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Resolve[any](http.StatusCreated, nil, models.BadRequest(msgTagExists))
		}
		log.Error("failed to insert tag", "error", err)
		return models.Resolve[any](http.StatusCreated, nil, err)
	}

	log.Info("tag created", "tag_id", tag.ID)
	return models.Resolve[any](http.StatusCreated, nil, nil)
}

func (s *tagService) Fetch(ctx context.Context) (res models.OperationResult[[]models.Tag]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Fetch", &res)

	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to list tags", "error", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return models.Resolve(http.StatusOK, tags, err)
}

func (s *tagService) FetchByID(ctx context.Context, id string) (res models.OperationResult[*models.Tag]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "FetchByID", &res)

	if id == "" {
		return models.Resolve[*models.Tag](http.StatusOK, nil, models.BadRequest(msgTagIDRequired))
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return models.Resolve[*models.Tag](http.StatusOK, nil, lookup(err, msgTagNotFound))
	}
	return models.Resolve(http.StatusOK, tag, nil)
}

func (s *tagService) Update(ctx context.Context, id string, req models.UpdateTagCredentials) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Update", &res)

	if id == "" {
		return models.Resolve[any](http.StatusCreated, nil, models.BadRequest(msgTagIDRequired))
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return models.Resolve[any](http.StatusCreated, nil, lookup(err, msgTagNotFound))
	}

	if req.Title != "" && req.Title != tag.Title {
		if err := s.requireUniqueTitle(ctx, req.Title); err != nil {
			return models.Resolve[any](http.StatusCreated, nil, err)
		}
		tag.Title = req.Title
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Resolve[any](http.StatusCreated, nil, models.BadRequest(msgTagExists))
		}
		log.Error("failed to update tag", "tag_id", id, "error", err)
		return models.Resolve[any](http.StatusCreated, nil, err)
	}
	return models.Resolve[any](http.StatusCreated, nil, nil)
}

func (s *tagService) Delete(ctx context.Context, id string) (res models.OperationResult[any]) {
	log := s.log.FromContext(ctx)
	defer guard(log, "Delete", &res)

	if id == "" {
		return models.Resolve[any](http.StatusNoContent, nil, models.BadRequest(msgTagIDRequired))
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return models.Resolve[any](http.StatusNoContent, nil, lookup(err, msgTagNotFound))
	}

	if err := s.tagRepo.Delete(ctx, tag); err != nil {
		log.Error("failed to delete tag", "tag_id", id, "error", err)
		return models.Resolve[any](http.StatusNoContent, nil, err)
	}

	log.Info("tag deleted", "tag_id", id)
	return models.Resolve[any](http.StatusNoContent, nil, nil)
}

func (s *tagService) requireUniqueTitle(ctx context.Context, title string) error {
	_, err := s.tagRepo.GetByTitle(ctx, title)
	if err == nil {
		return models.BadRequest(msgTagExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
