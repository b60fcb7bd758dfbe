package repositories

import (
	"context"

	"cms-api/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Author, error)
	GetWithArticles(ctx context.Context, id string) (*models.Author, error)
	GetAll(ctx context.Context) ([]models.Author, error)
	Update(ctx context.Context, author *models.Author) error
	Delete(ctx context.Context, author *models.Author) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *authorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	var author models.Author
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&author).Error
	return &author, err
}

func (r *authorRepository) GetWithArticles(ctx context.Context, id string) (*models.Author, error) {
	var author models.Author
	err := r.db.WithContext(ctx).
		Preload("Articles", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at desc").Order("id")
		}).
		Where("id = ?", id).
		First(&author).Error
	return &author, err
}

func (r *authorRepository) GetAll(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := r.db.WithContext(ctx).Order("updated_at desc").Order("id").Find(&authors).Error
	return authors, err
}

func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Omit("Articles").Save(author).Error
}

// Delete removes the author and the articles it owns in one transaction.
func (r *authorRepository) Delete(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", author.ID).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Author{}, "id = ?", author.ID).Error
	})
}
