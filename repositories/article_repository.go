package repositories

import (
	"context"

	"cms-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetWithAuthor(ctx context.Context, id string) (*models.Article, error)
	GetList(ctx context.Context) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// authorDisplay loads only the author fields an article projection exposes.
func authorDisplay(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "photo_url")
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Omit("Author").Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetWithAuthor(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author", authorDisplay).
		Where("id = ?", id).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Author", authorDisplay).
		Order("updated_at desc").
		Order("id").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Omit("Author").Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", article.ID).Error
}
