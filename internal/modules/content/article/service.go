package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/roar-media/core/internal/composer"
	"github.com/roar-media/core/internal/models"
	"github.com/roar-media/core/internal/pkg/pagination"
	pkgredis "github.com/roar-media/core/internal/pkg/redis"
	"github.com/roar-media/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	publishedCacheKey = "roar:articles:published"
	publishedCacheTTL = 30 * time.Second
)

var errPublishedIsFinal = errors.New("a published article cannot revert to draft")

type Service struct {
	db *gorm.DB
	rc *pkgredis.Client
}

func NewService(db *gorm.DB, rc *pkgredis.Client) *Service {
	return &Service{db: db, rc: rc}
}

// ListPublished returns the public magazine list, newest first, cached
// briefly in Redis.
func (s *Service) ListPublished(ctx context.Context) ([]models.ArticleModel, error) {
	if s.rc != nil {
		if cached, err := s.rc.Get(ctx, publishedCacheKey); err == nil && cached != "" {
			var items []models.ArticleModel
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	var items []models.ArticleModel
	err := s.db.Where("status = ?", models.ArticlePublished).
		Order("date DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	if s.rc != nil {
		if payload, err := json.Marshal(items); err == nil {
			_ = s.rc.Set(ctx, publishedCacheKey, string(payload), publishedCacheTTL)
		}
	}
	return items, nil
}

// ListAll returns every article for the editor studio, drafts included.
func (s *Service) ListAll() ([]models.ArticleModel, error) {
	var items []models.ArticleModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// ListAllPaged is ListAll with limit/offset for large studio archives.
func (s *Service) ListAllPaged(q pagination.Query) ([]models.ArticleModel, response.Pagination, error) {
	var items []models.ArticleModel
	query := s.db.Model(&models.ArticleModel{}).Order("created_at DESC")
	meta, err := pagination.Paginate(query, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetByID loads one article, nil when missing.
func (s *Service) GetByID(id string) (*models.ArticleModel, error) {
	var item models.ArticleModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Save creates the article, or updates it when the dto carries an id.
// coverName/pdfName are the stored filenames of freshly uploaded files,
// empty when the submission carried none. Last write wins; no
// concurrent-edit reconciliation is attempted.
func (s *Service) Save(ctx context.Context, dto *SaveArticleDTO, coverName, pdfName string) (*models.ArticleModel, error) {
	if err := ValidateBlocks(dto.Blocks); err != nil {
		return nil, err
	}

	var item *models.ArticleModel
	if dto.ID != "" {
		existing, err := s.GetByID(dto.ID)
		if err != nil {
			return nil, err
		}
		item = existing
	}

	status := models.ArticleStatus(dto.Status)
	if item == nil {
		item = &models.ArticleModel{Base: models.Base{ID: dto.ID}}
	} else if item.Status == models.ArticlePublished && status == models.ArticleDraft {
		return nil, errPublishedIsFinal
	}

	item.Title = dto.Title
	item.Author = dto.Author
	item.Date = dto.Date
	item.Font = dto.Font
	item.Color = dto.Color
	item.Summary = dto.Summary
	item.Status = status
	item.Blocks = dto.Blocks
	if coverName != "" {
		item.CoverImage = coverName
	}
	if pdfName != "" {
		item.PDFFile = pdfName
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return item, nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.Delete(&models.ArticleModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.rc != nil {
		_ = s.rc.Del(ctx, publishedCacheKey)
	}
}

// ValidateBlocks fails closed on a block sequence that would not load back
// into the composer: the whole array must parse and every block's payload
// must decode per its kind.
func ValidateBlocks(raw string) error {
	var wire []composer.WireBlock
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return fmt.Errorf("%w: block sequence: %v", composer.ErrMalformedBlockPayload, err)
	}
	seen := make(map[string]bool, len(wire))
	for _, w := range wire {
		if w.ID == "" || seen[w.ID] {
			return fmt.Errorf("%w: block id %q is missing or duplicated", composer.ErrMalformedBlockPayload, w.ID)
		}
		seen[w.ID] = true
		if _, err := composer.DecodePayload(composer.Kind(w.Type), w.Content); err != nil {
			return err
		}
	}
	return nil
}
