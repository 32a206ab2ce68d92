package product

import (
	"context"
	"io"
	"strings"
	"time"

	domproduct "example.com/forever-shop/backend/internal/domain/product"
)

type ProductRepository interface {
	domproduct.Repository
}

// MediaUploader pushes an image to the external media host and returns the
// hosted URL.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, name string) (string, error)
}

type Service struct {
	repo     ProductRepository
	uploader MediaUploader
}

func NewService(repo ProductRepository, uploader MediaUploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

type ImageFile struct {
	Name   string
	Reader io.Reader
}

type AddInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
	Images      []ImageFile
}

// Add uploads the images first, then persists the catalog entry. Products
// are never edited in place; there is no update operation.
func (s *Service) Add(ctx context.Context, in AddInput) (*domproduct.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domproduct.ErrInvalidName
	}
	if in.Price <= 0 {
		return nil, domproduct.ErrInvalidPrice
	}
	if len(in.Images) == 0 {
		return nil, domproduct.ErrNoImages
	}

	urls := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		url, err := s.uploader.Upload(ctx, img.Reader, img.Name)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	p := &domproduct.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Sizes:       in.Sizes,
		Image:       urls,
		Bestseller:  in.Bestseller,
		Date:        time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domproduct.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
