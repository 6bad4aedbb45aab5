package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = string(rune('0' + r.nextID))
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.FrontThumbnail != nil {
		p.Thumbnails.Front = *in.FrontThumbnail
	}
	if in.BackThumbnail != nil {
		p.Thumbnails.Back = *in.BackThumbnail
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.IsDeleted = true
	return nil
}

func (r *stubProductRepo) ListActive(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		if !p.IsDeleted {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubGalleryRepo struct {
	byID   map[string]*domain.Gallery
	nextID int
}

func newStubGalleryRepo() *stubGalleryRepo {
	return &stubGalleryRepo{byID: make(map[string]*domain.Gallery)}
}

func (r *stubGalleryRepo) Insert(_ context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	r.nextID++
	clone := *g
	clone.ID = string(rune('0' + r.nextID))
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGalleryRepo) FindByID(_ context.Context, id string) (*domain.Gallery, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGalleryRepo) Update(_ context.Context, id string, in ports.UpdateGalleryInput) (*domain.Gallery, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}
	if in.ProductID != nil {
		g.ProductID = *in.ProductID
	}
	if in.Images != nil {
		g.Images = in.Images
	}
	clone := *g
	return &clone, nil
}

func (r *stubGalleryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrGalleryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubGalleryRepo) List(_ context.Context) ([]*domain.Gallery, error) {
	var out []*domain.Gallery
	for _, g := range r.byID {
		clone := *g
		out = append(out, &clone)
	}
	return out, nil
}

type stubFeedbackRepo struct {
	byID   map[string]*domain.Feedback
	nextID int
}

func newStubFeedbackRepo() *stubFeedbackRepo {
	return &stubFeedbackRepo{byID: make(map[string]*domain.Feedback)}
}

func (r *stubFeedbackRepo) Insert(_ context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	r.nextID++
	clone := *f
	clone.ID = string(rune('0' + r.nextID))
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFeedbackRepo) FindByID(_ context.Context, id string) (*domain.Feedback, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFeedbackRepo) MarkResolved(_ context.Context, id string) (*domain.Feedback, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	f.IsResolved = true
	clone := *f
	return &clone, nil
}

func (r *stubFeedbackRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFeedbackNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubFeedbackRepo) List(_ context.Context) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	for _, f := range r.byID {
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Product tests
// ---------------------------------------------------------------------------

func TestProductService_Create_StoresThumbnails(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreateProductInput{
		Title:          "Mug",
		Price:          9.99,
		FrontThumbnail: "uploads/123-front.png",
		BackThumbnail:  "uploads/123-back.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Thumbnails.Front != "uploads/123-front.png" || p.Thumbnails.Back != "uploads/123-back.png" {
		t.Errorf("thumbnails not stored: %+v", p.Thumbnails)
	}
}

func TestProductService_SoftDeletedHiddenFromListAndGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	kept, _ := svc.Create(context.Background(), ports.CreateProductInput{Title: "kept"})
	gone, _ := svc.Create(context.Background(), ports.CreateProductInput{Title: "gone"})

	if err := svc.SoftDelete(context.Background(), gone.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != kept.ID {
		t.Fatalf("expected only the active product, got %+v", list)
	}
	if _, err := svc.Get(context.Background(), gone.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for soft-deleted product, got %v", err)
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	p, _ := svc.Create(context.Background(), ports.CreateProductInput{Title: "old", Price: 1})

	title := "new"
	updated, err := svc.Update(context.Background(), p.ID, ports.UpdateProductInput{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "new" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Price != 1 {
		t.Errorf("price must be untouched, got %v", updated.Price)
	}
}

// ---------------------------------------------------------------------------
// Gallery tests
// ---------------------------------------------------------------------------

func TestGalleryService_Create_RequiresImages(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "prod-1", nil); !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
}

func TestGalleryService_CreateAndDelete(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := NewGalleryService(repo, zerolog.Nop())

	g, err := svc.Create(context.Background(), "prod-1", []string{"uploads/a.png", "uploads/b.png"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(g.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(g.Images))
	}

	if err := svc.Delete(context.Background(), g.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), g.ID); !errors.Is(err, domain.ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound after delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Feedback tests
// ---------------------------------------------------------------------------

func TestFeedbackService_SubmitAndResolve(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	f, err := svc.Submit(context.Background(), "Ana", "ana@example.com", "love the store")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if f.IsResolved {
		t.Fatal("new feedback must start unresolved")
	}

	resolved, err := svc.Resolve(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !resolved.IsResolved {
		t.Fatal("feedback must be resolved")
	}
}

func TestFeedbackService_Delete(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	f, _ := svc.Submit(context.Background(), "Ana", "ana@example.com", "hi")
	if err := svc.Delete(context.Background(), f.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), f.ID); !errors.Is(err, domain.ErrFeedbackNotFound) {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}
