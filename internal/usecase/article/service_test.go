package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

// Minimal in-memory ArticleRepository.
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error // forces every call to fail when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context, _ repository.ArticleFilter) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	a.PublishedAt = time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *stubRepo) IncrementViews(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return false, nil
	}
	a.Views++
	return true, nil
}

func (s *stubRepo) Search(_ context.Context, _ string) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, v := range s.data {
		if v.Published {
			out = append(out, v)
		}
	}
	return out, s.err
}

func validCreateInput() artUC.CreateInput {
	return artUC.CreateInput{
		Title:     "Election results are in",
		Slug:      "election-results-are-in",
		Excerpt:   "teaser",
		Content:   "<p>body</p>",
		Author:    "Jane Smith",
		Published: true,
	}
}

func TestService_Create(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	art, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if art.ID != 1 {
		t.Errorf("ID = %d, want 1", art.ID)
	}
	if art.Views != 0 {
		t.Errorf("Views = %d, want 0", art.Views)
	}
	if art.PublishedAt.IsZero() {
		t.Error("PublishedAt should be assigned on create")
	}
}

func TestService_Create_ReportsEveryInvalidField(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), artUC.CreateInput{})

	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	fields := verrs.Fields()
	want := map[string]bool{"title": true, "slug": true, "excerpt": true, "content": true, "author": true}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want all of %v", fields, want)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected field %q", f)
		}
	}
	if len(stub.data) != 0 {
		t.Error("invalid input must not reach the repository")
	}
}

func TestService_Create_RejectsBadSlug(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	in := validCreateInput()
	in.Slug = "Not A Slug!"
	_, err := svc.Create(context.Background(), in)

	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if fields := verrs.Fields(); len(fields) != 1 || fields[0] != "slug" {
		t.Fatalf("fields = %v, want [slug]", fields)
	}
}

func TestService_Create_RejectsNonPositiveCategoryID(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	in := validCreateInput()
	cid := int64(0)
	in.CategoryID = &cid
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("Create should reject categoryId <= 0")
	}
}

func TestService_Update_MergesOnlyProvidedFields(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	created.Views = 7
	stub.data[created.ID] = created

	title := "Updated headline"
	got, err := svc.Update(context.Background(), artUC.UpdateInput{ID: created.ID, Title: &title})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Title != title {
		t.Errorf("Title = %q, want %q", got.Title, title)
	}
	if got.Slug != "election-results-are-in" {
		t.Errorf("Slug changed: %q", got.Slug)
	}
	if got.Views != 7 {
		t.Errorf("Views = %d, want 7 (update must not touch the counter)", got.Views)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	title := "x"
	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 42, Title: &title})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Update err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_Update_InvalidID(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 0})
	if !errors.Is(err, artUC.ErrInvalidArticleID) {
		t.Fatalf("Update err=%v, want ErrInvalidArticleID", err)
	}
}

func TestService_Update_RejectsEmptyRequiredField(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	empty := ""
	_, err = svc.Update(context.Background(), artUC.UpdateInput{ID: created.ID, Excerpt: &empty})
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
}

func TestService_Delete(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("second Delete err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_IncrementViews(t *testing.T) {
	stub := newStub()
	svc := &artUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	found, err := svc.IncrementViews(context.Background(), created.ID)
	if err != nil || !found {
		t.Fatalf("IncrementViews err=%v found=%v", err, found)
	}
	if stub.data[created.ID].Views != 1 {
		t.Errorf("Views = %d, want 1", stub.data[created.ID].Views)
	}
}

func TestService_IncrementViews_UnknownIDIsNotAnError(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	found, err := svc.IncrementViews(context.Background(), 42)
	if err != nil {
		t.Fatalf("IncrementViews err=%v", err)
	}
	if found {
		t.Fatal("found=true for unknown id")
	}
}

func TestService_IncrementViews_InvalidID(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	if _, err := svc.IncrementViews(context.Background(), -1); !errors.Is(err, artUC.ErrInvalidArticleID) {
		t.Fatalf("IncrementViews err=%v, want ErrInvalidArticleID", err)
	}
}

func TestService_GetBySlug_NotFound(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	_, err := svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("GetBySlug err=%v, want ErrArticleNotFound", err)
	}
}
