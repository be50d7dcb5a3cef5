package article_test

import (
	"context"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// stubRepo is a minimal in-memory ArticleRepository that records the
// arguments handlers pass through the service layer.
type stubRepo struct {
	data        map[int64]*entity.Article
	nextID      int64
	lastFilter  *repository.ArticleFilter
	lastSearch  string
	searchCalls int
	listCalls   int
	err         error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) seed(a *entity.Article) *entity.Article {
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return a
}

func (s *stubRepo) List(_ context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	s.listCalls++
	s.lastFilter = &filter
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
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
	a.PublishedAt = time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	s.seed(a)
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

func (s *stubRepo) Search(_ context.Context, query string) ([]*entity.Article, error) {
	s.searchCalls++
	s.lastSearch = query
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if a.Published {
			out = append(out, a)
		}
	}
	return out, nil
}
