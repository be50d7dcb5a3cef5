package breakingnews_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	bnUC "newsdesk/internal/usecase/breakingnews"
)

// Minimal in-memory BreakingNewsRepository.
type stubRepo struct {
	data   map[int64]*entity.BreakingNews
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.BreakingNews{}, nextID: 1}
}

func (s *stubRepo) GetActive(_ context.Context) (*entity.BreakingNews, error) {
	if s.err != nil {
		return nil, s.err
	}
	var latest *entity.BreakingNews
	for _, n := range s.data {
		if !n.Active {
			continue
		}
		if latest == nil || n.CreatedAt.After(latest.CreatedAt) {
			latest = n
		}
	}
	return latest, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.BreakingNews, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, n *entity.BreakingNews) error {
	if s.err != nil {
		return s.err
	}
	n.ID = s.nextID
	n.CreatedAt = time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.nextID) * time.Minute)
	s.nextID++
	s.data[n.ID] = n
	return nil
}

func (s *stubRepo) Update(_ context.Context, n *entity.BreakingNews) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[n.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[n.ID] = n
	return nil
}

func TestService_Active_EmptyIsNotAnError(t *testing.T) {
	svc := &bnUC.Service{Repo: newStub()}

	news, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("Active err=%v", err)
	}
	if news != nil {
		t.Fatalf("Active = %+v, want nil", news)
	}
}

func TestService_Active_ReturnsMostRecent(t *testing.T) {
	stub := newStub()
	svc := &bnUC.Service{Repo: stub}

	if _, err := svc.Create(context.Background(), bnUC.CreateInput{Title: "First", URL: "/a", Active: true}); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	second, err := svc.Create(context.Background(), bnUC.CreateInput{Title: "Second", URL: "/b", Active: true})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	news, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("Active err=%v", err)
	}
	if news == nil || news.ID != second.ID {
		t.Fatalf("Active = %+v, want the most recent item (id %d)", news, second.ID)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := &bnUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), bnUC.CreateInput{})

	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	fields := verrs.Fields()
	if len(fields) != 2 {
		t.Fatalf("fields = %v, want [title url]", fields)
	}
}

func TestService_Create_RelativeURLAllowed(t *testing.T) {
	svc := &bnUC.Service{Repo: newStub()}

	news, err := svc.Create(context.Background(), bnUC.CreateInput{
		Title: "Breaking", URL: "/live", Active: true,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if news.URL != "/live" {
		t.Errorf("URL = %q, want /live", news.URL)
	}
}

func TestService_Update_Deactivate(t *testing.T) {
	stub := newStub()
	svc := &bnUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), bnUC.CreateInput{Title: "Breaking", URL: "/live", Active: true})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	inactive := false
	updated, err := svc.Update(context.Background(), bnUC.UpdateInput{ID: created.ID, Active: &inactive})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.Active {
		t.Error("item should be inactive after update")
	}
	if updated.Title != "Breaking" {
		t.Errorf("Title changed: %q", updated.Title)
	}

	news, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("Active err=%v", err)
	}
	if news != nil {
		t.Fatalf("Active = %+v, want nil after deactivation", news)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &bnUC.Service{Repo: newStub()}

	title := "x"
	_, err := svc.Update(context.Background(), bnUC.UpdateInput{ID: 42, Title: &title})
	if !errors.Is(err, bnUC.ErrBreakingNewsNotFound) {
		t.Fatalf("Update err=%v, want ErrBreakingNewsNotFound", err)
	}
}

func TestService_Update_InvalidID(t *testing.T) {
	svc := &bnUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), bnUC.UpdateInput{ID: 0})
	if !errors.Is(err, bnUC.ErrInvalidBreakingNewsID) {
		t.Fatalf("Update err=%v, want ErrInvalidBreakingNewsID", err)
	}
}
