package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	pg "newsdesk/internal/infra/adapter/persistence/postgres"
)

func TestCategoryRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "color"}).
			AddRow(int64(1), "Politics", "politics", "#EF4444").
			AddRow(int64(2), "Technology", "technology", "#3B82F6"))

	repo := pg.NewCategoryRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[0].Slug != "politics" || got[1].Slug != "technology" {
		t.Fatalf("unexpected slugs: %q, %q", got[0].Slug, got[1].Slug)
	}
}

func TestCategoryRepo_GetBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Category{ID: 1, Name: "Politics", Slug: "politics", Color: "#EF4444"}

	mock.ExpectQuery("WHERE slug").
		WithArgs("politics").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "color"}).
			AddRow(want.ID, want.Name, want.Slug, want.Color))

	repo := pg.NewCategoryRepo(db)
	got, err := repo.GetBySlug(context.Background(), "politics")
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryRepo_GetBySlug_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("WHERE slug").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "color"}))

	repo := pg.NewCategoryRepo(db)
	got, err := repo.GetBySlug(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetBySlug want nil for missing row, got %+v", got)
	}
}

func TestCategoryRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs("Sports", "sports", "#10B981").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	repo := pg.NewCategoryRepo(db)
	category := &entity.Category{Name: "Sports", Slug: "sports", Color: "#10B981"}
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if category.ID != 4 {
		t.Errorf("ID = %d, want 4", category.ID)
	}
}

func TestCategoryRepo_Create_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_slug_key"})

	repo := pg.NewCategoryRepo(db)
	err := repo.Create(context.Background(), &entity.Category{
		Name: "Politics", Slug: "politics", Color: "#EF4444",
	})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("Create err=%v, want ErrConflict", err)
	}
}
