package service

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/model"
)

func TestCategoryCreateConflict(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewCategoryService(repos)
	ctx := context.Background()

	work, err := svc.Create(ctx, CategoryInput{UserID: 1, Name: "Work"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if work.Color != model.DefaultCategoryColor {
		t.Errorf("color = %q, want default", work.Color)
	}

	if _, err := svc.Create(ctx, CategoryInput{UserID: 1, Name: "Work", Color: "#000000"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate create: err = %v, want conflict", err)
	}
	if _, err := svc.Create(ctx, CategoryInput{UserID: 2, Name: "Work"}); err != nil {
		t.Errorf("same name for another user: %v", err)
	}
	if _, err := svc.Create(ctx, CategoryInput{UserID: 1, Name: " "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name: err = %v, want validation", err)
	}
}

func TestCategoryListOrderedByName(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewCategoryService(repos)
	for _, name := range []string{"Pessoal", "Compras", "Trabalho"} {
		mustCategory(t, svc, 1, name)
	}

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Compras", "Pessoal", "Trabalho"}
	for i, c := range list {
		if c.Name != want[i] {
			t.Errorf("list[%d] = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestCategoryUpdate(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewCategoryService(repos)
	ctx := context.Background()

	work := mustCategory(t, svc, 1, "Work")
	mustCategory(t, svc, 1, "Home")

	tests := []struct {
		name    string
		id      uint
		upd     CategoryUpdate
		wantErr error
	}{
		{"rename onto sibling", work.ID, CategoryUpdate{Name: strPtr("Home")}, ErrConflict},
		{"blank name", work.ID, CategoryUpdate{Name: strPtr("")}, ErrValidation},
		{"missing", 999, CategoryUpdate{Color: strPtr("#fff")}, ErrNotFound},
		{"keep own name", work.ID, CategoryUpdate{Name: strPtr("Work")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tt.id, tt.upd)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := svc.Update(ctx, work.ID, CategoryUpdate{Name: strPtr("Office"), Color: strPtr("#123456")})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Office" || got.Color != "#123456" {
		t.Errorf("updated = %+v", got)
	}
}

func TestCategoryDeleteRequiresEmpty(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewCategoryService(repos)
	tasks := NewTaskService(repos)
	ctx := context.Background()

	work := mustCategory(t, svc, 1, "Work")
	task, err := tasks.Create(ctx, TaskInput{UserID: 1, Text: "report", CategoryID: &work.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, work.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete non-empty: err = %v, want conflict", err)
	}
	if err := tasks.Delete(ctx, task.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, work.ID); err != nil {
		t.Fatalf("delete empty: %v", err)
	}
	if err := svc.Delete(ctx, work.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: err = %v, want not found", err)
	}
}
