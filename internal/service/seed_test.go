package service

import (
	"context"
	"testing"

	"taskflow/internal/model"
)

func TestSeedIsIdempotent(t *testing.T) {
	repos, db := newTestRepos(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, repos, "default"); err != nil {
			t.Fatalf("Seed run %d: %v", i+1, err)
		}
	}

	counts := map[string]interface{}{
		"users":      &model.User{},
		"settings":   &model.UserSettings{},
		"categories": &model.Category{},
	}
	want := map[string]int64{"users": 1, "settings": 1, "categories": int64(len(DefaultCategories))}
	for name, m := range counts {
		var n int64
		db.Model(m).Count(&n)
		if n != want[name] {
			t.Errorf("%s = %d, want %d", name, n, want[name])
		}
	}

	user, err := NewUserService(repos).Login(ctx, "default", "default")
	if err != nil {
		t.Fatalf("default login: %v", err)
	}
	if user.ID != model.DefaultUserID {
		t.Errorf("default user id = %d", user.ID)
	}
}
