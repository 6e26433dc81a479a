package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestCreateJob_RequiresTitleAndUser(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{})
	ctx := context.Background()

	if _, err := uc.CreateJob(ctx, uuid.Nil, CreateJobInput{Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got %v", err)
	}
	if _, err := uc.CreateJob(ctx, uuid.New(), CreateJobInput{Title: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
}

func TestCreateJob_NormalizesSkillLists(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobUsecase(repo)

	j, err := uc.CreateJob(context.Background(), uuid.New(), CreateJobInput{
		Title:          "  Backend Engineer ",
		RequiredSkills: []string{"Go", " Go ", "", "SQL"},
		Keywords:       []string{"remote", "remote"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if j.Title != "Backend Engineer" {
		t.Fatalf("expected trimmed title, got %q", j.Title)
	}
	if !reflect.DeepEqual(j.RequiredSkills, []string{"Go", "SQL"}) {
		t.Fatalf("expected deduped skills, got %v", j.RequiredSkills)
	}
	if !reflect.DeepEqual(j.Keywords, []string{"remote"}) {
		t.Fatalf("expected deduped keywords, got %v", j.Keywords)
	}
	if j.SkillWeights == nil {
		t.Fatal("expected non-nil skill weights map")
	}
	if len(repo.jobs) != 1 {
		t.Fatalf("expected 1 stored job, got %d", len(repo.jobs))
	}
}
