package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"recruit-console/internal/dto"
)

type fakeJobsAPI struct {
	jobs     []dto.Job
	applied  map[int]bool
	checkErr map[int]bool

	createdPayload *dto.JobPayload
	updatedID      int
	updatedPayload *dto.JobPayload
}

func (f *fakeJobsAPI) ListJobs(ctx context.Context) ([]dto.Job, error) {
	return f.jobs, nil
}

func (f *fakeJobsAPI) GetJob(ctx context.Context, id int) (*dto.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeJobsAPI) CreateJob(ctx context.Context, payload *dto.JobPayload) (*dto.Job, error) {
	f.createdPayload = payload
	return &dto.Job{ID: 99, Title: payload.Title, Skills: payload.Skills}, nil
}

func (f *fakeJobsAPI) UpdateJob(ctx context.Context, id int, payload *dto.JobPayload) (*dto.Job, error) {
	f.updatedID = id
	f.updatedPayload = payload
	return &dto.Job{ID: id, Title: payload.Title, Skills: payload.Skills}, nil
}

func (f *fakeJobsAPI) DeleteJob(ctx context.Context, id int) error { return nil }

func (f *fakeJobsAPI) CheckApplication(ctx context.Context, jobID int) (bool, error) {
	if f.checkErr[jobID] {
		return false, errors.New("check failed")
	}
	return f.applied[jobID], nil
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"go, sql, docker", []string{"go", "sql", "docker"}},
		{"go", []string{"go"}},
		{"  go ,  , sql  ", []string{"go", "sql"}},
		{",,,", []string{}},
		{"", []string{}},
	}
	for _, tc := range tests {
		if got := splitSkills(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitSkills(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestListJobsApplicantAffordances(t *testing.T) {
	backend := &fakeJobsAPI{
		jobs: []dto.Job{
			{ID: 1, Title: "One"},
			{ID: 2, Title: "Two"},
			{ID: 3, Title: "Three"},
		},
		applied:  map[int]bool{2: true},
		checkErr: map[int]bool{3: true},
	}
	svc := NewJobService(backend, 4, nopLogger{})

	view, err := svc.ListJobs(context.Background(), dto.Identity{ID: 1, Role: dto.RoleApplicant})
	if err != nil {
		t.Fatal(err)
	}

	byID := map[int]dto.JobCard{}
	for _, card := range view.Jobs {
		if card.CanEdit {
			t.Fatalf("applicant got edit rights on %+v", card)
		}
		if !card.CanApply {
			t.Fatalf("applicant missing apply control on %+v", card)
		}
		byID[card.Job.ID] = card
	}

	if byID[1].HasApplied {
		t.Fatal("job 1 wrongly marked applied")
	}
	if !byID[2].HasApplied {
		t.Fatal("job 2 should be marked applied")
	}
	// A failed check leaves the control enabled.
	if byID[3].HasApplied {
		t.Fatal("failed check disabled the apply control")
	}
}

func TestListJobsCompanyAffordances(t *testing.T) {
	backend := &fakeJobsAPI{jobs: []dto.Job{{ID: 1, Title: "One"}}}
	svc := NewJobService(backend, 4, nopLogger{})

	view, err := svc.ListJobs(context.Background(), dto.Identity{ID: 1, Role: dto.RoleCompany})
	if err != nil {
		t.Fatal(err)
	}
	card := view.Jobs[0]
	if !card.CanEdit || card.CanApply {
		t.Fatalf("company affordances wrong: %+v", card)
	}
}

func TestGetJob(t *testing.T) {
	backend := &fakeJobsAPI{jobs: []dto.Job{{ID: 4, Title: "SRE"}}}
	svc := NewJobService(backend, 4, nopLogger{})

	job, err := svc.GetJob(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if job.Title != "SRE" {
		t.Fatalf("job = %+v", job)
	}

	if _, err := svc.GetJob(context.Background(), 99); err == nil {
		t.Fatal("missing job did not error")
	}
}

func TestSaveJobRoutesCreateAndUpdate(t *testing.T) {
	backend := &fakeJobsAPI{}
	svc := NewJobService(backend, 4, nopLogger{})

	req := &dto.SaveJobRequest{Title: "Role", Description: "Desc", Skills: "go, k8s"}

	if _, err := svc.SaveJob(context.Background(), 0, req); err != nil {
		t.Fatal(err)
	}
	if backend.createdPayload == nil {
		t.Fatal("create path not taken for id 0")
	}
	if !reflect.DeepEqual(backend.createdPayload.Skills, []string{"go", "k8s"}) {
		t.Fatalf("skills = %v", backend.createdPayload.Skills)
	}

	if _, err := svc.SaveJob(context.Background(), 7, req); err != nil {
		t.Fatal(err)
	}
	if backend.updatedID != 7 {
		t.Fatalf("update hit id %d", backend.updatedID)
	}
}
