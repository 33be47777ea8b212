package service

import (
	"context"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

type IApplicantService interface {
	ListApplicants(ctx context.Context, identity dto.Identity) (*dto.ApplicantsView, error)
	CreateApplicant(ctx context.Context, req *dto.CreateApplicantRequest) (*dto.Applicant, error)
	DeleteApplicant(ctx context.Context, id int) error
	OwnProfiles(ctx context.Context, identity dto.Identity) ([]dto.Applicant, error)
}

type ApplicantsAPI interface {
	ListApplicants(ctx context.Context) ([]dto.Applicant, error)
	CreateApplicant(ctx context.Context, req *dto.CreateApplicantRequest) (*dto.Applicant, error)
	DeleteApplicant(ctx context.Context, id int) error
}

type applicantService struct {
	backend ApplicantsAPI
	logger  logger.ILogger
}

func NewApplicantService(backend ApplicantsAPI, log logger.ILogger) IApplicantService {
	return &applicantService{backend: backend, logger: log}
}

// ListApplicants shows the full pool to company users; an applicant sees
// only the profiles tied to their own account. The backend already scopes
// the listing by role, so the filter here only shapes the heading and the
// delete affordance.
func (s *applicantService) ListApplicants(ctx context.Context, identity dto.Identity) (*dto.ApplicantsView, error) {
	applicants, err := s.backend.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}

	view := &dto.ApplicantsView{
		Applicants: applicants,
		CanDelete:  identity.IsCompany(),
	}
	if identity.IsCompany() {
		view.Title = "Applicants"
	} else {
		view.Title = "My Profiles"
	}
	return view, nil
}

func (s *applicantService) CreateApplicant(ctx context.Context, req *dto.CreateApplicantRequest) (*dto.Applicant, error) {
	created, err := s.backend.CreateApplicant(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Applicants", "Profile created", map[string]interface{}{
		"applicant_id": created.ID,
		"resume":       req.ResumeFilename,
	})
	return created, nil
}

func (s *applicantService) DeleteApplicant(ctx context.Context, id int) error {
	return s.backend.DeleteApplicant(ctx, id)
}

// OwnProfiles returns the profiles belonging to the logged-in user, used
// when an apply needs a profile picked.
func (s *applicantService) OwnProfiles(ctx context.Context, identity dto.Identity) ([]dto.Applicant, error) {
	applicants, err := s.backend.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}
	own := make([]dto.Applicant, 0, len(applicants))
	for _, a := range applicants {
		if a.UserID == identity.ID {
			own = append(own, a)
		}
	}
	return own, nil
}
