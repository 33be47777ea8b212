package service

import (
	"context"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

type IOfferService interface {
	ListOffers(ctx context.Context, identity dto.Identity) (*dto.OffersView, error)
	Generate(ctx context.Context, req *dto.GenerateOfferRequest) (*dto.Offer, error)
	Download(ctx context.Context, id int) (*dto.OfferDocument, error)
	Delete(ctx context.Context, id int) error
}

type OffersAPI interface {
	ListOffers(ctx context.Context) ([]dto.Offer, error)
	CreateOffer(ctx context.Context, req *dto.GenerateOfferRequest) (*dto.Offer, error)
	DownloadOffer(ctx context.Context, id int) (*dto.OfferDocument, error)
	DeleteOffer(ctx context.Context, id int) error
	GetApplicant(ctx context.Context, id int) (*dto.Applicant, error)
	GetJob(ctx context.Context, id int) (*dto.Job, error)
}

type offerService struct {
	backend   OffersAPI
	logger    logger.ILogger
	maxFanout int
}

func NewOfferService(backend OffersAPI, maxFanout int, log logger.ILogger) IOfferService {
	if maxFanout < 1 {
		maxFanout = 1
	}
	return &offerService{
		backend:   backend,
		logger:    log,
		maxFanout: maxFanout,
	}
}

// ListOffers mirrors the interview listing: rows enriched concurrently,
// failed lookups degrade to Unknown.
func (s *offerService) ListOffers(ctx context.Context, identity dto.Identity) (*dto.OffersView, error) {
	offers, err := s.backend.ListOffers(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.OfferCard, len(offers))
	sem := make(chan struct{}, s.maxFanout)
	var wg sync.WaitGroup

	for i, offer := range offers {
		cards[i] = dto.OfferCard{
			Offer:         offer,
			ApplicantName: unknownLabel,
			JobTitle:      unknownLabel,
		}
		wg.Add(1)
		go func(card *dto.OfferCard) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if applicant, err := s.backend.GetApplicant(ctx, card.Offer.ApplicantID); err == nil {
				card.ApplicantName = applicant.Name
			} else {
				s.logger.Warn("Offers", "Applicant lookup failed", map[string]interface{}{
					"applicant_id": card.Offer.ApplicantID,
					"error":        err.Error(),
				})
			}
			if job, err := s.backend.GetJob(ctx, card.Offer.PositionID); err == nil {
				card.JobTitle = job.Title
			} else {
				s.logger.Warn("Offers", "Job lookup failed", map[string]interface{}{
					"job_id": card.Offer.PositionID,
					"error":  err.Error(),
				})
			}
		}(&cards[i])
	}
	wg.Wait()

	return &dto.OffersView{
		Offers:    cards,
		CanManage: identity.IsCompany(),
	}, nil
}

func (s *offerService) Generate(ctx context.Context, req *dto.GenerateOfferRequest) (*dto.Offer, error) {
	offer, err := s.backend.CreateOffer(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Offers", "Offer letter generated", map[string]interface{}{
		"offer_id":     offer.ID,
		"applicant_id": offer.ApplicantID,
	})
	return offer, nil
}

func (s *offerService) Download(ctx context.Context, id int) (*dto.OfferDocument, error) {
	return s.backend.DownloadOffer(ctx, id)
}

func (s *offerService) Delete(ctx context.Context, id int) error {
	return s.backend.DeleteOffer(ctx, id)
}
