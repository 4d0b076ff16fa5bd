package services

import (
	"context"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

type ReferenceService interface {
	ReferenceData(ctx context.Context, actor *models.Actor) (*models.ReferenceData, error)
	Standings(ctx context.Context, actor *models.Actor, q league.BracketQuery) ([]models.Standing, error)
}

type referenceService struct {
	api LeagueAPI
}

func NewReferenceService(api LeagueAPI) ReferenceService {
	return &referenceService{api: api}
}

func (s *referenceService) ReferenceData(ctx context.Context, actor *models.Actor) (*models.ReferenceData, error) {
	return s.api.FetchReferenceData(ctx, actorToken(actor))
}

func (s *referenceService) Standings(ctx context.Context, actor *models.Actor, q league.BracketQuery) ([]models.Standing, error) {
	standings, err := s.api.FetchStandings(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	if standings == nil {
		standings = []models.Standing{}
	}
	return standings, nil
}
