package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pitchside/league-web/auth"
	"github.com/pitchside/league-web/models"
	"github.com/pitchside/league-web/storage"
)

type TeamService interface {
	Roster(ctx context.Context, actor *models.Actor, teamID int) (*models.Roster, error)
	// UploadCrest stores the crest image and records its public URL on the
	// team upstream. Only someone who manages the team may replace its crest.
	UploadCrest(ctx context.Context, actor *models.Actor, teamID int, contentType string, file io.Reader) (string, error)
}

type teamService struct {
	api      LeagueAPI
	uploader storage.FileUploader
}

func NewTeamService(api LeagueAPI, uploader storage.FileUploader) TeamService {
	return &teamService{api: api, uploader: uploader}
}

func (s *teamService) Roster(ctx context.Context, actor *models.Actor, teamID int) (*models.Roster, error) {
	return s.api.FetchRoster(ctx, actorToken(actor), teamID)
}

func (s *teamService) UploadCrest(ctx context.Context, actor *models.Actor, teamID int, contentType string, file io.Reader) (string, error) {
	team, err := s.api.FetchTeam(ctx, actorToken(actor), teamID)
	if err != nil {
		return "", err
	}
	if !auth.CanManageTeam(team, actor) {
		return "", ErrForbiddenOperation
	}

	key := fmt.Sprintf("teams/%d/crest-%d", teamID, time.Now().Unix())
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return "", fmt.Errorf("failed to store crest image: %w", err)
	}

	if err := s.api.UpdateTeamCrest(ctx, actorToken(actor), teamID, result.Location); err != nil {
		// The object is orphaned if this fails; best effort cleanup.
		_ = s.uploader.Delete(ctx, key)
		return "", err
	}
	return result.Location, nil
}

type InviteService interface {
	List(ctx context.Context, actor *models.Actor) ([]models.Invite, error)
	Accept(ctx context.Context, actor *models.Actor, inviteID int) error
}

type inviteService struct {
	api LeagueAPI
}

func NewInviteService(api LeagueAPI) InviteService {
	return &inviteService{api: api}
}

func (s *inviteService) List(ctx context.Context, actor *models.Actor) ([]models.Invite, error) {
	invites, err := s.api.FetchInvites(ctx, actorToken(actor))
	if err != nil {
		return nil, err
	}
	if invites == nil {
		invites = []models.Invite{}
	}
	return invites, nil
}

func (s *inviteService) Accept(ctx context.Context, actor *models.Actor, inviteID int) error {
	return s.api.AcceptInvite(ctx, actorToken(actor), inviteID)
}
