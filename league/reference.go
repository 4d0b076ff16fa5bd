package league

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pitchside/league-web/models"
	"golang.org/x/sync/errgroup"
)

// FetchReferenceData loads the four reference lists the page shell depends
// on. The fetches run concurrently and are awaited jointly; any failure
// fails the whole batch, since dependent fetches cannot proceed without a
// complete shell.
func (c *Client) FetchReferenceData(ctx context.Context, token string) (*models.ReferenceData, error) {
	ref := &models.ReferenceData{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.do(gCtx, http.MethodGet, "/api/leagues", token, nil, &ref.Leagues)
	})
	g.Go(func() error {
		return c.do(gCtx, http.MethodGet, "/api/seasons", token, nil, &ref.Seasons)
	})
	g.Go(func() error {
		return c.do(gCtx, http.MethodGet, "/api/age-groups", token, nil, &ref.AgeGroups)
	})
	g.Go(func() error {
		return c.do(gCtx, http.MethodGet, "/api/divisions", token, nil, &ref.Divisions)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return ref, nil
}

func (c *Client) FetchStandings(ctx context.Context, token string, q BracketQuery) ([]models.Standing, error) {
	var standings []models.Standing
	path := "/api/standings?" + q.values().Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

func (c *Client) FetchMatches(ctx context.Context, token string, q BracketQuery) ([]models.MatchSummary, error) {
	var matches []models.MatchSummary
	path := "/api/matches?" + q.values().Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) FetchTeam(ctx context.Context, token string, teamID int) (*models.Team, error) {
	var team models.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d", teamID), token, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) FetchRoster(ctx context.Context, token string, teamID int) (*models.Roster, error) {
	var roster models.Roster
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d/roster", teamID), token, nil, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// UpdateTeamCrest records the public URL of an uploaded crest image on the
// team entity.
func (c *Client) UpdateTeamCrest(ctx context.Context, token string, teamID int, crestURL string) error {
	body := map[string]string{"crest_url": crestURL}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/teams/%d", teamID), token, body, nil)
}

func (c *Client) FetchInvites(ctx context.Context, token string) ([]models.Invite, error) {
	var invites []models.Invite
	if err := c.do(ctx, http.MethodGet, "/api/invites", token, nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *Client) AcceptInvite(ctx context.Context, token string, inviteID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/invites/%d/accept", inviteID), token, nil, nil)
}
