package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pitchside/league-web/league"
	"github.com/pitchside/league-web/models"
)

type MatchList struct {
	Matches []models.MatchSummary `json:"matches"`
	AnyLive bool                  `json:"any_live"`
}

type MatchService interface {
	List(ctx context.Context, actor *models.Actor, q league.BracketQuery) (*MatchList, error)
}

type matchService struct {
	api LeagueAPI
}

func NewMatchService(api LeagueAPI) MatchService {
	return &matchService{api: api}
}

func (s *matchService) List(ctx context.Context, actor *models.Actor, q league.BracketQuery) (*MatchList, error) {
	matches, err := s.api.FetchMatches(ctx, actorToken(actor), q)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.MatchSummary{}
	}
	list := &MatchList{Matches: matches}
	for i := range matches {
		if matches[i].IsLive() {
			list.AnyLive = true
			break
		}
	}
	return list, nil
}

const livePollInterval = 10 * time.Second

// LivePoller drives the live-score refresh loop: every 10 seconds it checks
// each bracket that has browsers connected, and pushes a refresh hint to the
// room when a match there is live. Browsers refetch; the poller never
// mutates anything. Rooms with nothing live stay quiet.
type LivePoller struct {
	api    LeagueAPI
	hub    Broadcaster
	logger *slog.Logger
}

func NewLivePoller(api LeagueAPI, hub Broadcaster, logger *slog.Logger) *LivePoller {
	return &LivePoller{api: api, hub: hub, logger: logger}
}

// Run blocks until ctx is cancelled.
func (p *LivePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(livePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *LivePoller) poll(ctx context.Context) {
	for _, room := range p.hub.Rooms() {
		q, ok := queryFromRoom(room)
		if !ok {
			continue
		}
		// Unauthenticated fetch: the match list is public data.
		matches, err := p.api.FetchMatches(ctx, "", q)
		if err != nil {
			p.logger.Error("live poll failed", slog.String("room", room), slog.Any("error", err))
			continue
		}
		for i := range matches {
			if matches[i].IsLive() {
				p.hub.BroadcastToRoom(room, RefreshHint{Type: "MATCHES_UPDATED", Room: room})
				break
			}
		}
	}
}

// queryFromRoom parses "bracket:<league>:<season>:<ageGroup>" room keys.
func queryFromRoom(room string) (league.BracketQuery, bool) {
	parts := strings.Split(room, ":")
	if len(parts) != 4 || parts[0] != "bracket" {
		return league.BracketQuery{}, false
	}
	ids := make([]int, 3)
	for i, part := range parts[1:] {
		n, err := strconv.Atoi(part)
		if err != nil {
			return league.BracketQuery{}, false
		}
		ids[i] = n
	}
	return league.BracketQuery{LeagueID: ids[0], SeasonID: ids[1], AgeGroupID: ids[2]}, true
}
