package models

type League struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Season struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Current   bool   `json:"current"`
}

type AgeGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Division struct {
	ID       int    `json:"id"`
	LeagueID int    `json:"league_id"`
	Name     string `json:"name"`
}

type Team struct {
	ID       int     `json:"id"`
	ClubID   int     `json:"club_id"`
	Name     string  `json:"name"`
	CrestURL *string `json:"crest_url,omitempty"`
}

type Player struct {
	ID       int    `json:"id"`
	TeamID   int    `json:"team_id"`
	Name     string `json:"name"`
	Number   *int   `json:"number,omitempty"`
	Position string `json:"position,omitempty"`
}

// Roster is a team together with its registered players, as rendered on the
// team admin panel.
type Roster struct {
	Team    Team     `json:"team"`
	Players []Player `json:"players"`
}

// ReferenceData is everything the page shell needs before any dependent fetch
// can run. All four lists are loaded concurrently and awaited jointly.
type ReferenceData struct {
	Leagues   []League   `json:"leagues"`
	Seasons   []Season   `json:"seasons"`
	AgeGroups []AgeGroup `json:"age_groups"`
	Divisions []Division `json:"divisions"`
}
