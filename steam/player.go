package steam

// PlayersListResponse is an API response for a list of Steam players.
type PlayersListResponse struct {
	Response PlayersList `json:"response"`
}

type PlayersList struct {
	Players []Player `json:"players"`
}

// Player is the public summary of a Steam account.
type Player struct {
	SteamId     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileUrl  string `json:"profileurl"`
	Avatar      string `json:"avatar"`
}
