package steam

import "fmt"

type GamesListResponse struct {
	Response GamesList `json:"response"`
}

type GamesList struct {
	GameCount int64  `json:"game_count"`
	Games     []Game `json:"games"`
}

type Game struct {
	AppId           int64  `json:"appid"`
	Name            string `json:"name"`
	ImgIconUrl      string `json:"img_icon_url"`
	Playtime        int64  `json:"playtime_forever"`
	TwoWeekPlaytime int64  `json:"playtime_2weeks"`
}

func (g Game) StoreLink() string {
	return fmt.Sprintf("%s/app/%d", DefaultStoreUrl, g.AppId)
}

// GamesByAppId indexes games by their app id.
func GamesByAppId(games []Game) map[int64]Game {
	m := make(map[int64]Game, len(games))
	for _, g := range games {
		m[g.AppId] = g
	}
	return m
}
