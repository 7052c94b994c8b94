package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ESPNClient wraps ESPN's public site API for NHL scoreboard and news.
type ESPNClient struct {
	client *Client
}

func NewESPNClient(baseURL string, timeout time.Duration, rps, breakerThreshold int, logger *logrus.Logger) *ESPNClient {
	return &ESPNClient{
		client: NewClient("espn", baseURL, timeout, rps, breakerThreshold, logger),
	}
}

// ESPN API response structures

type ScoreboardResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

type ScoreboardEvent struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Status       struct {
		Period int `json:"period"`
		Type   struct {
			State       string `json:"state"`
			Completed   bool   `json:"completed"`
			Description string `json:"description"`
			ShortDetail string `json:"shortDetail"`
		} `json:"type"`
	} `json:"status"`
	Competitions []struct {
		ID          string `json:"id"`
		Competitors []struct {
			ID       string   `json:"id"`
			HomeAway string   `json:"homeAway"`
			Winner   bool     `json:"winner"`
			Score    string   `json:"score"`
			Team     ESPNTeam `json:"team"`
		} `json:"competitors"`
	} `json:"competitions"`
}

type ESPNTeam struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

type NewsResponse struct {
	Articles []NewsArticle `json:"articles"`
}

type NewsArticle struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Type        string `json:"type"`
	Links       struct {
		Web struct {
			Href string `json:"href"`
		} `json:"web"`
	} `json:"links"`
}

// Scoreboard fetches the NHL scoreboard. An empty date means today;
// otherwise date is YYYYMMDD.
func (c *ESPNClient) Scoreboard(ctx context.Context, date string) (*ScoreboardResponse, error) {
	path := "/scoreboard"
	if date != "" {
		path = fmt.Sprintf("/scoreboard?dates=%s", date)
	}
	var resp ScoreboardResponse
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// News fetches recent NHL headlines.
func (c *ESPNClient) News(ctx context.Context, limit int) (*NewsResponse, error) {
	path := fmt.Sprintf("/news?limit=%d", limit)
	var resp NewsResponse
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
