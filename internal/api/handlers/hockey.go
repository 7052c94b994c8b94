package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/services"
	"github.com/jstittsworth/puckdata/internal/shape"
	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// HockeyHandler serves the league-wide operations: standings, leaders,
// scores, schedule, and the daily report.
type HockeyHandler struct {
	nhl    *upstream.NHLClient
	espn   *upstream.ESPNClient
	logger *logrus.Logger
}

func NewHockeyHandler(nhl *upstream.NHLClient, espn *upstream.ESPNClient, logger *logrus.Logger) *HockeyHandler {
	return &HockeyHandler{nhl: nhl, espn: espn, logger: logger}
}

var skaterCategories = map[string]bool{"goals": true, "assists": true, "points": true}
var goalieCategories = map[string]bool{"wins": true, "savePctg": true, "shutouts": true}

type standingsQuery struct {
	Conference string `form:"conference" binding:"omitempty,oneof=eastern western"`
	Division   string `form:"division" binding:"omitempty,oneof=atlantic metropolitan central pacific"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// GetStandings returns league standings, optionally filtered by
// conference or division.
func (h *HockeyHandler) GetStandings(c *gin.Context) {
	var query standingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, "Invalid standings parameters", err.Error())
		return
	}

	resp, err := h.nhl.Standings(c.Request.Context(), query.Date)
	if err != nil {
		sendFetchError(c, h.logger, "standings", err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"standings": shape.Standings(resp, query.Conference, query.Division),
	})
}

type leadersQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=goals assists points wins savePctg shutouts"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// GetLeaders returns the current stat leaders for one category, ranked
// in the upstream's order.
func (h *HockeyHandler) GetLeaders(c *gin.Context) {
	var query leadersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, "Invalid leaders parameters", err.Error())
		return
	}
	if query.Category == "" {
		query.Category = "points"
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	entries, err := h.fetchLeaders(c.Request.Context(), query.Category, query.Limit)
	if err != nil {
		sendFetchError(c, h.logger, "leaders", err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"category": query.Category,
		"leaders":  shape.Leaders(entries, query.Limit),
	})
}

func (h *HockeyHandler) fetchLeaders(ctx context.Context, category string, limit int) ([]upstream.LeaderEntry, error) {
	if goalieCategories[category] {
		return h.nhl.GoalieLeaders(ctx, category, limit)
	}
	return h.nhl.SkaterLeaders(ctx, category, limit)
}

type scoresQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=20060102"`
}

// GetScores returns the scoreboard for a date (today by default).
func (h *HockeyHandler) GetScores(c *gin.Context) {
	var query scoresQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, "Invalid scores parameters", err.Error())
		return
	}

	resp, err := h.espn.Scoreboard(c.Request.Context(), query.Date)
	if err != nil {
		sendFetchError(c, h.logger, "scores", err)
		return
	}

	utils.SendSuccess(c, shape.Scoreboard(resp))
}

type scheduleQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Days int    `form:"days" binding:"omitempty,min=1,max=7"`
}

// GetSchedule returns upcoming games for a span of days. Daily fetches
// run sequentially to bound concurrent upstream load.
func (h *HockeyHandler) GetSchedule(c *gin.Context) {
	var query scheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, "Invalid schedule parameters", err.Error())
		return
	}
	if query.Days == 0 {
		query.Days = 3
	}
	start := time.Now().UTC()
	if query.Date != "" {
		parsed, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			utils.SendValidationError(c, "Invalid schedule date", err.Error())
			return
		}
		start = parsed
	}

	plan := services.NewFetchPlan(h.logger)
	dates := make([]string, 0, query.Days)
	for i := 0; i < query.Days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		dates = append(dates, date)
		plan.Add(date, func(ctx context.Context) (interface{}, error) {
			return h.nhl.Schedule(ctx, date)
		})
	}

	results, err := plan.ExecuteSequential(c.Request.Context())
	if err != nil {
		sendFetchError(c, h.logger, "schedule", err)
		return
	}

	// Each fetch returns a full game week; keep only the requested day.
	days := make([]upstream.ScheduleDay, 0, query.Days)
	for _, date := range dates {
		resp, _ := results[date].(*upstream.ScheduleResponse)
		if resp == nil {
			continue
		}
		for _, day := range resp.GameWeek {
			if day.Date == date {
				days = append(days, day)
				break
			}
		}
	}

	utils.SendSuccess(c, shape.Schedule(days, query.Days))
}

// GetDailyReport assembles standings, leaders, live scores, and
// headlines in one response. Standings and leaders are required; live
// scores and news degrade to empty lists when their fetch fails.
func (h *HockeyHandler) GetDailyReport(c *gin.Context) {
	plan := services.NewFetchPlan(h.logger)
	plan.Add("standings", func(ctx context.Context) (interface{}, error) {
		return h.nhl.Standings(ctx, "")
	})
	plan.Add("leaders", func(ctx context.Context) (interface{}, error) {
		return h.nhl.SkaterLeaders(ctx, "points", 10)
	})
	plan.AddBestEffort("scores", func(ctx context.Context) (interface{}, error) {
		return h.espn.Scoreboard(ctx, "")
	})
	plan.AddBestEffort("news", func(ctx context.Context) (interface{}, error) {
		return h.espn.News(ctx, 5)
	})

	results, err := plan.Execute(c.Request.Context())
	if err != nil {
		sendFetchError(c, h.logger, "daily report", err)
		return
	}

	standings, _ := results["standings"].(*upstream.StandingsResponse)
	leaders, _ := results["leaders"].([]upstream.LeaderEntry)
	scoreboard, _ := results["scores"].(*upstream.ScoreboardResponse)
	news, _ := results["news"].(*upstream.NewsResponse)

	utils.SendSuccess(c, gin.H{
		"standings": shape.Standings(standings, "", ""),
		"leaders":   shape.Leaders(leaders, 10),
		"scores":    shape.Scoreboard(scoreboard),
		"headlines": shape.News(news, 5),
	})
}
