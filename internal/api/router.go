package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/api/handlers"
	"github.com/jstittsworth/puckdata/internal/api/middleware"
	"github.com/jstittsworth/puckdata/internal/registry"
	"github.com/jstittsworth/puckdata/internal/services"
	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/config"
)

// Deps carries everything the route layer needs from main.
type Deps struct {
	NHL      *upstream.NHLClient
	ESPN     *upstream.ESPNClient
	Ledger   *services.LedgerService
	FreeTier *services.FreeTierService
	Receipts *services.ReceiptIssuer
	Config   *config.Config
	Logger   *logrus.Logger
}

// SetupRoutes configures all API routes on the given router group and
// returns the operation catalog it registered.
func SetupRoutes(group *gin.RouterGroup, deps *Deps) *registry.Registry {
	hockeyHandler := handlers.NewHockeyHandler(deps.NHL, deps.ESPN, deps.Logger)
	teamHandler := handlers.NewTeamHandler(deps.NHL, deps.Logger)
	playerHandler := handlers.NewPlayerHandler(deps.NHL, deps.Logger)
	creditsHandler := handlers.NewCreditsHandler(deps.Ledger, deps.Receipts, deps.FreeTier, deps.Config, deps.Logger)

	gate := &middleware.PaymentDeps{
		FreeTier: deps.FreeTier,
		Ledger:   deps.Ledger,
		Receipts: deps.Receipts,
		Logger:   deps.Logger,
	}

	reg := registry.New()
	reg.MustRegister(registry.Operation{
		Key:         "standings",
		Description: "Current league standings, filterable by conference or division",
		Method:      "GET",
		Path:        "/standings",
		Price:       2,
		Params: []registry.Param{
			{Name: "conference", Type: "string", Description: "eastern or western"},
			{Name: "division", Type: "string", Description: "atlantic, metropolitan, central or pacific"},
			{Name: "date", Type: "string", Description: "Standings as of date (YYYY-MM-DD)"},
		},
		Handler: hockeyHandler.GetStandings,
	})
	reg.MustRegister(registry.Operation{
		Key:         "leaders",
		Description: "League leaders for a skater or goalie statistic",
		Method:      "GET",
		Path:        "/leaders",
		Price:       2,
		Params: []registry.Param{
			{Name: "category", Type: "string", Description: "goals, assists, points, wins, savePctg or shutouts", Default: "points"},
			{Name: "limit", Type: "int", Description: "Number of leaders to return (1-50)", Default: "10"},
		},
		Handler: hockeyHandler.GetLeaders,
	})
	reg.MustRegister(registry.Operation{
		Key:         "scores",
		Description: "Live and final scores for a day's games",
		Method:      "GET",
		Path:        "/scores",
		Price:       1,
		Params: []registry.Param{
			{Name: "date", Type: "string", Description: "Game date (YYYYMMDD), defaults to today"},
		},
		Handler: hockeyHandler.GetScores,
	})
	reg.MustRegister(registry.Operation{
		Key:         "schedule",
		Description: "Upcoming schedule for the next several days",
		Method:      "GET",
		Path:        "/schedule",
		Price:       2,
		Params: []registry.Param{
			{Name: "date", Type: "string", Description: "Start date (YYYY-MM-DD), defaults to today"},
			{Name: "days", Type: "int", Description: "Number of days to include (1-7)", Default: "3"},
		},
		Handler: hockeyHandler.GetSchedule,
	})
	reg.MustRegister(registry.Operation{
		Key:         "team-roster",
		Description: "Current roster for a team, resolved from any common team name",
		Method:      "GET",
		Path:        "/teams/:team/roster",
		Price:       3,
		Params: []registry.Param{
			{Name: "team", Type: "string", Description: "Team name, nickname or abbreviation", Required: true},
		},
		Handler: teamHandler.GetRoster,
	})
	reg.MustRegister(registry.Operation{
		Key:         "player-profile",
		Description: "Bio and current-season stats for a player",
		Method:      "GET",
		Path:        "/players/:id",
		Price:       3,
		Params: []registry.Param{
			{Name: "id", Type: "int", Description: "NHL player ID", Required: true},
		},
		Handler: playerHandler.GetPlayer,
	})
	reg.MustRegister(registry.Operation{
		Key:         "daily-report",
		Description: "Combined daily briefing: standings, leaders, scores and headlines",
		Method:      "GET",
		Path:        "/report/daily",
		Price:       5,
		Handler:     hockeyHandler.GetDailyReport,
	})

	// Priced operations sit behind the payment gate.
	for _, op := range reg.All() {
		group.Handle(op.Method, op.Path, middleware.PaymentGate(gate, op.Key, op.Price), op.Handler)
	}

	catalogHandler := handlers.NewCatalogHandler(reg)

	// Free routes.
	group.GET("/operations", catalogHandler.ListOperations)
	group.GET("/teams", teamHandler.ListTeams)
	group.GET("/teams/resolve", teamHandler.ResolveTeam)
	group.POST("/credits/purchase", creditsHandler.Purchase)
	group.GET("/credits/balance", creditsHandler.Balance)

	return reg
}
