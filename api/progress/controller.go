package progressapi

import (
	"errors"
	"net/http"
	"strconv"

	apiidentity "github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgressController manages level progression requests.
type ProgressController struct {
	progress i.ProgressTracker
}

// NewProgressController initializes a ProgressController.
func NewProgressController(p i.ProgressTracker) (*ProgressController, error) {
	if p == nil {
		return nil, errors.New("progress controller requires a progress tracker")
	}
	return &ProgressController{progress: p}, nil
}

// RegisterPublic registers public routes.
func (pc *ProgressController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", pc.leaderboard)
}

// RegisterProtected registers protected routes.
func (pc *ProgressController) RegisterProtected(route *gin.RouterGroup) {
	progress := route.Group("/progress")
	{
		progress.GET("", pc.current)
		progress.POST("/complete", pc.complete)
		progress.POST("/reset", pc.reset)
		progress.PUT("/level", pc.setLevel)
		progress.PUT("/seed", pc.setSeed)
	}
}

// current returns the player's level together with its maze.
func (pc *ProgressController) current(ctx *gin.Context) {
	playerID, ok := pc.playerID(ctx)
	if !ok {
		return
	}

	player, d, err := pc.progress.Current(ctx.Request.Context(), playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := newProgressResponse(player)
	resp.Maze = mazeapi.NewMazeResponse(d, maze.DefaultFloorMargin, ctx.Query("plan") == "true")
	ctx.JSON(http.StatusOK, resp)
}

// complete finishes the current level.
func (pc *ProgressController) complete(ctx *gin.Context) {
	playerID, ok := pc.playerID(ctx)
	if !ok {
		return
	}

	player, err := pc.progress.Complete(ctx.Request.Context(), playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProgressResponse(player))
}

// reset starts the player over from level 0.
func (pc *ProgressController) reset(ctx *gin.Context) {
	playerID, ok := pc.playerID(ctx)
	if !ok {
		return
	}

	player, err := pc.progress.StartOver(ctx.Request.Context(), playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProgressResponse(player))
}

// setLevel jumps to a chosen level.
func (pc *ProgressController) setLevel(ctx *gin.Context) {
	playerID, ok := pc.playerID(ctx)
	if !ok {
		return
	}

	var request LevelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := pc.progress.SetLevel(ctx.Request.Context(), playerID, *request.Level)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProgressResponse(player))
}

// setSeed replaces the seed of the current level.
func (pc *ProgressController) setSeed(ctx *gin.Context) {
	playerID, ok := pc.playerID(ctx)
	if !ok {
		return
	}

	var request SeedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := pc.progress.UseCustomSeed(ctx.Request.Context(), playerID, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProgressResponse(player))
}

// leaderboard lists the best players.
func (pc *ProgressController) leaderboard(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	ranking, err := pc.progress.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := &LeaderboardResponse{
		Total:     ranking.Total,
		Standings: make([]StandingResponse, len(ranking.Standings)),
	}
	for n, s := range ranking.Standings {
		response.Standings[n] = StandingResponse{Rank: n + 1, PlayerID: s.PlayerID.String(), Level: s.Level}
	}
	ctx.JSON(http.StatusOK, response)
}

func (pc *ProgressController) playerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := apiidentity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to status codes.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, i.ErrPlayerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, identity.ErrInvalidLevel),
		errors.Is(err, identity.ErrInvalidSeed),
		errors.Is(err, maze.ErrInvalidParameters):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProgressBusy),
		errors.Is(err, identity.ErrFinalLevel):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while updating progress"})
	}
}
