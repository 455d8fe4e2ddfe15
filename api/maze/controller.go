package mazeapi

import (
	"errors"
	"math"
	"net/http"
	"sync"

	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves mazes for arbitrary parameters.
type MazeController struct {
	mazes i.MazeGenerator
	seeds identity.SeedSource
	mu    sync.Mutex
}

// NewMazeController initializes a MazeController. seeds supplies a seed when the
// request has none.
func NewMazeController(mazes i.MazeGenerator, seeds identity.SeedSource) (*MazeController, error) {
	if mazes == nil || seeds == nil {
		return nil, errors.New("maze controller requires a generator and a seed source")
	}
	return &MazeController{
		mazes: mazes,
		seeds: seeds,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes", mc.generate)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// generate handles maze requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	corners, err := query.Corners()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	margin := float64(maze.DefaultFloorMargin)
	if query.Margin != nil {
		margin = *query.Margin
	}
	if math.IsNaN(margin) || math.IsInf(margin, 0) || margin < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "margin must be a finite, non-negative number"})
		return
	}

	cfg := maze.Config{
		Columns:     query.Columns,
		Rows:        query.Rows,
		ExitCorners: corners,
	}
	if query.Seed != nil {
		cfg.Seed = *query.Seed
	} else {
		mc.mu.Lock()
		cfg.Seed = identity.NextSeed(mc.seeds)
		mc.mu.Unlock()
	}

	d, err := mc.mazes.Generate(ctx.Request.Context(), cfg)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidParameters) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusOK, NewMazeResponse(d, margin, query.Plan))
}
