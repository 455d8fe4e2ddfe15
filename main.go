package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	progressapi "github.com/beka-birhanu/vinom-maze/api/progress"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/lock"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	tracer             trace.Tracer
	shutdownTracing    func(context.Context) error
	playerRepo         *repo.PlayerRepo
	mazeCache          i.MazeCache
	leaderboard        i.Leaderboard
	progressLocker     i.Locker
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	mazeService        i.MazeGenerator
	progressService    i.ProgressTracker
	authController     api_i.Controller
	mazeController     api_i.Controller
	progressController api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func newLogger(prefix string, c color.Color) i.Logger {
	l, err := logger.New(prefix, c, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initTracing(ctx context.Context) {
	if !config.Envs.OtelEnabled {
		tracer = telemetry.NoopTracer()
		appLogger.Info("Tracing disabled")
		return
	}

	var err error
	shutdownTracing, err = telemetry.Setup(ctx)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Setting up tracing: %v", err))
		os.Exit(1)
	}
	tracer = telemetry.Tracer("maze")
	appLogger.Info("Tracing initialized")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initPlayerRepo(ctx context.Context, client *mongo.Client) {
	playerRepo = repo.NewPlayerRepo(client, config.Envs.DBName, "players")
	if err := playerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating player indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Player repository initialized")
}

func initRedisStores(client *redis.Client) {
	mazeCache = cache.NewRedisMazeCache(client, config.Envs.MazeCacheTTL)
	leaderboard = sortedstorage.NewRedisLeaderboard(client, "")
	progressLocker = lock.NewRedisLocker(client)
	appLogger.Info("Redis stores initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer, newLogger("AUTH", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.MazeServiceConfig{
		Cache:        mazeCache,
		Logger:       newLogger("MAZE", config.ColorCyan),
		Tracer:       tracer,
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initProgressService() {
	var err error
	progressService, err = service.NewProgressService(&service.ProgressConfig{
		Players:      playerRepo,
		Mazes:        mazeService,
		Leaderboard:  leaderboard,
		Locker:       progressLocker,
		Logger:       newLogger("PROGRESS", config.ColorMagenta),
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating progress service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Progress service initialized")
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)

	mazeController, err = mazeapi.NewMazeController(mazeService, maze.NewRandom(int32(time.Now().UnixNano())))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	progressController, err = progressapi.NewProgressController(progressService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating progress controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, progressController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initTracing(ctx)
	if shutdownTracing != nil {
		defer func() {
			_ = shutdownTracing(context.Background())
		}()
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initPlayerRepo(ctx, mongoClient)
	initRedisStores(redisClient)
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initProgressService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
