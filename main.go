package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/api"
	boardapi "github.com/beka-birhanu/vinom-pathfinder/api/board"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	layoutapi "github.com/beka-birhanu/vinom-pathfinder/api/layout"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/boardstore"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const redisKeyPrefix = "pathfinder"

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         *repo.UserRepo
	layoutRepo       *repo.LayoutRepo
	boardStore       i.BoardStore
	runHistory       i.RunHistory
	runRecorder      i.RunRecorder
	jwtTokenizer     i.Tokenizer
	boardService     *service.BoardService
	authService      i.Authenticator
	layoutService    i.LayoutManager
	boardController  api_i.Controller
	authController   api_i.Controller
	layoutController api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
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

func initRepos(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}

	layoutRepo = repo.NewLayoutRepo(client, config.Envs.DBName, "layouts")
	if err := layoutRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
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

// initBoardStorage keeps boards and run history in Redis when BOARD_STORE=redis,
// in process memory otherwise.
func initBoardStorage(ctx context.Context) {
	switch config.Envs.BoardStore {
	case "redis":
		initRedis(ctx)

		var err error
		boardStore, err = boardstore.NewRedisStore(redisClient, redisKeyPrefix, config.Envs.BoardTTL)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating redis board store: %v", err))
			os.Exit(1)
		}
		runHistory, err = sortedstorage.NewRedisRunLog(redisClient, redisKeyPrefix, int64(config.Envs.RunHistorySize), config.Envs.BoardTTL)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating redis run log: %v", err))
			os.Exit(1)
		}
	case "memory":
		boardStore = boardstore.NewMemoryStore()
		runHistory = sortedstorage.NewMemoryRunLog(config.Envs.RunHistorySize)
	default:
		appLogger.Error(fmt.Sprintf("Unknown BOARD_STORE %q, expected memory or redis", config.Envs.BoardStore))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Board storage initialized (%s)", config.Envs.BoardStore))
}

func initMetrics() {
	runRecorder = metrics.NewPrometheus(prometheus.DefaultRegisterer)
	appLogger.Info("Metrics initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initServices() {
	var err error
	boardService, err = service.NewBoardService(&service.BoardConfig{
		Store:    boardStore,
		History:  runHistory,
		Recorder: runRecorder,
		Logger:   newLogger("BOARD", config.ColorCyan),
		Animation: animation.Options{
			VisitedDelay: time.Duration(config.Envs.VisitedDelayMS) * time.Millisecond,
			PathDelay:    time.Duration(config.Envs.PathDelayMS) * time.Millisecond,
		},
		HistorySize: int64(config.Envs.RunHistorySize),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board service: %v", err))
		os.Exit(1)
	}

	authService, err = service.NewAuthService(userRepo, jwtTokenizer, newLogger("AUTH", config.ColorYellow))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}

	layoutService, err = service.NewLayoutService(layoutRepo, boardService, newLogger("LAYOUT", config.ColorMagenta))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Services initialized")
}

func initControllers() {
	var err error
	boardController, err = boardapi.NewController(&boardapi.Config{
		Boards: boardService,
		Logger: newLogger("STREAM", config.ColorBlue),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board controller: %v", err))
		os.Exit(1)
	}

	layoutController, err = layoutapi.NewController(layoutService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout controller: %v", err))
		os.Exit(1)
	}

	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, boardController, layoutController},
		AuthorizationMiddleware: identity.Authoriz(t),
		MetricsHandler:          promhttp.Handler(),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRepos(ctx, mongoClient)
	initBoardStorage(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initMetrics()
	initJWTTokenizer()
	initServices()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
