package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	driver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/Guyuepp/go-clean-author-comment/internal/repository/mysql"
	"github.com/Guyuepp/go-clean-author-comment/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/go-clean-author-comment/internal/repository/redis"
	"github.com/Guyuepp/go-clean-author-comment/internal/rest"
	"github.com/Guyuepp/go-clean-author-comment/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-author-comment/internal/usecase/author"
	"github.com/Guyuepp/go-clean-author-comment/internal/usecase/comment"
	"github.com/Guyuepp/go-clean-author-comment/internal/workers"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":9090"
	defaultCacheDB       = 0
	defaultBloomBitSize  = 10000000
	defaultBloomRefresh  = 300
	defaultWarmupBatch   = 1000
	dbMaxRetry           = 10
	dbRetryIntervalSec   = 2
	shutdownTimeoutInSec = 5
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		logrus.Infof("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func main() {
	//prepare database
	dsnConf := driver.NewConfig()
	dsnConf.User = os.Getenv("DATABASE_USER")
	dsnConf.Passwd = os.Getenv("DATABASE_PASS")
	dsnConf.Net = "tcp"
	dsnConf.Addr = net.JoinHostPort(os.Getenv("DATABASE_HOST"), os.Getenv("DATABASE_PORT"))
	dsnConf.DBName = os.Getenv("DATABASE_NAME")
	dsnConf.ParseTime = true
	dsnConf.Loc = time.UTC
	dsn := dsnConf.FormatDSN()

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if autoMigrate, _ := strconv.ParseBool(os.Getenv("DATABASE_AUTO_MIGRATE")); autoMigrate {
		if err := db.AutoMigrate(&model.Author{}, &model.Comment{}); err != nil {
			logrus.Fatal("failed to migrate schema: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(os.Getenv("CACHE_HOST"), os.Getenv("CACHE_PORT")),
		Password: os.Getenv("CACHE_PASS"),
		DB:       envInt("CACHE_DB", defaultCacheDB),
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutContext := time.Duration(envInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	authorRepo := mysqlRepo.NewAuthorRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Info("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewAuthorBloomRepo(client, bloomBitSize)

	// Build service Layer
	authorSvc := author.NewService(authorRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, authorRepo, bloomRepo)
	authorHandler := rest.NewAuthorHandler(authorSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare bloom filter
	refresh := time.Duration(envInt("BLOOM_REFRESH_INTERVAL", defaultBloomRefresh)) * time.Second
	warmer := workers.NewBloomWarmupWorker(authorRepo, bloomRepo, refresh, defaultWarmupBatch)
	if err := warmer.Warm(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	// Register routes
	route.GET("/author", authorHandler.Fetch)
	route.GET("/author/:id", authorHandler.GetByID)
	route.POST("/author", authorHandler.Store)
	route.PUT("/author/:id", authorHandler.Update)
	route.DELETE("/author/:id", authorHandler.Delete)

	route.GET("/comment", commentHandler.Fetch)
	route.GET("/comment/:id", commentHandler.GetByID)
	route.POST("/comment", commentHandler.Store)
	route.PUT("/comment/:id", commentHandler.Update)
	route.DELETE("/comment/:id", commentHandler.Delete)

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return warmer.Start(gctx)
	})
	g.Go(func() error {
		// shutdown
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeoutInSec*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error("server stopped with error: ", err)
	}
	logrus.Info("Server exiting")
}
