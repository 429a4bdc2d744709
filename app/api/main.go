package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/database/redisclient"
	"github.com/bidhaus/goapi/base/kvstore"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/base/metrics"
	bValidator "github.com/bidhaus/goapi/base/validator"
	"github.com/bidhaus/goapi/domain/announcement"
	"github.com/bidhaus/goapi/domain/lot"
	mmiddleware "github.com/bidhaus/goapi/middleware"
	"github.com/bidhaus/goapi/service/paging"
	"github.com/bidhaus/goapi/service/query"
	"github.com/bidhaus/goapi/service/redis"
	"github.com/bidhaus/goapi/service/ticker"
	announcement_delivery "github.com/bidhaus/goapi/stores/announcement/delivery/http"
	announcement_usecase "github.com/bidhaus/goapi/stores/announcement/usecase"
	auth_delivery "github.com/bidhaus/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bidhaus/goapi/stores/auth/usecase"
	bid_delivery "github.com/bidhaus/goapi/stores/bid/delivery/http"
	bid_repository "github.com/bidhaus/goapi/stores/bid/repository"
	bid_usecase "github.com/bidhaus/goapi/stores/bid/usecase"
	checkout_delivery "github.com/bidhaus/goapi/stores/checkout/delivery/http"
	checkout_usecase "github.com/bidhaus/goapi/stores/checkout/usecase"
	fee_delivery "github.com/bidhaus/goapi/stores/fee/delivery/http"
	fee_usecase "github.com/bidhaus/goapi/stores/fee/usecase"
	hc_delivery "github.com/bidhaus/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bidhaus/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bidhaus/goapi/stores/healthcheck/usecase"
	lot_delivery "github.com/bidhaus/goapi/stores/lot/delivery/http"
	lot_repository "github.com/bidhaus/goapi/stores/lot/repository"
	lot_usecase "github.com/bidhaus/goapi/stores/lot/usecase"
	purchase_delivery "github.com/bidhaus/goapi/stores/purchase/delivery/http"
	purchase_repository "github.com/bidhaus/goapi/stores/purchase/repository"
	purchase_usecase "github.com/bidhaus/goapi/stores/purchase/usecase"
	watchlist_delivery "github.com/bidhaus/goapi/stores/watchlist/delivery/http"
	watchlist_repository "github.com/bidhaus/goapi/stores/watchlist/repository"
	watchlist_usecase "github.com/bidhaus/goapi/stores/watchlist/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// one shared timer drives every live countdown
	tick := ticker.New(time.Second)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	lotRepo := lot_repository.New(q)
	bidRepo := bid_repository.New(q)
	purchaseRepo := purchase_repository.New(q)
	watchlistRepo := watchlist_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	lotUC := lot_usecase.New(&lot_usecase.LotUseCaseCfg{
		LotRepo: lotRepo,
	})
	bidUC := bid_usecase.New(&bid_usecase.BidUseCaseCfg{
		BidRepo:           bidRepo,
		LotRepo:           lotRepo,
		AntiSnipingWindow: viper.GetDuration("auction.antiSnipingWindow"),
	})
	purchaseUC := purchase_usecase.New(&purchase_usecase.PurchaseUseCaseCfg{
		PurchaseRepo: purchaseRepo,
		LotRepo:      lotRepo,
	})
	watchlistUC := watchlist_usecase.New(&watchlist_usecase.WatchlistUseCaseCfg{
		WatchlistRepo: watchlistRepo,
	})

	taxRates := map[string]float64{}
	if err := viper.UnmarshalKey("fees.taxRates", &taxRates); err != nil {
		context.WithField("err", err).Panic("bad fees.taxRates config")
	}
	feeUC := fee_usecase.New(&fee_usecase.FeeUseCaseCfg{
		Schedule: fee_usecase.MakeSchedule(
			viper.GetFloat64("fees.premiumRate"),
			taxRates,
			viper.GetString("fees.defaultRegion"),
		),
	})

	checkoutUC := checkout_usecase.New(&checkout_usecase.CheckoutUseCaseCfg{
		Lot:      lotUC,
		Fee:      feeUC,
		Bid:      bidUC,
		Purchase: purchaseUC,
	})

	announcements := []announcement.Announcement{}
	if err := viper.UnmarshalKey("announcements", &announcements, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)); err != nil {
		context.WithField("err", err).Panic("bad announcements config")
	}
	announcementUC := announcement_usecase.New(&announcement_usecase.AnnouncementUseCaseCfg{
		Announcements: announcements,
		Store:         kvstore.NewRedis(redisCache),
	})

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.tokenTtl"))
	authMiddleware := auth_middleware.New(auth)

	// the browse feed pages over snapshots built from the ending soonest list
	pager := paging.New(&paging.PagingConfig{
		RedisCache: redisCache,
		KeyPfx:     "marketplace",
		Getter: func(c ctx.Ctx, key string) (interface{}, error) {
			res, err := lotUC.Search(c,
				lot.WithSort(lot.SortByEndDate),
				lot.WithPagination(0, 5000),
			)
			if err != nil {
				return nil, err
			}
			return res.Items, nil
		},
		RenewDuration: viper.GetDuration("feed.renewDuration"),
		CacheDuration: viper.GetDuration("feed.cacheDuration"),
		ShardSize:     viper.GetInt("feed.shardSize"),
	})

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	lot_delivery.New(e, lotUC, pager, tick)
	bid_delivery.New(e, bidUC, authMiddleware)
	purchase_delivery.New(e, purchaseUC, authMiddleware)
	fee_delivery.New(e, feeUC)
	checkout_delivery.New(e, checkoutUC, authMiddleware, tick)
	watchlist_delivery.New(e, watchlistUC, authMiddleware)
	announcement_delivery.New(e, announcementUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	tick.Close()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
