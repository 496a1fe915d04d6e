package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/database/mongoclient"
	"github.com/nftcom/goledger/base/database/redisclient"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/domain/reconcile"
	"github.com/nftcom/goledger/service/cache"
	"github.com/nftcom/goledger/service/cache/provider"
	"github.com/nftcom/goledger/service/cache/provider/primitive"
	redisCacheProvider "github.com/nftcom/goledger/service/cache/provider/redis"
	"github.com/nftcom/goledger/service/chain"
	"github.com/nftcom/goledger/service/chain/contract"
	"github.com/nftcom/goledger/service/looksrare"
	"github.com/nftcom/goledger/service/nftport"
	"github.com/nftcom/goledger/service/query"
	"github.com/nftcom/goledger/service/seaport"
	"github.com/nftcom/goledger/service/x2y2"
	activity_repository "github.com/nftcom/goledger/stores/activity/repository"
	activity_usecase "github.com/nftcom/goledger/stores/activity/usecase"
	nativeorder_repository "github.com/nftcom/goledger/stores/nativeorder/repository"
	nativeorder_usecase "github.com/nftcom/goledger/stores/nativeorder/usecase"
	reconcile_usecase "github.com/nftcom/goledger/stores/reconcile/usecase"
)

func init() {
	pflag.String("config", "infra/configs/syncer/config.yaml", "config file path")
	pflag.Int32("chainId", 0, "override the active chain id")
	pflag.Bool("once", false, "run every job once and exit")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	metrics.Init()

	chainId := domain.ChainId(viper.GetInt32("chainId"))
	if chainId == 0 {
		chainId = domain.ChainId(viper.GetInt32("activeChainId"))
	}

	ctx.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// page memoization backed by redis, or an in-process cache when no
	// redis is configured
	var cacheProvider provider.Provider
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		ctx.Info("init redis cache")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		cacheProvider = redisCacheProvider.NewRedis(redisCachePool)
	} else {
		ctx.Info("init in-process cache")
		cacheProvider = primitive.NewPrimitive("nftport", 64)
	}
	pageCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("nftport.cacheTtl"),
		Pfx:   "nftport",
		Cache: cacheProvider,
	})

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	validationLogicAddresses := make(map[domain.ChainId]string)
	for k := range keys {
		id := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[id] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		validationLogicAddresses[domain.ChainId(id)] = networks.GetString(fmt.Sprintf("%s.validationLogic", k))
	}
	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("chainService started with error")
	}
	validationLogic := contract.NewValidationLogic(chainService, validationLogicAddresses)
	erc20Service := contract.NewErc20(chainService)

	// init marketplace clients
	httpTimeout := viper.GetDuration("http.timeout")
	seaportClient := seaport.NewClient(&seaport.ClientCfg{
		HttpClient: &http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("seaport.apikey"),
	})
	looksrareClient := looksrare.NewClient(&looksrare.ClientCfg{
		HttpClient: &http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("looksrare.apikey"),
	})
	x2y2Client := x2y2.NewClient(&x2y2.ClientCfg{
		HttpClient: &http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("x2y2.apikey"),
	})
	nftportClient := nftport.NewClient(&nftport.ClientCfg{
		HttpClient: &http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("nftport.apikey"),
		Cache:      pageCache,
	})

	// construct repository and usecase
	activityRepo := activity_repository.NewActivityRepo(q)
	orderRepo := activity_repository.NewOrderRepo(q)
	cancelRepo := activity_repository.NewCancelRepo(q)
	transactionRepo := activity_repository.NewTransactionRepo(q)
	askRepo := nativeorder_repository.NewAskRepo(q)
	bidRepo := nativeorder_repository.NewBidRepo(q)
	swapRepo := nativeorder_repository.NewSwapRepo(q)

	activityUseCase := activity_usecase.NewActivityUseCase(activityRepo, orderRepo, cancelRepo, transactionRepo)
	orderValidator := nativeorder_usecase.NewValidator(validationLogic)
	nativeOrderUseCase := nativeorder_usecase.NewNativeOrderUseCase(askRepo, bidRepo, swapRepo, orderValidator, erc20Service)

	fetchers := map[activity.Protocol]reconcile.Fetcher{
		activity.ProtocolSeaport:   reconcile_usecase.NewSeaportFetcher(reconcile_usecase.NewSeaportSource(seaportClient), activityUseCase),
		activity.ProtocolLooksrare: reconcile_usecase.NewLooksrareFetcher(reconcile_usecase.NewLooksrareSource(looksrareClient), activityUseCase),
		activity.ProtocolX2Y2:      reconcile_usecase.NewX2y2Fetcher(reconcile_usecase.NewX2y2Source(x2y2Client), activityUseCase),
	}
	reconcileUseCase := reconcile_usecase.NewReconcileUseCase(fetchers, activityUseCase, nativeOrderUseCase, nftportClient)

	contracts, requests := loadWatchlist()
	includeOffers := viper.GetBool("sync.includeOffers")

	ctx.WithFields(log.Fields{
		"chainId":       chainId,
		"contracts":     len(contracts),
		"requests":      len(requests),
		"includeOffers": includeOffers,
	}).Info("starting syncer")

	go runJob(ctx, "orders", viper.GetDuration("sync.ordersInterval"), func(c bCtx.Ctx) error {
		return reconcileUseCase.SyncOrders(c, chainId, requests, includeOffers)
	})
	go runJob(ctx, "transactions", viper.GetDuration("sync.transactionsInterval"), func(c bCtx.Ctx) error {
		for _, addr := range contracts {
			if _, err := reconcileUseCase.SyncTransactions(c, chainId, addr); err != nil {
				return err
			}
		}
		return nil
	})
	go runJob(ctx, "liveness", viper.GetDuration("sync.livenessInterval"), func(c bCtx.Ctx) error {
		_, err := reconcileUseCase.SyncNativeLiveness(c, chainId)
		return err
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
}

// loadWatchlist reads the contracts to reconcile from config. Entries with
// an explicit tokenIds list expand to one request per token.
func loadWatchlist() ([]domain.Address, []reconcile.FetchRequest) {
	var contracts []domain.Address
	var requests []reconcile.FetchRequest

	watch := viper.Sub("watch")
	if watch == nil {
		return contracts, requests
	}
	for k := range watch.AllSettings() {
		addr := domain.Address(watch.GetString(fmt.Sprintf("%s.contract", k))).ToLower()
		contracts = append(contracts, addr)
		for _, tokenId := range watch.GetStringSlice(fmt.Sprintf("%s.tokenIds", k)) {
			requests = append(requests, reconcile.FetchRequest{
				ContractAddress: addr,
				TokenId:         domain.TokenId(tokenId),
			})
		}
	}
	return contracts, requests
}

// runJob runs fn immediately and then on every tick until ctx is cancelled.
// With --once the job exits after the first run.
func runJob(ctx bCtx.Ctx, name string, interval time.Duration, fn func(bCtx.Ctx) error) {
	met := metrics.New("syncer")
	if interval <= 0 {
		interval = time.Minute
	}

	run := func() {
		defer met.BumpTime("job.time", "job", name).End()
		if err := fn(ctx); err != nil {
			met.BumpSum("job.err", 1, "job", name)
			ctx.WithFields(log.Fields{
				"err": err,
				"job": name,
			}).Error("job failed")
		}
	}

	run()
	if viper.GetBool("once") {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
