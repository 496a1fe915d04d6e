package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/database/mongoclient"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/base/metrics"
	bValidator "github.com/nftcom/goledger/base/validator"
	"github.com/nftcom/goledger/domain"
	mmiddleware "github.com/nftcom/goledger/middleware"
	"github.com/nftcom/goledger/service/chain"
	"github.com/nftcom/goledger/service/chain/contract"
	"github.com/nftcom/goledger/service/query"
	activity_delivery "github.com/nftcom/goledger/stores/activity/delivery/http"
	activity_repository "github.com/nftcom/goledger/stores/activity/repository"
	activity_usecase "github.com/nftcom/goledger/stores/activity/usecase"
	nativeorder_delivery "github.com/nftcom/goledger/stores/nativeorder/delivery/http"
	nativeorder_repository "github.com/nftcom/goledger/stores/nativeorder/repository"
	nativeorder_usecase "github.com/nftcom/goledger/stores/nativeorder/usecase"
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
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	metrics.Init()

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	validationLogicAddresses := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		validationLogicAddresses[domain.ChainId(chainId)] = networks.GetString(fmt.Sprintf("%s.validationLogic", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	validationLogic := contract.NewValidationLogic(chainService, validationLogicAddresses)
	erc20Service := contract.NewErc20(chainService)

	// construct repository, usecase and delivery
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

	activity_delivery.New(e, activityUseCase)
	nativeorder_delivery.New(e, nativeOrderUseCase)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "ok")
	})

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
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
