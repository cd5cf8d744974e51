package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MarcGrol/shopcart/lib/myconfig"
	"github.com/MarcGrol/shopcart/lib/myhttpclient"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystorage"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/lib/mytime"
	"github.com/MarcGrol/shopcart/lib/mytoast"
	"github.com/MarcGrol/shopcart/lib/myuuid"
	"github.com/MarcGrol/shopcart/services/cart"
	"github.com/MarcGrol/shopcart/services/catalog"
	"github.com/MarcGrol/shopcart/services/catalog/catalogclient"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
	"github.com/MarcGrol/shopcart/services/warmup"
)

func main() {
	c := context.Background()

	cfg := myconfig.Load()
	storeOptions := mystore.Options{
		Backend:   cfg.StoreBackend,
		ProjectID: cfg.ProjectID,
		RedisURL:  cfg.RedisURL,
	}

	router := mux.NewRouter()

	{
		productStore, productStoreCleanup, err := mystore.New[catalogmodel.Product](c, storeOptions)
		if err != nil {
			log.Fatalf("Error creating product store: %s", err)
		}
		defer productStoreCleanup()

		stockStore, stockStoreCleanup, err := mystore.New[catalogmodel.Stock](c, storeOptions)
		if err != nil {
			log.Fatalf("Error creating stock store: %s", err)
		}
		defer stockStoreCleanup()

		catalogService := catalog.NewService(productStore, stockStore, mylog.New("catalog"))
		err = catalogService.Seed(c)
		if err != nil {
			log.Fatalf("Error seeding catalog: %s", err)
		}
		catalogService.RegisterEndpoints(c, router)
	}

	{
		storageStore, storageStoreCleanup, err := mystore.New[mystorage.StorageItem](c, storeOptions)
		if err != nil {
			log.Fatalf("Error creating storage store: %s", err)
		}
		defer storageStoreCleanup()

		cartStorage := mystorage.New(storageStore)
		catalogClient := catalogclient.New(cfg.CatalogURL, myhttpclient.New(cfg.HTTPClientTimeout))
		toasts := mytoast.NewQueue(mytime.RealNower{}, myuuid.RealUUIDer{}, mylog.New("toast"))

		cartManager := cart.NewManager(cfg.CartStorageKey, cartStorage, catalogClient, toasts, mylog.New("cart"))
		err = cartManager.Load(c)
		if err != nil {
			log.Fatalf("Error loading cart: %s", err)
		}

		cartService := cart.NewService(cartManager, toasts, mylog.New("cart"))
		cartService.RegisterEndpoints(c, router)

		warmupService := warmup.NewService(cartStorage, cfg.CartStorageKey)
		warmupService.RegisterEndpoints(c, router)
	}

	startWebServerBlocking(cfg.Port, router)
}

func startWebServerBlocking(port string, router *mux.Router) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s/cart)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), otelhttp.NewHandler(router, "shopcart"))
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
