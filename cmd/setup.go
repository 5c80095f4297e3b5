package cmd

import (
	"fmt"

	"game-launcher/core/config"
	"game-launcher/core/library"
	"game-launcher/core/logger"
	"game-launcher/core/reconcile"
	"game-launcher/core/storage"
	"game-launcher/feature/epic"
	"game-launcher/feature/gog"
	"game-launcher/feature/steam"

	"go.uber.org/zap"
)

// runtime is the wired application: config, logger, persistence, the three
// store adapters registered on the library, the API clients, and the
// reconcile service. Every command builds one.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *storage.Storage
	lib    *library.Library

	steamStore *steam.Store
	epicStore  *epic.Store
	gogStore   *gog.Store

	steamAPI *steam.API
	epicAPI  *epic.API

	reconciler *reconcile.Service
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	store, err := storage.New(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	rt := &runtime{
		cfg:    cfg,
		logger: logg,
		store:  store,
		lib:    library.NewLibrary(logg),

		steamStore: steam.NewStore(cfg.Stores.Steam.Root, logg),
		epicStore:  epic.NewStore(cfg.Stores.Epic.Manifests, logg),
		gogStore:   gog.NewStore(cfg.Stores.Gog.Database, logg),

		steamAPI: steam.NewAPI(store),
		epicAPI:  epic.NewAPI(store, logg),
	}

	rt.lib.RegisterStore(rt.steamStore)
	rt.lib.RegisterStore(rt.epicStore)
	rt.lib.RegisterStore(rt.gogStore)

	rt.reconciler = reconcile.NewService(rt.lib, store, logg)

	return rt, nil
}

// sources lists the platforms with a remote ownership API.
func (rt *runtime) sources() []reconcile.OwnedSource {
	return []reconcile.OwnedSource{rt.steamAPI, rt.epicAPI}
}

// source resolves one ownership source by store id.
func (rt *runtime) source(storeID string) (reconcile.OwnedSource, error) {
	for _, src := range rt.sources() {
		if string(src.Store()) == storeID {
			return src, nil
		}
	}
	return nil, fmt.Errorf("%w: no ownership source for %q", library.ErrStoreNotFound, storeID)
}
