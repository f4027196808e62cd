package main

import (
	"net/http"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/graunt-labs/docluster/internal/api"
	"github.com/graunt-labs/docluster/internal/registry"
	"github.com/graunt-labs/docluster/pkg/cluster"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("docluster server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	registry.GlobalRegistry.RegisterClusterer("kmeans", func(k, maxIters int) cluster.Clusterer {
		return cluster.NewKMeans(k, maxIters)
	})
	registry.GlobalRegistry.RegisterClusterer("roundrobin", func(k, maxIters int) cluster.Clusterer {
		return cluster.NewRoundRobin(k)
	})
	registry.GlobalRegistry.RegisterSimilarity("cosine", cluster.NewCosineDistance())
	registry.GlobalRegistry.RegisterSimilarity("jaccard", cluster.NewJaccardMinHash())

	mux := http.NewServeMux()
	handler := api.NewHandler(registry.GlobalRegistry, logger)
	handler.RegisterRoutes(mux)

	addr := listenAddr()
	logger.Info("docluster server starting",
		zap.String("addr", addr),
		zap.Strings("clusterers", registry.GlobalRegistry.ClustererNames()),
	)

	if err := http.ListenAndServe(addr, mux); err != nil {
		return errors.Wrap(err, "docluster: serving HTTP")
	}
	return nil
}

// listenAddr reads the server's bind address from DOCLUSTER_ADDR, falling
// back to :8080.
func listenAddr() string {
	if addr := os.Getenv("DOCLUSTER_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
