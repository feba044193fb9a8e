package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-tweetlab/analysis"
	"go-tweetlab/bluesky"
	"go-tweetlab/logging"
	"go-tweetlab/nlp"
	"go-tweetlab/normalize"
	"go-tweetlab/pipeline"
	"go-tweetlab/routes"
	"go-tweetlab/tagger"
)

// entityTagger prefers a gazetteer file when TWEETLAB_GAZETTEER is set and
// the Cloud Natural Language API otherwise.
func entityTagger(ctx context.Context) (tagger.EntityTagger, error) {
	if path := os.Getenv("TWEETLAB_GAZETTEER"); path != "" {
		g, err := tagger.LoadGazetteerFile(path)
		if err != nil {
			return nil, err
		}
		zap.S().Infof("Tagging entities offline with %d gazetteer entries from %s", g.Len(), path)
		return g, nil
	}

	client, err := nlp.InitLanguageClient(ctx)
	if err != nil {
		return nil, err
	}
	zap.S().Info("Tagging entities with the Cloud Natural Language API")
	return tagger.NewCloudEntityTagger(client), nil
}

func pipelineConfig() (normalize.Config, error) {
	path := os.Getenv("TWEETLAB_PIPELINE_CONFIG")
	if path == "" {
		return normalize.DefaultConfig(), nil
	}
	cfg, err := normalize.LoadConfig(path)
	if err != nil {
		return normalize.Config{}, err
	}
	return *cfg, nil
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	closeLogger, err := logging.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closeLogger()

	ctx := context.Background()
	entities, err := entityTagger(ctx)
	if err != nil {
		zap.S().Fatalf("Failed to initialize entity tagger: %v", err)
	}
	defer nlp.CloseLanguageClient()

	cfg, err := pipelineConfig()
	if err != nil {
		zap.S().Fatalf("Failed to load pipeline config: %v", err)
	}
	p, err := pipeline.FromConfig(cfg, pipeline.Collaborators{Entity: entities})
	if err != nil {
		zap.S().Fatalf("Failed to build pipeline: %v", err)
	}

	r := routes.SetupRouter(routes.Dependencies{
		Pipeline: p,
		Bluesky:  bluesky.NewClient(os.Getenv("BLUESKY_HOST"), nil),
		Labeler:  analysis.DefaultSourceLabeler(),
	})

	addr := os.Getenv("TWEETLAB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}
