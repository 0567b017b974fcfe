package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"resume-parser/internal/extract"
	"resume-parser/internal/ner"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
	"resume-parser/internal/shared/storage/mongodb"
)

// App holds the process-wide dependencies, constructed once at startup and
// shared read-only across requests.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	Mongo      *mongo.Client
	Repo       resumes.Repo
	Recognizer ner.Recognizer
	Service    *resumes.Service
	Handler    *resumes.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = config.DefaultMaxUploadBytes
	}
	ctx := context.Background()

	client, repo, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	recognizer, err := buildRecognizer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &resumes.Service{
		Repo:           repo,
		Extractor:      extract.Extractor{},
		Recognizer:     recognizer,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	handler := resumes.NewHandler(svc)

	app := &App{
		Config:     cfg,
		Mongo:      client,
		Repo:       repo,
		Recognizer: recognizer,
		Service:    svc,
		Handler:    handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
	})
	return app, nil
}

// Close releases the database connection.
func (a *App) Close(ctx context.Context) error {
	return mongodb.Disconnect(ctx, a.Mongo)
}

func buildRepo(ctx context.Context, cfg config.Config) (*mongo.Client, resumes.Repo, error) {
	if strings.TrimSpace(cfg.MongoURI) == "" {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: MONGODB_URI empty; using in-memory repository")
			return nil, resumes.NewMemoryRepo(), nil
		}
		return nil, nil, fmt.Errorf("MONGODB_URI is required")
	}

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: mongodb connect failed; using in-memory repository: %v", err)
			return nil, resumes.NewMemoryRepo(), nil
		}
		return nil, nil, err
	}

	coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	repo := &resumes.MongoRepo{Coll: coll}
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = mongodb.Disconnect(ctx, client)
		return nil, nil, err
	}
	return client, repo, nil
}

func buildRecognizer(ctx context.Context, cfg config.Config) (ner.Recognizer, error) {
	switch cfg.NERBackend {
	case "http":
		if strings.TrimSpace(cfg.NERServiceURL) == "" {
			return nil, fmt.Errorf("NER_BACKEND=http requires NER_SERVICE_URL")
		}
		return ner.NewHTTPClient(cfg.NERServiceURL), nil
	default:
		if err := ner.EnsureModel(ctx, cfg.NERModelDir, cfg.NERModelURL); err != nil {
			return nil, err
		}
		return ner.NewProse(cfg.NERModelDir)
	}
}
