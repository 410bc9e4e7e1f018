package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blogapi/internal/config"
	"blogapi/internal/core"
	"blogapi/internal/db"
	"blogapi/internal/http/handler"
	"blogapi/internal/http/handler/middleware"
	"blogapi/internal/http/payload"
	"blogapi/internal/http/server"
	"blogapi/internal/media"
	"blogapi/internal/repository"
	"blogapi/pkg/jwt"
	"blogapi/pkg/log"
	"blogapi/pkg/password"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// uploadsPrefix is both the URL path local uploads are served under and the
// key prefix of objects in the bucket.
const uploadsPrefix = "uploads"

func Start() error {
	logger := log.NewZapLogger("blogapi", zapcore.InfoLevel)

	appCfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(appCfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(appCfg.JWTSecret))

	hasher := password.NewBcryptHasher(appCfg.BcryptCost)

	// repository
	repo := repository.NewBlogRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	mediaStore, err := newMediaStore(logger, appCfg.Media)
	if err != nil {
		logger.Errorw("failed to create media store", "error", err, "backend", appCfg.Media.Backend)
		return err
	}

	// blog
	blog := core.NewBlog(
		logger,
		repo,
		hasher,
		jwtService,
		mediaStore,
		appCfg.TokenTTL)

	// handler
	blogHlr := handler.NewBlogHandler(
		logger,
		payload.NewDecoder(appCfg.Media.MaxUploadBytes),
		blog)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORS(appCfg.CORSAllowedOrigins).Handler(hdlr)

	// register routes
	mux.HandleFunc(handler.Identify, blogHlr.HandleIdentify)
	mux.HandleFunc(handler.Register, blogHlr.HandleRegister)
	mux.HandleFunc(handler.Login, blogHlr.HandleLogin)
	mux.HandleFunc(handler.LookupUser, blogHlr.HandleLookupUser)
	mux.HandleFunc(handler.CreatePost, blogHlr.HandleCreatePost)
	mux.HandleFunc(handler.ListPosts, blogHlr.HandleListPosts)
	mux.HandleFunc(handler.GetPost, blogHlr.HandleGetPost)
	mux.HandleFunc(handler.EditPost, blogHlr.HandleEditPost)
	mux.HandleFunc(handler.UpdatePost, blogHlr.HandleUpdatePost)
	mux.HandleFunc(handler.Health, blogHlr.HandleHealth)

	if appCfg.Media.Backend == config.MediaBackendLocal {
		files := http.FileServer(http.Dir(appCfg.Media.UploadDir))
		mux.Handle(handler.Uploads, http.StripPrefix("/"+uploadsPrefix+"/", files))
	}

	srv := server.NewHTTP(logger, hdlr, appCfg.Port)
	return run(srv)
}

func newMediaStore(logger *zap.SugaredLogger, cfg config.Media) (core.MediaStore, error) {
	switch cfg.Backend {
	case config.MediaBackendS3:
		client := media.NewS3Client(cfg.S3)
		logger.Infow("storing uploads in s3", "bucket", cfg.S3.Bucket, "endpoint", cfg.S3.Endpoint)
		return media.NewS3Store(client, cfg.S3.Bucket, cfg.S3.PublicBaseURL, uploadsPrefix+"/"), nil
	default:
		store, err := media.NewLocalStore(cfg.UploadDir, uploadsPrefix)
		if err != nil {
			return nil, err
		}
		logger.Infow("storing uploads on disk", "dir", cfg.UploadDir)
		return store, nil
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
