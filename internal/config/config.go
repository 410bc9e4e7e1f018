package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	MediaBackendLocal = "local"
	MediaBackendS3    = "s3"
)

const (
	envFileEnvKey     = "ENV_FILE"
	apiPortEnvKey     = "API_PORT"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	tokenTTLEnvKey    = "TOKEN_TTL"
	bcryptCostEnvKey  = "BCRYPT_COST"
	mediaBackendKey   = "MEDIA_BACKEND"
	uploadDirEnvKey   = "UPLOAD_DIR"
	maxUploadEnvKey   = "MAX_UPLOAD_BYTES"
	corsOriginsEnvKey = "CORS_ALLOWED_ORIGINS"
	s3BucketEnvKey    = "S3_BUCKET"
	s3RegionEnvKey    = "S3_REGION"
	s3EndpointEnvKey  = "S3_ENDPOINT"
	s3AccessKeyEnvKey = "S3_ACCESS_KEY_ID"
	s3SecretKeyEnvKey = "S3_SECRET_ACCESS_KEY"
	s3PublicURLEnvKey = "S3_PUBLIC_BASE_URL"
)

const (
	defaultEnvFile     = ".env"
	defaultPort        = "3000"
	defaultTokenTTL    = 24 * time.Hour
	defaultBcryptCost  = 10
	defaultUploadDir   = "uploads"
	defaultMaxUpload   = 10 << 20
	defaultS3Region    = "auto"
	defaultCORSOrigins = "*"
)

type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

type Media struct {
	Backend        string
	UploadDir      string
	MaxUploadBytes int64
	S3             S3
}

type App struct {
	Port               string
	DBConnectionURL    string
	JWTSecret          string
	TokenTTL           time.Duration
	BcryptCost         int
	CORSAllowedOrigins []string
	Media              Media
}

// NewApp reads the application configuration from the environment. Values
// from the dotenv file named by ENV_FILE (".env" by default) are loaded first
// and never override variables that are already set.
func NewApp() (App, error) {
	if err := loadEnvFile(); err != nil {
		return App{}, err
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	tokenTTL := defaultTokenTTL
	if raw, ok := os.LookupEnv(tokenTTLEnvKey); ok {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, tokenTTLEnvKey, raw)
		}
		tokenTTL = d
	}

	bcryptCost, err := intEnv(bcryptCostEnvKey, defaultBcryptCost)
	if err != nil {
		return App{}, err
	}

	maxUpload, err := intEnv(maxUploadEnvKey, defaultMaxUpload)
	if err != nil {
		return App{}, err
	}

	media := Media{
		Backend:        strings.ToLower(getEnv(mediaBackendKey, MediaBackendLocal)),
		UploadDir:      getEnv(uploadDirEnvKey, defaultUploadDir),
		MaxUploadBytes: int64(maxUpload),
		S3: S3{
			Bucket:          getEnv(s3BucketEnvKey, ""),
			Region:          getEnv(s3RegionEnvKey, defaultS3Region),
			Endpoint:        getEnv(s3EndpointEnvKey, ""),
			AccessKeyID:     getEnv(s3AccessKeyEnvKey, ""),
			SecretAccessKey: getEnv(s3SecretKeyEnvKey, ""),
			PublicBaseURL:   getEnv(s3PublicURLEnvKey, ""),
		},
	}

	switch media.Backend {
	case MediaBackendLocal:
	case MediaBackendS3:
		required := []struct{ key, val string }{
			{s3BucketEnvKey, media.S3.Bucket},
			{s3AccessKeyEnvKey, media.S3.AccessKeyID},
			{s3SecretKeyEnvKey, media.S3.SecretAccessKey},
			{s3PublicURLEnvKey, media.S3.PublicBaseURL},
		}
		for _, r := range required {
			if r.val == "" {
				return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
			}
		}
	default:
		return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, mediaBackendKey, media.Backend)
	}

	return App{
		Port:               getEnv(apiPortEnvKey, defaultPort),
		DBConnectionURL:    dbConn,
		JWTSecret:          jwtSecret,
		TokenTTL:           tokenTTL,
		BcryptCost:         bcryptCost,
		CORSAllowedOrigins: splitList(getEnv(corsOriginsEnvKey, defaultCORSOrigins)),
		Media:              media,
	}, nil
}

func loadEnvFile() error {
	envFile := getEnv(envFileEnvKey, defaultEnvFile)
	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %q: %w", envFile, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
