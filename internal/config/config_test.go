package config_test

import (
	"os"
	"path/filepath"
	"time"

	"blogapi/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"ENV_FILE", "API_PORT", "DB_CONNECTION_URL", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST",
	"MEDIA_BACKEND", "UPLOAD_DIR", "MAX_UPLOAD_BYTES", "CORS_ALLOWED_ORIGINS",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "S3_PUBLIC_BASE_URL",
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		saved := map[string]*string{}
		for _, key := range envKeys {
			if val, ok := os.LookupEnv(key); ok {
				saved[key] = &val
			} else {
				saved[key] = nil
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		DeferCleanup(func() {
			for key, val := range saved {
				if val == nil {
					os.Unsetenv(key)
				} else {
					os.Setenv(key, *val)
				}
			}
		})

		os.Setenv("ENV_FILE", filepath.Join(GinkgoT().TempDir(), "missing.env"))
		os.Setenv("DB_CONNECTION_URL", "postgres://localhost/blog")
		os.Setenv("JWT_SECRET", "secret")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("3000"))
			Expect(app.DBConnectionURL).To(Equal("postgres://localhost/blog"))
			Expect(app.JWTSecret).To(Equal("secret"))
			Expect(app.TokenTTL).To(Equal(24 * time.Hour))
			Expect(app.BcryptCost).To(Equal(10))
			Expect(app.CORSAllowedOrigins).To(Equal([]string{"*"}))
			Expect(app.Media.Backend).To(Equal(config.MediaBackendLocal))
			Expect(app.Media.UploadDir).To(Equal("uploads"))
			Expect(app.Media.MaxUploadBytes).To(Equal(int64(10 << 20)))
			Expect(app.Media.S3.Region).To(Equal("auto"))
		})
	})

	When("optional variables are set", func() {
		BeforeEach(func() {
			os.Setenv("API_PORT", "8080")
			os.Setenv("TOKEN_TTL", "1h30m")
			os.Setenv("BCRYPT_COST", "12")
			os.Setenv("MAX_UPLOAD_BYTES", "2048")
			os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://blog.example.com,")
			os.Setenv("UPLOAD_DIR", "/var/lib/blog")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.TokenTTL).To(Equal(90 * time.Minute))
			Expect(app.BcryptCost).To(Equal(12))
			Expect(app.Media.MaxUploadBytes).To(Equal(int64(2048)))
			Expect(app.Media.UploadDir).To(Equal("/var/lib/blog"))
			Expect(app.CORSAllowedOrigins).To(Equal([]string{"http://localhost:5173", "https://blog.example.com"}))
		})
	})

	When("the database connection url is missing", func() {
		BeforeEach(func() {
			os.Unsetenv("DB_CONNECTION_URL")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError("environment variable not found: DB_CONNECTION_URL"))
		})
	})

	When("the jwt secret is empty", func() {
		BeforeEach(func() {
			os.Setenv("JWT_SECRET", "")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError("environment variable not found: JWT_SECRET"))
		})
	})

	When("the token ttl is not a duration", func() {
		BeforeEach(func() {
			os.Setenv("TOKEN_TTL", "tomorrow")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("TOKEN_TTL")))
		})
	})

	When("the bcrypt cost is not a number", func() {
		BeforeEach(func() {
			os.Setenv("BCRYPT_COST", "ten")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("BCRYPT_COST")))
		})
	})

	When("the media backend is unknown", func() {
		BeforeEach(func() {
			os.Setenv("MEDIA_BACKEND", "ftp")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("MEDIA_BACKEND")))
		})
	})

	When("the s3 backend is selected", func() {
		BeforeEach(func() {
			os.Setenv("MEDIA_BACKEND", "S3")
			os.Setenv("S3_BUCKET", "media")
			os.Setenv("S3_ENDPOINT", "https://account.r2.cloudflarestorage.com")
			os.Setenv("S3_ACCESS_KEY_ID", "key")
			os.Setenv("S3_SECRET_ACCESS_KEY", "secret")
			os.Setenv("S3_PUBLIC_BASE_URL", "https://media.example.com")
		})

		It("should load the bucket settings", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Media.Backend).To(Equal(config.MediaBackendS3))
			Expect(app.Media.S3).To(Equal(config.S3{
				Bucket:          "media",
				Region:          "auto",
				Endpoint:        "https://account.r2.cloudflarestorage.com",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
				PublicBaseURL:   "https://media.example.com",
			}))
		})

		When("credentials are missing", func() {
			BeforeEach(func() {
				os.Unsetenv("S3_ACCESS_KEY_ID")
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("environment variable not found: S3_ACCESS_KEY_ID"))
			})
		})
	})

	When("a dotenv file is present", func() {
		BeforeEach(func() {
			envFile := filepath.Join(GinkgoT().TempDir(), "test.env")
			Expect(os.WriteFile(envFile, []byte("API_PORT=4000\nJWT_SECRET=from-file\n"), 0o600)).To(Succeed())
			os.Setenv("ENV_FILE", envFile)
		})

		It("should fill unset variables without overriding set ones", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("4000"))
			Expect(app.JWTSecret).To(Equal("secret"))
		})
	})
})
