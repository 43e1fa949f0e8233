package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it. Only variables that are set override earlier values.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address
//	DATABASE_DSN       PostgreSQL DSN
//	SECRET_KEY         JWT HMAC secret
//	ADMIN_USERNAME     seed admin account name
//	ADMIN_PASSWORD     seed admin account password
//	STORAGE_KIND       "local" or "s3"
//	UPLOAD_DIR         local storage directory
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	overlay := func(dst *string, name string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	overlay(&cfg.EndpointAddr, "ADDRESS")
	overlay(&cfg.DatabaseDSN, "DATABASE_DSN")
	overlay(&cfg.SecretKey, "SECRET_KEY")
	overlay(&cfg.AdminUserName, "ADMIN_USERNAME")
	overlay(&cfg.AdminPassword, "ADMIN_PASSWORD")
	overlay(&cfg.StorageKind, "STORAGE_KIND")
	overlay(&cfg.UploadDir, "UPLOAD_DIR")
	overlay(&cfg.S3RootUser, "S3_ROOT_USER")
	overlay(&cfg.S3RootPassword, "S3_ROOT_PASSWORD")
	overlay(&cfg.S3Bucket, "S3_BUCKET")
	overlay(&cfg.S3Region, "S3_REGION")
	overlay(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}
