package constants

// Ключи конфигурации viper.
const (
	ViperDatabaseURL = "database.url"

	ViperBatchSize  = "normalizer.batch_size"
	ViperMaxRetries = "normalizer.max_retries"
	ViperWorkers    = "normalizer.workers"
	ViperRunTimeout = "normalizer.timeout"

	ViperTranslationEnabled = "translation.enabled"
	ViperTranslationURL     = "translation.url"
	ViperTranslationAPIKey  = "translation.api_key"
	ViperTranslationTimeout = "translation.timeout"
	ViperTranslationRPS     = "translation.rps"

	ViperAPIAddr   = "api.addr"
	ViperSecretKey = "api.secret_key"

	ViperLogLevel    = "log.level"
	ViperLogEncoding = "log.encoding"
)

const (
	CookieKeySecretToken = "secret_token"
	HeaderAuthorization  = "Authorization"
)
