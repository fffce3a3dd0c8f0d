package translation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
)

const (
	defaultTimeout = 10 * time.Second
	maxTextLen     = 5000
)

type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit rate.Limit
	// MaxRetries is the number of retries after the first attempt on a 5xx answer.
	MaxRetries    uint64
	RetryInterval time.Duration
}

// Client talks to a LibreTranslate compatible endpoint. It is safe for concurrent use and
// shared by all runs; caches and stats live in Session.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	maxRetries uint64
	retryEvery time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = rate.Every(200 * time.Millisecond)
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 1
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = 300 * time.Millisecond
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		timeout:    cfg.Timeout,
		limiter:    rate.NewLimiter(cfg.RateLimit, 1),
		maxRetries: cfg.MaxRetries,
		retryEvery: cfg.RetryInterval,
	}
}

// Factory hands out one Session per run.
func (c *Client) Factory() Factory {
	return func() Translator {
		return c.NewSession()
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (c *Client) translate(ctx context.Context, text, source string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("limiter.Wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := sonic.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: "en",
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("sonic.Marshal: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryEvery

	var out translateResponse
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
			if reqErr != nil {
				return backoff.Permanent(fmt.Errorf("http.NewRequestWithContext: %w", reqErr))
			}
			req.Header.Set("Content-Type", "application/json")

			resp, doErr := c.httpClient.Do(req)
			if doErr != nil {
				return fmt.Errorf("httpClient.Do: %w", doErr)
			}
			defer resp.Body.Close()

			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			if readErr != nil {
				return fmt.Errorf("io.ReadAll: %w", readErr)
			}

			switch {
			case resp.StatusCode >= http.StatusInternalServerError:
				return fmt.Errorf("status code error: %d", resp.StatusCode)
			case resp.StatusCode != http.StatusOK:
				return backoff.Permanent(fmt.Errorf("status code error: %d %s", resp.StatusCode, strings.TrimSpace(string(raw))))
			}

			if unmarshalErr := sonic.Unmarshal(raw, &out); unmarshalErr != nil {
				return backoff.Permanent(fmt.Errorf("sonic.Unmarshal: %w", unmarshalErr))
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(policy, c.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return "", err
	}

	if out.Error != "" {
		return "", fmt.Errorf("translate api: %s", out.Error)
	}
	return strings.TrimSpace(out.TranslatedText), nil
}

// Session is a per-run Translator: it owns the result cache and the stats of one run.
type Session struct {
	client *Client
	stats  *statsCounter

	mu    sync.Mutex
	cache map[string]Result
}

func (c *Client) NewSession() *Session {
	return &Session{
		client: c,
		stats:  newStatsCounter(),
		cache:  make(map[string]Result),
	}
}

func (s *Session) Stats() Stats {
	return s.stats.snapshot()
}

func (s *Session) Translate(ctx context.Context, text, sourceLangHint string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Method: MethodSkipped}
	}

	lang := resolveLang(text, sourceLangHint)
	if lang == "en" {
		res := Result{Text: text, Method: MethodAlreadyEnglish, Lang: lang}
		s.stats.record(res)
		return res
	}

	key := lang + "\x00" + text
	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		s.stats.record(cached)
		return cached
	}

	source := lang
	if !IsSupported(source) {
		source = "auto"
	}

	res := Result{Text: text, Lang: lang}
	translated, err := s.client.translate(ctx, extract.Truncate(text, maxTextLen), source)
	switch {
	case err == nil && translated != "":
		res.Text = translated
		res.Method = MethodAPI
	default:
		if err != nil {
			logger.Warnf(ctx, "translation.Translate, lang-%s: %v", lang, err)
		}
		if out, changed := applyDictionary(text); changed {
			res.Text = out
			res.Method = MethodFallback
		} else {
			res.Method = MethodFailed
		}
	}

	s.mu.Lock()
	s.cache[key] = res
	s.mu.Unlock()

	s.stats.record(res)
	return res
}

// resolveLang prefers the caller's hint and falls back to marker-word detection. Text too
// short to classify is assumed to be English.
func resolveLang(text, hint string) string {
	if code, ok := extract.NormalizeLanguageCode(hint); ok {
		return code
	}
	if lang, ok := extract.DetectLanguage(text); ok {
		return lang
	}
	return "en"
}
