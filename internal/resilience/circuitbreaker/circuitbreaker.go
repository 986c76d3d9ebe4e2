// Package circuitbreaker はAIプロバイダと要約ストアへの呼び出しを
// github.com/sony/gobreaker で保護する。回路が開いている間は即座に
// ErrOpenState を返し、障害中の外部サービスへの無駄な呼び出しを防ぐ。
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config は個々のサーキットブレーカーの設定を表す。
type Config struct {
	// Name はログとメトリクスに出力される識別子
	Name string

	// MaxRequests はhalf-open状態で通過を許すリクエスト数
	MaxRequests uint32

	// Interval はclosed状態で成功/失敗カウントをリセットする周期
	Interval time.Duration

	// Timeout はopen状態からhalf-openへ遷移するまでの待ち時間
	Timeout time.Duration

	// FailureThreshold は回路を開く失敗率のしきい値 (0.6 = 60%)
	FailureThreshold float64

	// MinRequests は失敗率を計算し始める最小リクエスト数
	MinRequests uint32
}

// DefaultConfig returns a baseline configuration suitable for most
// external calls.
func DefaultConfig(name string) Config {
	return providerConfig(name)
}

// ClaudeAPIConfig returns the breaker configuration for the Anthropic API.
func ClaudeAPIConfig() Config {
	return providerConfig("claude-api")
}

// OpenAIAPIConfig returns the breaker configuration for the OpenAI API.
func OpenAIAPIConfig() Config {
	return providerConfig("openai-api")
}

// GeminiAPIConfig returns the breaker configuration for the Gemini API.
func GeminiAPIConfig() Config {
	return providerConfig("gemini-api")
}

// providerConfig は全プロバイダ共通のチューニング値を返す。
// 生成リクエストは数十秒かかり得るため、Timeout は短くしすぎない。
func providerConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// CircuitBreaker は gobreaker.CircuitBreaker の薄いラッパー。
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a circuit breaker from cfg. State transitions are logged
// at warn level so operators can see a provider degrading.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the breaker. When the circuit is open it
// returns gobreaker.ErrOpenState without calling fn.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker's identifier.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether the circuit is currently open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
