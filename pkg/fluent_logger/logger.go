package fluentlogger

import (
	"errors"
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config хранит параметры подключения к Fluent Bit.
type Config struct {
	Host string // "127.0.0.1" или "fluent-bit" в Docker
	Port int    // обычно 24224
	// TagPrefix - общий префикс тегов, обычно имя приложения
	TagPrefix string
	// Async включает буферизованную отправку: запись лога не ждет сети
	Async   bool
	Timeout time.Duration
}

// NewClient создает клиент для Fluent Bit.
// Соединение устанавливается лениво: ошибки сети проявятся при первой отправке.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, errors.New("fluentd tag prefix is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}

	client, err := fluent.New(fluent.Config{
		FluentHost:    cfg.Host,
		FluentPort:    cfg.Port,
		TagPrefix:     cfg.TagPrefix,
		Async:         cfg.Async,
		Timeout:       cfg.Timeout,
		MarshalAsJSON: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}
	return client, nil
}
