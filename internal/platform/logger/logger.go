// Package logger は zerolog のロガーを設定から組み立てます。
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhishk002/mock-employee-service/internal/platform/config"
	"github.com/rs/zerolog"
)

// New は cfg に従ったロガーを out へ出力するよう生成します。out が nil なら標準エラー出力です。
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: parse level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == config.LogFormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
