package app

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, errors.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}

	return lvl, nil
}

// newLogger creates an isolated zap logger writing to outW. It does not
// replace the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if formatStr == LogJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(outW), lvl)), nil
}
