package logsetup

import (
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/starshine-sys/crusader/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup sets up logging to the console and to the log file named in the config.
// The returned function flushes and closes the log file.
func Setup(c config.LoggingConfig) (*zap.Logger, func(), error) {
	f, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening log file")
	}

	log := New(c, zapcore.Lock(os.Stdout), zapcore.Lock(f))
	zap.RedirectStdLog(log)

	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}

// New creates a logger writing to console and file, each filtered by its own level and the global level.
func New(c config.LoggingConfig, console, file zapcore.WriteSyncer) *zap.Logger {
	all := c.Level.All.Zap()

	consoleEnc := encoderConfig()
	consoleEnc.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), console, levels(all, c.Level.Console.Zap())),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), file, levels(all, c.Level.File.Zap())),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Bootstrap returns a console-only logger, used until the config has been read.
func Bootstrap() *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = encoderConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zcfg.Level.SetLevel(zapcore.InfoLevel)

	log, err := zcfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func levels(mins ...zapcore.Level) zap.LevelEnablerFunc {
	return func(l zapcore.Level) bool {
		for _, m := range mins {
			if l < m {
				return false
			}
		}
		return true
	}
}

func encoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = timeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder
	return enc
}

const layout = "2006-01-02 15:04:05"

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	type appendTimeEncoder interface {
		AppendTimeLayout(time.Time, string)
	}

	if enc, ok := enc.(appendTimeEncoder); ok {
		enc.AppendTimeLayout(t, layout)
		return
	}

	enc.AppendString(t.Format(layout))
}
