package logger

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(logLevel string, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionConfig()
	encodeConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zap.InfoLevel
	}

	var syncer zapcore.WriteSyncer = zapcore.AddSync(os.Stderr)
	if fileSyncer != nil {
		syncer = zapcore.NewMultiWriteSyncer(fileSyncer, os.Stderr)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig.EncoderConfig), syncer, level)
	return zap.New(core, zap.AddCaller())
}

// NewServiceLogger opens the service log file and returns a logger tagged with
// service.name. The returned syncer is reopened on SIGHUP so logrotate can move
// the file away.
func NewServiceLogger(serviceName string, logLevel string, logFile string) (*zap.Logger, *ReopenableWriteSyncer) {
	fileSyncer, err := NewReopenableWriteSyncer(logFile)
	if err != nil {
		l := NewLogger(logLevel, nil).With(zap.String("service.name", serviceName))
		l.Error("failed to open log file, logging to stderr only", zap.String("file", logFile), zap.Error(err))
		return l, nil
	}
	l := NewLogger(logLevel, fileSyncer).With(zap.String("service.name", serviceName))
	reloadOnSignal(l, fileSyncer)
	return l, fileSyncer
}

func reloadOnSignal(l *zap.Logger, fileSyncer *ReopenableWriteSyncer) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for range c {
			l.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				l.Error("failed to reload log file", zap.Error(e))
			} else {
				l.Info("successfully reloaded log file")
			}
		}
	}()
}
