package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var globalLogger *zap.SugaredLogger

// Init initializes the global logger based on configuration.
// Diagnostics go to stderr unless a log file is configured; stdout is reserved
// for the report.
// Init 根据配置初始化全局日志记录器。诊断信息默认输出到 stderr，stdout 保留给报告。
func Init(cfg LoggingConfig) {
	InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit console sink.
// InitWithWriter 与 Init 相同，但可指定控制台输出。
func InitWithWriter(cfg LoggingConfig, console io.Writer) {
	writeSyncer := zapcore.AddSync(console)

	if cfg.Enabled && cfg.Path != "" {
		// Create directory if not exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			// 如果无法创建目录，则输出到控制台
			zap.New(zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
				writeSyncer, zapcore.WarnLevel,
			)).Sugar().Warnf("⚠️  Failed to create log directory: %v", err)
		} else {
			rotator := &lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			writeSyncer = zapcore.AddSync(rotator)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, writeSyncer, ParseLevel(cfg.Level))
	globalLogger = zap.New(core, zap.AddCaller()).Sugar()

	globalLogger.Debugf("[LOG] Logging initialized (Level: %s, Path: %s)", cfg.Level, cfg.Path)
}

// ParseLevel maps a configured level name to a zap level, defaulting to warn.
// ParseLevel 将配置的级别名映射为 zap 级别，默认 warn。
func ParseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(name)
	if err != nil || name == "" {
		return zapcore.WarnLevel
	}
	return level
}

// Sync flushes any buffered log entries.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger from context or global logger
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	if globalLogger == nil {
		// Fallback to basic stderr logger if not initialized
		l, err := zap.NewDevelopment(zap.IncreaseLevel(zapcore.WarnLevel))
		if err != nil {
			return zap.NewNop().Sugar()
		}
		return l.Sugar()
	}
	return globalLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
