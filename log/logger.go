package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger //公共的日志指针

// Init 初始化全局日志, production=true 时输出 JSON
func Init(production bool, level string) error {
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}

	var base zap.Config
	if production {
		base = zap.NewProductionConfig()
	} else {
		base = zap.NewDevelopmentConfig()
		base.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	// ——时间与级别的统一格式——
	enc := base.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	// 普通日志（< ERROR）：不输出 caller
	encNoCaller := enc
	encNoCaller.CallerKey = ""

	// 错误日志（>= ERROR）：输出 caller
	encWithCaller := enc
	encWithCaller.CallerKey = "caller"

	var encA, encB zapcore.Encoder
	if production {
		encA = zapcore.NewJSONEncoder(encNoCaller)
		encB = zapcore.NewJSONEncoder(encWithCaller)
	} else {
		encA = zapcore.NewConsoleEncoder(encNoCaller)
		encB = zapcore.NewConsoleEncoder(encWithCaller)
	}

	ws := zapcore.Lock(zapcore.AddSync(os.Stdout))

	coreNoCaller := zapcore.NewCore(
		encA, ws,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= lvl && l < zapcore.ErrorLevel }),
	)
	coreWithCaller := zapcore.NewCore(
		encB, ws,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= lvl && l >= zapcore.ErrorLevel }),
	)

	logger = zap.New(
		zapcore.NewTee(coreNoCaller, coreWithCaller),
		zap.AddCaller(), // 计算 caller，但只有 encWithCaller 才会编码输出
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return nil
}

// 防止未初始化时出现空指针
func L() *zap.Logger {
	if logger == nil {
		_ = Init(false, "")
	}
	return logger
}

// Replace 替换全局日志(测试里用 zap.NewNop)
func Replace(l *zap.Logger) {
	logger = l
}

func Sync() { _ = L().Sync() } //刷新缓冲，错误忽略
