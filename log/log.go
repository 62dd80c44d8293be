package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Plugin = zapcore.Core

func NewLogger(plugin zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(plugin, append(DefaultOption(), options...)...)
}

func NewPlugin(encoder zapcore.Encoder, writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(encoder, writer, enabler)
}

// 绑定到标准错误的console日志核心
func NewStderrPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(ConsoleEncoder(), zapcore.Lock(zapcore.AddSync(os.Stderr)), enabler)
}

// Lumberjack logger没有暴露sync方法，所以额外返回一个closer，进程退出前需要close以保证内容全部刷到磁盘
/*
输入一个日志文件路径和日志级别过滤器，输出一个zapcore.Core实例和一个io.Closer实例
*/
func NewFilePlugin(filePath string, enabler zapcore.LevelEnabler) (Plugin, io.Closer) {
	var writer = DefaultLumberjackLogger()
	writer.Filename = filePath
	return NewPlugin(DefaultEncoder(), zapcore.AddSync(writer), enabler), writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

/*
输入日志级别名称和日志文件路径，输出日志器、需要在退出前关闭的closer和一个错误

日志总是写到标准错误，文件路径非空时同时轮转写入文件；级别名称为zap的级别名，例如debug、info
*/
func Setup(level, filePath string) (*zap.Logger, io.Closer, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	plugin := NewStderrPlugin(lvl)
	var closer io.Closer = nopCloser{}
	if filePath != "" {
		var file Plugin
		file, closer = NewFilePlugin(filePath, lvl)
		plugin = zapcore.NewTee(plugin, file)
	}
	return NewLogger(plugin), closer, nil
}
