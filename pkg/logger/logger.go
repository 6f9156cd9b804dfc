package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Init инициализирует глобальный логгер из окружения и пишет в stdout.
// Должна быть вызвана один раз при старте приложения.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput - то же, что Init, но с произвольным приемником (тесты, файлы)
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	// 1. Уровень из LOG_LEVEL, по умолчанию info
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: json для сбора логов, text для разработки
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Component возвращает запись с полем component
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
