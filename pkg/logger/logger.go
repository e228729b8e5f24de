// Package logger configura el logging estructurado de propiedades-pro.
// Con APP_ENV=development la salida es consola legible para trabajar en
// local; en cualquier otro entorno (production) se emite JSON por stdout,
// el formato que recogen los agregadores de logs.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // "development" habilita la salida de consola
	Level string // trace|debug|info|warn|error; defecto info
}

// Logger envuelve zerolog para inyectarlo como dependencia explícita en vez
// de depender del logger global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del servicio según el entorno.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(out).Level(levelFrom(cfg.Level)).With().Timestamp().Logger()

	// Lo que otras librerías logueen por el global de zerolog sale por la misma vía
	log.Logger = zl

	return &Logger{zl: zl}
}

// levelFrom traduce el nivel configurado; un valor desconocido cae en info.
func levelFrom(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Eventos por nivel, delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
