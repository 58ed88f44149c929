// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/confutil"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	rootLogger = logrus.NewEntry(logrus.StandardLogger())

	// L accesses the current logger from the context
	L = loggerFromContext

	initAtLeastOnce atomic.Bool
)

type (
	ctxLogKey struct{}
)

func InitConfig(conf *aegconf.LogConfig) {
	initAtLeastOnce.Store(true) // must store before SetLevel

	SetLevel(confutil.StringNotEmpty(conf.Level, *aegconf.LogDefaults.Level))

	output := confutil.StringNotEmpty(conf.Output, *aegconf.LogDefaults.Output)
	switch output {
	case "file":
		filename := confutil.StringNotEmpty(conf.File.Filename, *aegconf.LogDefaults.File.Filename)
		rootLogger.Infof("Logs diverted to %s", filename)
		maxSizeBytes := confutil.ByteSize(conf.File.MaxSize, 0, *aegconf.LogDefaults.File.MaxSize)
		maxAgeDuration := confutil.DurationMin(conf.File.MaxAge, 0, *aegconf.LogDefaults.File.MaxAge)
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    int(math.Ceil(float64(maxSizeBytes) / 1024 / 1024)), /* round up in megabytes */
			MaxBackups: confutil.IntMin(conf.File.MaxBackups, 0, *aegconf.LogDefaults.File.MaxBackups),
			MaxAge:     int(math.Ceil(float64(maxAgeDuration) / float64(time.Hour) / 24)), /* round up in days */
			Compress:   confutil.Bool(conf.File.Compress, *aegconf.LogDefaults.File.Compress),
		})
	case "stderr":
		logrus.SetOutput(os.Stderr)
	case "stdout":
		logrus.SetOutput(os.Stdout)
		fallthrough
	default:
	}

	setFormatting(conf)
}

func setFormatting(conf *aegconf.LogConfig) {
	disableColor := confutil.Bool(conf.DisableColor, *aegconf.LogDefaults.DisableColor)
	forceColor := confutil.Bool(conf.ForceColor, *aegconf.LogDefaults.ForceColor)
	timestampFormat := confutil.StringNotEmpty(conf.TimeFormat, *aegconf.LogDefaults.TimeFormat)

	var formatter logrus.Formatter
	switch confutil.StringNotEmpty(conf.Format, *aegconf.LogDefaults.Format) {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  confutil.StringNotEmpty(conf.JSON.TimestampField, *aegconf.LogDefaults.JSON.TimestampField),
				logrus.FieldKeyLevel: confutil.StringNotEmpty(conf.JSON.LevelField, *aegconf.LogDefaults.JSON.LevelField),
				logrus.FieldKeyMsg:   confutil.StringNotEmpty(conf.JSON.MessageField, *aegconf.LogDefaults.JSON.MessageField),
				logrus.FieldKeyFunc:  confutil.StringNotEmpty(conf.JSON.FuncField, *aegconf.LogDefaults.JSON.FuncField),
				logrus.FieldKeyFile:  confutil.StringNotEmpty(conf.JSON.FileField, *aegconf.LogDefaults.JSON.FileField),
			},
		}
	case "detailed":
		formatter = &logrus.TextFormatter{
			DisableColors:   disableColor,
			ForceColors:     forceColor,
			TimestampFormat: timestampFormat,
			DisableSorting:  false,
			FullTimestamp:   true,
		}
		logrus.SetReportCaller(true)
	case "simple":
		fallthrough
	default:
		formatter = &prefixed.TextFormatter{
			DisableColors:   disableColor,
			ForceColors:     forceColor,
			TimestampFormat: timestampFormat,
			DisableSorting:  false,
			ForceFormatting: true,
			FullTimestamp:   true,
		}
	}
	if confutil.Bool(conf.UTC, *aegconf.LogDefaults.UTC) {
		formatter = &utcFormat{f: formatter}
	}
	logrus.SetFormatter(formatter)
}

type utcFormat struct {
	f logrus.Formatter
}

func (utc *utcFormat) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return utc.f.Format(e)
}

func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func IsTraceEnabled() bool {
	return logrus.IsLevelEnabled(logrus.TraceLevel)
}

func EnsureInit() {
	// Called at strategic init points to cover things like unit tests.
	// NOT guaranteed to run - we can't afford an atomic load per log line.
	if !initAtLeastOnce.Load() {
		InitConfig(&aegconf.LogConfig{})
	}
}

// WithLogger adds the specified logger to the context
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	EnsureInit()
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField adds the specified field to the logger in the context
func WithLogField(ctx context.Context, key, value string) context.Context {
	EnsureInit()
	if len(value) > 61 {
		value = value[0:61] + "..."
	}
	return WithLogger(ctx, loggerFromContext(ctx).WithField(key, value))
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(ctxLogKey{})
	if logger == nil {
		return rootLogger
	}
	return logger.(*logrus.Entry)
}

func GetLevel() string {
	switch logrus.GetLevel() {
	case logrus.ErrorLevel:
		return "error"
	case logrus.WarnLevel:
		return "warn"
	case logrus.DebugLevel:
		return "debug"
	case logrus.TraceLevel:
		return "trace"
	default:
		return "info"
	}
}

func SetLevel(level string) {
	var l logrus.Level
	switch strings.ToLower(level) {
	case "error":
		l = logrus.ErrorLevel
	case "warn", "warning":
		l = logrus.WarnLevel
	case "debug":
		l = logrus.DebugLevel
	case "trace":
		l = logrus.TraceLevel
	default:
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
}
