// Copyright 2026 UltimateRPA Tools
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

// Package log builds the zerolog loggers used across urpautil.
package log

import (
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 New creates a structured logger writing JSON lines to out
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// 🎨 NewConsole creates a human-oriented logger with colored levels
func NewConsole(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		FormatLevel: func(i any) string {
			value, ok := i.(string)
			if !ok {
				return "???"
			}
			text := strings.ToUpper(value)
			switch value {
			case zerolog.LevelTraceValue, zerolog.LevelDebugValue:
				return color.HiBlackString(text)
			case zerolog.LevelWarnValue:
				return color.YellowString(text)
			case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
				return color.RedString(text)
			default:
				return color.CyanString(text)
			}
		},
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// 🔌 NewContext attaches a fresh logger to ctx and returns both
func NewContext(ctx context.Context, out io.Writer, level zerolog.Level) (context.Context, zerolog.Logger) {
	logger := New(out, level)
	return logger.WithContext(ctx), logger
}

// 🏷️ WithCommand scopes the context logger to a named command
func WithCommand(ctx context.Context, command string) context.Context {
	logger := zerolog.Ctx(ctx).With().Str("command", command).Logger()
	return logger.WithContext(ctx)
}
