/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package buildlog records the events of a single build.
//
// A Log keeps a plain-text transcript, rendered by a slog text handler, that
// is embedded in build failures. Events can additionally be forwarded to a
// caller-supplied *slog.Logger.
package buildlog

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

// Option configures a Log.
type Option func(*Log)

// WithLogger forwards every event to l in addition to the transcript.
// A nil logger disables forwarding.
func WithLogger(l *slog.Logger) Option {
	return func(lg *Log) { lg.sink = l }
}

// New returns an empty Log.
func New(opts ...Option) *Log {
	lg := &Log{}
	lg.transcript = slog.New(slog.NewTextHandler(&lg.buf, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: dropTime,
	}))
	for _, opt := range opts {
		if opt != nil {
			opt(lg)
		}
	}
	return lg
}

// Log is a concurrency-safe apis.BuildLog.
type Log struct {
	buf        lockedBuffer
	transcript *slog.Logger
	sink       *slog.Logger
}

// Ensure Log implements apis.BuildLog.
var _ apis.BuildLog = (*Log)(nil)

// CreatingType implements apis.BuildLog.
func (l *Log) CreatingType(t, producer reflect.Type, context any) {
	l.debug("creating type",
		slog.String("type", uref.FullName(t)),
		slog.String("producer", uref.FullName(producer)),
		slog.String("context", contextName(context)))
}

// CreatingValue implements apis.BuildLog.
func (l *Log) CreatingValue(t, producer reflect.Type, context any) {
	l.debug("creating value",
		slog.String("type", uref.FullName(t)),
		slog.String("producer", uref.FullName(producer)),
		slog.String("context", contextName(context)))
}

// PopulatingInstance implements apis.BuildLog.
func (l *Log) PopulatingInstance(instance any) {
	l.debug("populating instance", slog.String("type", uref.FullName(reflect.TypeOf(instance))))
}

// CircularReferenceDetected implements apis.BuildLog.
func (l *Log) CircularReferenceDetected(t reflect.Type) {
	l.debug("circular reference detected", slog.String("type", uref.FullName(t)))
}

// IgnoringProperty implements apis.BuildLog.
func (l *Log) IgnoringProperty(target apis.BuildTarget) {
	l.debug("ignoring property",
		slog.String("owner", uref.FullName(target.DeclaringType)),
		slog.String("name", target.Name))
}

// MappingType implements apis.BuildLog.
func (l *Log) MappingType(from, to reflect.Type) {
	l.debug("mapping type", slog.String("from", uref.FullName(from)), slog.String("to", uref.FullName(to)))
}

// MaxDepthReached implements apis.BuildLog.
func (l *Log) MaxDepthReached(target apis.BuildTarget, depth int) {
	l.debug("max depth reached", slog.String("target", target.String()), slog.Int("depth", depth))
}

// BuildFailure implements apis.BuildLog. Failures are recorded at warn
// level; only the first line of the error is kept to avoid nesting the
// transcript into itself.
func (l *Log) BuildFailure(err error) {
	if err == nil {
		return
	}
	l.emit(slog.LevelWarn, "build failed", slog.String("error", firstLine(err.Error())))
}

// Output returns the transcript recorded so far.
func (l *Log) Output() string {
	return l.buf.String()
}

func (l *Log) debug(msg string, attrs ...slog.Attr) {
	l.emit(slog.LevelDebug, msg, attrs...)
}

func (l *Log) emit(level slog.Level, msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	l.transcript.LogAttrs(ctx, level, msg, attrs...)
	if l.sink != nil {
		l.sink.LogAttrs(ctx, level, msg, attrs...)
	}
}

// dropTime keeps transcripts stable across runs.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

func contextName(v any) string {
	if v == nil {
		return "none"
	}
	return uref.FullName(reflect.TypeOf(v))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// lockedBuffer serializes handler writes with transcript reads.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
