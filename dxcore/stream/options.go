/*
   Copyright 2025 The DIRPX Authors

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

package stream

import (
	"fmt"
	"log/slog"
)

// DefaultGroupSize is the number of symbols per output group.
const DefaultGroupSize = 5

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger for settings changes and line tracing. A nil
// logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithGroupSize sets the output group size. Zero disables grouping.
// It panics if n is negative.
func WithGroupSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("stream: WithGroupSize(%d): size must be non-negative", n))
	}
	return func(p *Processor) { p.groupSize = n }
}

// WithFoldCase controls whether message text is upper-cased before
// conversion. It is enabled by default.
func WithFoldCase(fold bool) Option {
	return func(p *Processor) { p.foldCase = fold }
}
