/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package study

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Config configures the execution of a study.
type Config struct {
	// Trials is the number of independent trials to average.
	Trials int
	// Workers bounds the number of trials running at once.
	// Values below 1 mean runtime.GOMAXPROCS(0).
	Workers int
	// Seed determines the randomness of all trials.
	Seed uint64
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration running 100 trials
// on all available processors.
func DefaultConfig() Config {
	return Config{
		Trials:  100,
		Workers: runtime.GOMAXPROCS(0),
		Seed:    1,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c.Logger
}

// run executes trial for every trial index and returns the results
// ordered by index. The first failing trial cancels the others.
func run[T any](ctx context.Context, cfg Config, name string, trial func(ctx context.Context, src sample.Source) (T, error)) ([]T, error) {
	if cfg.Trials < 1 {
		return nil, errors.Errorf("study %s needs at least one trial, got %d", name, cfg.Trials)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.logger().With("study", name)
	key := sample.KeyFromSeed(cfg.Seed)

	results := make([]T, cfg.Trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Trials; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := trial(ctx, sample.NewKeyed(key, uint64(i)))
			if err != nil {
				return errors.Wrapf(err, "trial %d", i)
			}
			results[i] = r
			logger.Debug("trial finished", "trial", i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "study %s", name)
	}
	logger.Info("study finished", "trials", cfg.Trials, "workers", workers)

	return results, nil
}
