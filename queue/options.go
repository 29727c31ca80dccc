// File: queue/options.go
// Package queue defines functional options for the queue containers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"log"

	"github.com/momentics/hioload-queue/internal/ring"
)

// config collects everything an Option may change before the engine is built.
type config[T any] struct {
	policy ring.Policy
	clone  func(T) T
	logger *log.Logger
	onGrow func(from, to int)
}

// Option customizes queue construction.
type Option[T any] func(*config[T])

// WithCapacity reserves room for n elements before the first growth.
// Values below one are raised to one.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.policy.InitialCapacity = n
	}
}

// WithGrowthFactor sets the reallocation multiplier, clamped to [2, 1024].
func WithGrowthFactor[T any](f int) Option[T] {
	return func(c *config[T]) {
		c.policy.GrowthFactor = f
	}
}

// WithCacheLineAlignment rounds every store up to whole CPU cache lines.
func WithCacheLineAlignment[T any]() Option[T] {
	return func(c *config[T]) {
		c.policy.AlignCacheLine = true
	}
}

// WithClone installs a copy function applied to each element as it is stored.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(c *config[T]) {
		c.clone = fn
	}
}

// WithLogger reports every reallocation to l.
func WithLogger[T any](l *log.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = l
	}
}

// WithGrowHook registers fn to be called after every reallocation.
func WithGrowHook[T any](fn func(from, to int)) Option[T] {
	return func(c *config[T]) {
		c.onGrow = fn
	}
}

// newEngine applies opts over the default policy and builds the ring.
func newEngine[T any](name string, opts []Option[T]) *ring.Engine[T] {
	c := config[T]{policy: ring.DefaultPolicy()}
	for _, opt := range opts {
		opt(&c)
	}
	hooks := ring.Hooks[T]{Clone: c.clone}
	if c.logger != nil || c.onGrow != nil {
		logger, onGrow := c.logger, c.onGrow
		hooks.OnGrow = func(from, to int) {
			if logger != nil {
				logger.Printf("[queue] %s grew from %d to %d slots", name, from, to)
			}
			if onGrow != nil {
				onGrow(from, to)
			}
		}
	}
	return ring.New(c.policy, hooks)
}
