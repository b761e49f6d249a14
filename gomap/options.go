package gomap

import (
	"log/slog"
)

// MapOption is an option for controlling the mapping of Go values to nodes.
type MapOption interface {
	applyMap(*config)
}

// UnmapOption is an option for controlling the mapping of nodes to Go values.
type UnmapOption interface {
	applyUnmap(*config)
}

// Option applies in both directions.
type Option interface {
	MapOption
	UnmapOption
}

type config struct {
	registry *Registry
	logger   *slog.Logger
	tag      string
}

func newConfig() *config {
	return &config{tag: "wire"}
}

func (c *config) finish() *config {
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func mapConfig(opts []MapOption) *config {
	c := newConfig()
	for _, opt := range opts {
		opt.applyMap(c)
	}
	return c.finish()
}

func unmapConfig(opts []UnmapOption) *config {
	c := newConfig()
	for _, opt := range opts {
		opt.applyUnmap(c)
	}
	return c.finish()
}

type option func(*config)

func (o option) applyMap(c *config)   { o(c) }
func (o option) applyUnmap(c *config) { o(c) }

// WithRegistry uses r in place of the default registry.
func WithRegistry(r *Registry) Option {
	return option(func(c *config) { c.registry = r })
}

// WithLogger sets the logger for conversion events. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return option(func(c *config) { c.logger = l })
}

// WithTag sets the struct tag consulted for member names. The default is
// "wire".
func WithTag(tag string) Option {
	return option(func(c *config) { c.tag = tag })
}
