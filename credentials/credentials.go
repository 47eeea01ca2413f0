// Package credentials resolves signing credentials from an ordered chain of
// providers: process environment, shared config file, and anything the
// caller registers.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/config"
)

// Environment variables read by EnvProvider.
const (
	AccessKeyEnvVar    = "BOTO_ACCESS_KEY_ID"
	SecretKeyEnvVar    = "BOTO_SECRET_ACCESS_KEY"
	SessionTokenEnvVar = "BOTO_SESSION_TOKEN"
)

// Value is a set of resolved credentials.
type Value struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// HasKeys reports whether the value carries a usable key pair.
func (v Value) HasKeys() bool {
	return v.AccessKeyID != "" && v.SecretAccessKey != ""
}

// Provider yields credentials from one source. A provider that has nothing
// to offer returns a zero Value and nil error so the chain can move on;
// errors are reserved for sources that exist but are broken.
type Provider interface {
	Name() string
	Retrieve(ctx context.Context) (Value, error)
}

// EnvProvider reads credentials from the process environment.
type EnvProvider struct{}

// Name implements Provider.
func (EnvProvider) Name() string { return "env" }

// Retrieve implements Provider.
func (EnvProvider) Retrieve(context.Context) (Value, error) {
	v := Value{
		AccessKeyID:     os.Getenv(AccessKeyEnvVar),
		SecretAccessKey: os.Getenv(SecretKeyEnvVar),
		SessionToken:    os.Getenv(SessionTokenEnvVar),
	}
	if !v.HasKeys() {
		return Value{}, nil
	}
	return v, nil
}

// SharedFileProvider reads credentials from a profile in the shared TOML
// config file.
type SharedFileProvider struct {
	Path    string
	Profile string
}

// Name implements Provider.
func (SharedFileProvider) Name() string { return "shared-file" }

// Retrieve implements Provider. A missing config file means this source has
// nothing to offer; a file that exists but cannot be used is an error.
func (p SharedFileProvider) Retrieve(context.Context) (Value, error) {
	prof, err := config.LoadSharedConfig(p.Path, p.Profile)
	if err != nil {
		var nf *botoerr.ConfigNotFoundError
		if errors.As(err, &nf) {
			return Value{}, nil
		}
		return Value{}, err
	}
	v := Value{
		AccessKeyID:     prof.AccessKeyID,
		SecretAccessKey: prof.SecretAccessKey,
		SessionToken:    prof.SessionToken,
	}
	if !v.HasKeys() {
		return Value{}, nil
	}
	return v, nil
}

// StaticProvider returns fixed credentials, mainly for tests and tooling.
type StaticProvider struct {
	Value Value
}

// Name implements Provider.
func (StaticProvider) Name() string { return "static" }

// Retrieve implements Provider.
func (p StaticProvider) Retrieve(context.Context) (Value, error) {
	return p.Value, nil
}

// Chain tries providers in order until one yields credentials. The provider
// list is assembled at setup time and must not be mutated concurrently with
// Resolve.
type Chain struct {
	providers []Provider
	log       *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithLogger sets the logger used to trace resolution.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		if l != nil {
			c.log = l
		}
	}
}

// NewChain creates a chain over the given providers. With no providers the
// default order is environment then shared file.
func NewChain(providers []Provider, opts ...Option) *Chain {
	if len(providers) == 0 {
		cfg, _ := config.Load()
		providers = []Provider{
			EnvProvider{},
			SharedFileProvider{Path: cfg.ConfigFile, Profile: cfg.Profile},
		}
	}
	c := &Chain{providers: providers, log: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Resolve walks the chain and returns the first credentials found. If every
// provider comes up empty the caller is out of options and gets a
// NoCredentialsError.
func (c *Chain) Resolve(ctx context.Context) (Value, error) {
	for _, p := range c.providers {
		v, err := p.Retrieve(ctx)
		if err != nil {
			return Value{}, fmt.Errorf("credential provider %s: %w", p.Name(), err)
		}
		if v.HasKeys() {
			c.log.Debug("credentials resolved", slog.String("provider", p.Name()))
			return v, nil
		}
	}
	return Value{}, botoerr.NewNoCredentialsError()
}

// Providers returns the names of the registered providers in order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// InsertBefore registers p immediately before the named provider. Inserting
// relative to an unregistered name is an UnknownCredentialError.
func (c *Chain) InsertBefore(name string, p Provider) error {
	i, ok := c.index(name)
	if !ok {
		return botoerr.NewUnknownCredentialError(name)
	}
	c.providers = append(c.providers[:i], append([]Provider{p}, c.providers[i:]...)...)
	return nil
}

// InsertAfter registers p immediately after the named provider.
func (c *Chain) InsertAfter(name string, p Provider) error {
	i, ok := c.index(name)
	if !ok {
		return botoerr.NewUnknownCredentialError(name)
	}
	c.providers = append(c.providers[:i+1], append([]Provider{p}, c.providers[i+1:]...)...)
	return nil
}

// Remove unregisters the named provider.
func (c *Chain) Remove(name string) error {
	i, ok := c.index(name)
	if !ok {
		return botoerr.NewUnknownCredentialError(name)
	}
	c.providers = append(c.providers[:i], c.providers[i+1:]...)
	return nil
}

func (c *Chain) index(name string) (int, bool) {
	for i, p := range c.providers {
		if p.Name() == name {
			return i, true
		}
	}
	return 0, false
}
