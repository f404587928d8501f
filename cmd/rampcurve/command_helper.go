package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cubeworks/rampcurve/internal/infrastructure/container"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	RequestID string
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// It merges opts with the environment and config file, validates them,
// applies the timeout and builds the container.
func withContainer(opts *CommonOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := opts.BindConfig(cmd, viper.GetViper()); err != nil {
			return err
		}
		opts.Resolve(viper.GetViper())

		logger := slog.Default()

		skipHeader := opts.SkipHeader
		c, err := container.New(container.Options{
			SystemConfigPath: systemConfigPath(),
			Logger:           logger,
			SkipHeader:       &skipHeader,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		if err := opts.ValidateFlags(c.FormatterFactory().SupportedFormats()); err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := opts.ApplyToContext(parent)
		defer cancel()

		requestID := uuid.NewString()
		return handler(&CommandContext{
			Container: c,
			Logger:    logger.With("request_id", requestID),
			Context:   ctx,
			RequestID: requestID,
		}, cmd, args)
	}
}
