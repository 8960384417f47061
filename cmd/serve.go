package cmd

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/pkg/errors"

	"github.com/ZacxDev/htmlgen/handlers"
)

func serve(ctx context.Context, root, port string, logger *slog.Logger) error {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return errors.Wrapf(err, "listening on port %s", port)
	}

	return handlers.Serve(ctx, ln, handlers.NewRouter(root, logger), logger)
}
