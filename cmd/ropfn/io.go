package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/ib-77/ropfn/pkg/rec"
	"github.com/ib-77/ropfn/pkg/rop/chain"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readInput parses the JSON document from --file or the command's stdin.
func (a *app) readInput(cmd *cobra.Command) *chain.Chain[any] {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	raw := chain.Catch(ctx, func(ctx context.Context) ([]byte, error) {
		if a.file == "" {
			return io.ReadAll(cmd.InOrStdin())
		}
		return os.ReadFile(a.file)
	})

	return chain.ThenTry(raw, func(ctx context.Context, b []byte) (any, error) {
		a.logger.Debug("parsing input", zap.Int("bytes", len(b)))
		v, err := oj.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON input: %w", err)
		}
		return v, nil
	})
}

// readRecords is readInput that requires an array of objects.
func (a *app) readRecords(cmd *cobra.Command) *chain.Chain[[]rec.Record] {
	return chain.ThenTry(a.readInput(cmd), func(ctx context.Context, v any) ([]rec.Record, error) {
		return toRecords(v)
	})
}

func parseRecords(b []byte) ([]rec.Record, error) {
	v, err := oj.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}
	return toRecords(v)
}

func toRecords(v any) ([]rec.Record, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", v)
	}
	out := make([]rec.Record, len(list))
	for i, item := range list {
		switch tv := item.(type) {
		case nil:
		case map[string]any:
			out[i] = tv
		default:
			return nil, fmt.Errorf("element %d: expected an object, got %T", i, item)
		}
	}
	return out, nil
}

func recordsToAny(list []rec.Record) []any {
	out := make([]any, len(list))
	for i, r := range list {
		if r != nil {
			out[i] = r
		}
	}
	return out
}

// write renders the final result of c, or returns its error.
func write[T any](a *app, cmd *cobra.Command, c *chain.Chain[T]) error {
	return chain.Finally(c,
		func(ctx context.Context, v T) error {
			return a.render(cmd.OutOrStdout(), v)
		},
		func(ctx context.Context, err error) error {
			a.logger.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
			return err
		})
}

func (a *app) render(w io.Writer, v any) error {
	if a.output == yamlFormat {
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	_, err := fmt.Fprintln(w, oj.JSON(v, &oj.Options{Sort: true}))
	return err
}
