package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ib-77/ropfn/pkg/rec"
	"github.com/ib-77/ropfn/pkg/rec/pluck"
	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/chain"
	"github.com/spf13/cobra"
)

func newPluckCmd(a *app) *cobra.Command {
	var defFile string

	cmd := &cobra.Command{
		Use:     "pluck",
		Short:   "Reshape records with a YAML transform definition",
		Example: `  # Flatten nested fields
  ropfn pluck --def person.yaml --file people.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTransform(defFile)
			if err != nil {
				return err
			}
			out := chain.Map(a.readInput(cmd), func(ctx context.Context, v any) any {
				if list, ok := v.([]any); ok {
					res := t.ApplyAll(list)
					shaped := make([]any, len(res))
					for i, r := range res {
						shaped[i] = r
					}
					return shaped
				}
				return t.Apply(v)
			})
			return write(a, cmd, out)
		},
	}

	cmd.Flags().StringVar(&defFile, "def", "", "YAML transform definition file")
	_ = cmd.MarkFlagRequired("def")
	return cmd
}

func loadTransform(path string) (*pluck.Transform, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return pluck.ParseYAML(b)
}

func newExtractCmd(a *app) *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:     "extract",
		Short:   "Keep only the given keys of every record",
		Example: `  ropfn extract --keys id,place --file places.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := chain.Map(a.readRecords(cmd), func(ctx context.Context, list []rec.Record) []any {
				return recordsToAny(rec.Extract(keys, list))
			})
			return write(a, cmd, out)
		},
	}

	cmd.Flags().StringSliceVar(&keys, "keys", nil, "Keys to keep")
	_ = cmd.MarkFlagRequired("keys")
	return cmd
}

func newEnrichCmd(a *app) *cobra.Command {
	var (
		sourceFile string
		match      string
		fields     []string
	)

	cmd := &cobra.Command{
		Use:     "enrich",
		Short:   "Copy fields from the first matching source record",
		Example: `  # Join on the same key
  ropfn enrich --source customers.json --match id --extract name,age --file orders.json

  # Join source "id" against input "customerId"
  ropfn enrich --source customers.json --match id:customerId --extract name --file kyc.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := chain.ThenTry(chain.FromValue(cmd.Context(), sourceFile),
				func(ctx context.Context, path string) ([]rec.Record, error) {
					b, err := os.ReadFile(path)
					if err != nil {
						return nil, fmt.Errorf("failed to read source: %w", err)
					}
					return parseRecords(b)
				})
			enricher := chain.Map(source, func(ctx context.Context, src []rec.Record) *rec.Enricher {
				return rec.Enrich(rec.EnrichConfig{
					Match:   parseMatch(match),
					Extract: fields,
					Source:  src,
				})
			})
			out := chain.Then(enricher, func(ctx context.Context, e *rec.Enricher) rop.Result[[]any] {
				return chain.Map(a.readRecords(cmd), func(ctx context.Context, list []rec.Record) []any {
					return recordsToAny(e.ApplyAll(list))
				}).Result()
			})
			return write(a, cmd, out)
		},
	}

	cmd.Flags().StringVar(&sourceFile, "source", "", "JSON array of source records")
	cmd.Flags().StringVar(&match, "match", "", "Match key, or sourceKey:inputKey")
	cmd.Flags().StringSliceVar(&fields, "extract", nil, "Fields to copy from the matching record")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func parseMatch(s string) *rec.Match {
	if s == "" {
		return nil
	}
	if sourceKey, inputKey, ok := strings.Cut(s, ":"); ok {
		return rec.OnKeys(sourceKey, inputKey)
	}
	return rec.On(s)
}

func newIndexCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "index",
		Short:   "Index records by the value of a key",
		Example: `  ropfn index --key id --file users.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := chain.Map(a.readRecords(cmd), func(ctx context.Context, list []rec.Record) map[string]any {
				return stringKeys(rec.IndexBy(key, list))
			})
			return write(a, cmd, out)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Key to index by")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// stringKeys renders index keys the way JSON object keys would read.
func stringKeys(index map[any]rec.Record) map[string]any {
	out := make(map[string]any, len(index))
	keys := make([]any, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
	for _, k := range keys {
		name := fmt.Sprint(k)
		if _, taken := out[name]; !taken {
			out[name] = index[k]
		}
	}
	return out
}
