package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jetjson"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file.yaml|-]",
		Short: "Convert a YAML document to JSON",
		Long: `convert decodes one YAML document and emits it as compact JSON through the
jetjson writer. Mapping key order is preserved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			var doc any

			err = yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
			if err != nil {
				return fmt.Errorf("decoding YAML: %w", err)
			}

			sink := jetjson.NewBufferSink(len(data))
			w := jetjson.NewWriter(sink)

			err = writeAny(w, doc)
			if err != nil {
				return err
			}

			if err := w.Err(); err != nil {
				return err
			}

			slog.Debug("converted document", "yamlBytes", len(data), "jsonBytes", sink.Len())

			out := append(sink.Bytes(), '\n')

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

// writeAny emits a decoded YAML value as JSON. Ordered mappings arrive as
// yaml.MapSlice; plain maps are emitted in sorted key order so the output
// is deterministic.
func writeAny(w *jetjson.Writer, doc any) error {
	switch v := doc.(type) {
	case yaml.MapSlice:
		w.ObjectStart()

		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}

			w.FieldName(key)

			if err := writeAny(w, item.Value); err != nil {
				return err
			}
		}

		w.ObjectEnd()

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		w.ObjectStart()

		for _, k := range keys {
			w.FieldName(k)

			if err := writeAny(w, v[k]); err != nil {
				return err
			}
		}

		w.ObjectEnd()

	case []any:
		w.ArrayStart()

		for _, el := range v {
			if err := writeAny(w, el); err != nil {
				return err
			}
		}

		w.ArrayEnd()

	case string:
		w.WriteString(v)
	case bool:
		w.WriteBool(v)
	case nil:
		w.WriteNull()
	case int:
		w.WriteInt64(int64(v))
	case int64:
		w.WriteInt64(v)
	case uint64:
		if v > 1<<63-1 {
			return fmt.Errorf("integer %d overflows JSON emitter", v)
		}

		w.WriteInt64(int64(v))
	case float64:
		w.WriteFloat64(v)
	default:
		return fmt.Errorf("unsupported YAML value of type %T", doc)
	}

	return nil
}
