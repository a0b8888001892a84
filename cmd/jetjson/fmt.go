package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jetjson"
)

func newFmtCmd() *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Reformat a JSON document",
		Long: `fmt parses a JSON document and re-emits it compactly, or indented with
--indent. Member order and the exact source form of numbers are preserved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			start := time.Now()

			ctx := jetjson.NewContext()
			defer ctx.Close()

			root, err := ctx.Parse(data)
			if err != nil {
				return err
			}

			slog.Debug("parsed document",
				"bytes", len(data),
				"took", time.Since(start))

			var out []byte

			if indent > 0 {
				out, err = appendIndented(nil, root, indent, 0)
			} else {
				sink := jetjson.NewBufferSink(len(data))

				err = root.WriteTo(jetjson.NewWriter(sink))
				out = sink.Bytes()
			}

			if err != nil {
				return err
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 0,
		"indentation spaces (0 emits compact output)")

	return cmd
}

// appendIndented walks the lazy views and emits indented JSON. Indentation
// lives here in the CLI; the engine's writer is compact by design.
func appendIndented(dst []byte, v *jetjson.Value, indent, depth int) ([]byte, error) {
	switch {
	case v.IsObject():
		if v.Size() == 0 {
			return append(dst, "{}"...), nil
		}

		dst = append(dst, '{', '\n')
		first := true

		var err error

		for k, member := range v.Fields() {
			if !first {
				dst = append(dst, ',', '\n')
			}

			first = false

			key, decErr := k.Decoded()
			if decErr != nil {
				return dst, decErr
			}

			dst = appendPad(dst, indent, depth+1)
			dst = jetjson.AppendQuoted(dst, key)
			dst = append(dst, ':', ' ')

			dst, err = appendIndented(dst, member, indent, depth+1)
			if err != nil {
				return dst, err
			}
		}

		dst = append(dst, '\n')
		dst = appendPad(dst, indent, depth)

		return append(dst, '}'), nil

	case v.IsArray():
		if v.Size() == 0 {
			return append(dst, "[]"...), nil
		}

		dst = append(dst, '[', '\n')
		first := true

		var err error

		for el := range v.Items() {
			if !first {
				dst = append(dst, ',', '\n')
			}

			first = false

			dst = appendPad(dst, indent, depth+1)

			dst, err = appendIndented(dst, el, indent, depth+1)
			if err != nil {
				return dst, err
			}
		}

		dst = append(dst, '\n')
		dst = appendPad(dst, indent, depth)

		return append(dst, ']'), nil

	case v.IsString():
		dec, err := v.Decoded()
		if err != nil {
			return dst, err
		}

		return jetjson.AppendQuoted(dst, dec), nil

	case v.IsNumber():
		return append(dst, v.Raw()...), nil

	case v.IsNull():
		return append(dst, "null"...), nil

	default:
		b, err := v.Bool()
		if err != nil {
			return dst, fmt.Errorf("unexpected node kind %v", v.Kind())
		}

		if b {
			return append(dst, "true"...), nil
		}

		return append(dst, "false"...), nil
	}
}

func appendPad(dst []byte, indent, depth int) []byte {
	for range indent * depth {
		dst = append(dst, ' ')
	}

	return dst
}
