package main

import (
	"bufio"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/velldocs/vellum/internal/config"
	"github.com/velldocs/vellum/internal/embeddings"
)

const (
	stdinScannerInitialBuf = 64 * 1024
	stdinScannerMaxBuf     = 1024 * 1024
)

type embedOutput struct {
	Mode       string    `json:"mode"`
	Dimensions int       `json:"dimensions"`
	Vector     []float32 `json:"vector"`
}

func newEmbedCommand() *cobra.Command {
	var dimension int
	var pretty bool

	cmd := &cobra.Command{
		Use:   "embed [text]",
		Short: "Embed text from the argument, or one vector per line of stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dimension > 0 {
				cfg.Dimension = dimension
			}
			logger := newLogger(cfg.LogLevel)
			svc := newService(cfg, logger)

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}

			if len(args) == 1 {
				return writeEmbedding(cmd, enc, svc, args[0])
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, stdinScannerInitialBuf), stdinScannerMaxBuf)
			for scanner.Scan() {
				if err := writeEmbedding(cmd, enc, svc, scanner.Text()); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().IntVar(&dimension, "dimension", 0, "vector width (default 1536)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

// writeEmbedding emits one JSON object per input, or null for blank
// input, mirroring the library contract.
func writeEmbedding(cmd *cobra.Command, enc *json.Encoder, svc *embeddings.Service, text string) error {
	vec, ok := svc.Embed(cmd.Context(), text)
	if !ok {
		return enc.Encode(nil)
	}
	components := vec.Slice()
	return enc.Encode(embedOutput{
		Mode:       string(svc.Mode()),
		Dimensions: len(components),
		Vector:     components,
	})
}
