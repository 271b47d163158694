package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velldocs/vellum/internal/config"
	"github.com/velldocs/vellum/internal/embeddings"
)

type modeOutput struct {
	Mode       string `json:"mode"`
	Credential string `json:"credential"`
	Model      string `json:"model,omitempty"`
	Dimensions int    `json:"dimensions"`
}

func newModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Show the resolved embedding mode and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			out := modeOutput{
				Mode:       string(cfg.Mode),
				Credential: credentialStatus(cfg.OpenAIAPIKey),
				Dimensions: cfg.Dimension,
			}
			if cfg.Mode == embeddings.ModeProvider {
				out.Model = cfg.OpenAIModel
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func credentialStatus(key string) string {
	switch strings.TrimSpace(key) {
	case "":
		return "absent"
	case embeddings.Placeholder:
		return "placeholder"
	default:
		return "present"
	}
}
