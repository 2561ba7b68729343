package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// NewConvertCmd creates the convert cobra command
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode an image in another format",
		Long:  "Decodes an image and writes it back through the encoder named by the output extension (or --to when --out is omitted).",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			to, _ := cmd.Flags().GetString("to")
			quality, _ := cmd.Flags().GetInt("quality")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}
			if out == "" {
				if to == "" {
					return fmt.Errorf("either --out or --to is required")
				}
				out = fmt.Sprintf("%s.%s", uuid.NewString(), to)
			}

			img, err := torque.LoadFile(in, registeredCodecs())
			if err != nil {
				return fmt.Errorf("load error: %w", err)
			}
			defer img.Release()

			if err := img.SaveFile(out, quality, registeredCodecs()); err != nil {
				return fmt.Errorf("save error: %w", err)
			}
			slog.InfoContext(ctx, "converted", "in", in, "out", out, "format", img.PixelFormat().String())
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input image path")
	pf.StringP("out", "o", "", "output image path (extension selects the encoder)")
	pf.String("to", "", "output extension when --out is omitted; the file is named by a fresh uuid")
	pf.Int("quality", torque.DefaultQuality, "encoder quality in [1,100]")
	return cmd
}
