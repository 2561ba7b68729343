package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// NewResizeCmd creates the resize cobra command
func NewResizeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resample an image to new dimensions",
		Long:  "Decodes an image, resamples it with the selected kernel and writes the result through the encoder named by the output extension.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			methodName, _ := cmd.Flags().GetString("method")
			parallel, _ := cmd.Flags().GetInt("parallel")
			quality, _ := cmd.Flags().GetInt("quality")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}

			method, err := torque.ParseMethod(methodName)
			if err != nil {
				return err
			}

			img, err := torque.LoadFile(in, registeredCodecs())
			if err != nil {
				return fmt.Errorf("load error: %w", err)
			}
			defer img.Release()

			resized, err := img.Resize(width, height, method, torque.WithParallelism(parallel))
			if err != nil {
				return fmt.Errorf("resize error: %w", err)
			}
			defer resized.Release()

			if out == "" {
				out = fmt.Sprintf("%s.png", uuid.NewString())
			}
			if err := resized.SaveFile(out, quality, registeredCodecs()); err != nil {
				return fmt.Errorf("save error: %w", err)
			}
			slog.InfoContext(ctx, "resized", "in", in, "out", out,
				"width", width, "height", height, "method", method.String())
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input image path")
	pf.StringP("out", "o", "", "output image path (defaults to <uuid>.png)")
	pf.IntP("width", "W", 0, "target width in pixels")
	pf.IntP("height", "H", 0, "target height in pixels")
	pf.String("method", "bilinear", "resampling method (nearest|bilinear|bicubic)")
	pf.Int("parallel", 1, "maximum concurrent row workers")
	pf.Int("quality", torque.DefaultQuality, "encoder quality in [1,100]")
	return cmd
}
