package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// NewInfoCmd creates the info cobra command
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show image dimensions and pixel format",
		Long:  "Decodes an image header-first through the codec registry and prints its dimensions, pixel format and colour class.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			img, err := torque.LoadFile(filePath, registeredCodecs())
			if err != nil {
				return fmt.Errorf("load error: %w", err)
			}
			defer img.Release()

			type report struct {
				Width  int    `json:"width"`
				Height int    `json:"height"`
				Pixels int    `json:"pixels"`
				Format string `json:"format"`
				Color  bool   `json:"color"`
			}
			rep := report{
				Width:  img.Width(),
				Height: img.Height(),
				Pixels: img.Size(),
				Format: img.PixelFormat().String(),
				Color:  img.IsColor(),
			}

			switch format, _ := cmd.Flags().GetString("format"); format {
			case "text":
				fmt.Printf("Width: %d\n", rep.Width)
				fmt.Printf("Height: %d\n", rep.Height)
				fmt.Printf("Pixels: %d\n", rep.Pixels)
				fmt.Printf("Format: %s\n", rep.Format)
				fmt.Printf("Color: %v\n", rep.Color)
			default:
				j, _ := json.Marshal(rep)
				os.Stdout.Write(j)
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "image file path to inspect")
	pf.String("format", "json", "output format (text|json)")
	return cmd
}
