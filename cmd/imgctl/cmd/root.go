package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imagetorque/imagetorque.go/pkg/codec/bmp"
	"github.com/imagetorque/imagetorque.go/pkg/codec/jpeg"
	"github.com/imagetorque/imagetorque.go/pkg/codec/png"
	"github.com/imagetorque/imagetorque.go/pkg/logging"
	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgctl",
		Short: "a CLI to inspect, convert and resize raster images",
		Long:  "imgctl decodes images through the torque codec registry and exposes the conversion and resampling engines on the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}
			out := os.Stdout
			if logFile != "" {
				slog.SetDefault(logging.Logger(logging.Rotating(logFile), true, level))
			} else {
				slog.SetDefault(logging.Logger(out, false, level))
			}

			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", err)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewInfoCmd(ctx),
		NewConvertCmd(ctx),
		NewResizeCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "Rotated log file path (logs to stdout when empty)")
	return cmd
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
	return cmd
}

// registeredCodecs is the detection order for every command.
func registeredCodecs() torque.Option {
	return torque.WithCodecs(png.New(), bmp.New(), jpeg.New())
}
