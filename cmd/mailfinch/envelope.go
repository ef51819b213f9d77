package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailfinch/client-go/internal/envelope"
)

func envelopeCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "envelope <id>",
		Short: "Render a PDF envelope preview for a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if a.cfg.FontPath == "" {
				return envelope.ErrNoFont
			}
			l, err := a.client.GetLetter(cmd.Context(), id)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("letter-%d-envelope.pdf", id)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := envelope.Render(f, l, a.cfg.FontPath); err != nil {
				f.Close()
				os.Remove(outPath)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info().Str("path", outPath).Msg("envelope written")
			return nil
		},
	}
	cmd.Flags().StringVar(&a.cfg.FontPath, "font", a.cfg.FontPath, "TTF font file")
	cmd.Flags().StringVar(&outPath, "out", "", "output PDF path (default: letter-<id>-envelope.pdf)")
	return cmd
}
