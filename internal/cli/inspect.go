package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/violetpay-org/metastring"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd(root *rootOptions) *cobra.Command {
	specials := &specialFlags{}

	cmd := &cobra.Command{
		Use:   "inspect TEXT...",
		Short: "Show statistics and the selected encoding",
		Long: `Prints the character statistics of each identifier, the encoding the
selector picks, and the packed size at 5, 6 and 8 bits per character.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			first, second := cfg.Runes()
			s1, s2 := specials.resolve(cmd.Flags(), first, second)

			enc := metastring.NewEncoder(s1, s2)
			for _, text := range args {
				inspect(cmd.OutOrStdout(), enc, text, s1, s2)
			}
			return nil
		},
	}

	specials.register(cmd.Flags())

	return cmd
}

func inspect(w io.Writer, enc *metastring.Encoder, text string, s1, s2 rune) {
	stats := metastring.ComputeStatistics(text, s1, s2)
	selected := metastring.SelectEncoding(stats, text)

	fmt.Fprintf(w, "%s\n", info(fmt.Sprintf("%q", text)))
	printInfo(w, "length", stats.Length)
	printInfo(w, "digits", stats.DigitCount)
	printInfo(w, "upper", stats.UpperCount)
	printInfo(w, "lower_special alphabet", stats.CanLowerSpecialEncoded)
	printInfo(w, "lower_upper_digit_special alphabet", stats.CanLowerUpperDigitSpecialEncoded)
	printInfo(w, "selected", selected)
	printInfo(w, "utf8 bytes", len(text))
	printInfo(w, "5-bit bytes", metastring.PackedLen(stats.Length, 5))
	printInfo(w, "6-bit bytes", metastring.PackedLen(stats.Length, 6))

	ms, err := enc.EncodeAs(text, selected)
	if err != nil {
		printInfo(w, "packed", err)
		return
	}
	printInfo(w, "packed", hex.EncodeToString(ms.Bytes()))
	printInfo(w, "slack", ms.Slack())
	if selected != metastring.LowerSpecial {
		printInfo(w, "encode", "rejected, "+selected.String()+" output needs --as")
	}
}
