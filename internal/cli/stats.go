package cli

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/violetpay-org/metastring"
	"github.com/violetpay-org/metastring/internal/baseline"
	"github.com/violetpay-org/metastring/internal/errors"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd(root *rootOptions) *cobra.Command {
	specials := &specialFlags{}

	cmd := &cobra.Command{
		Use:   "stats [FILE]",
		Short: "Survey a corpus of identifiers",
		Long: `Reads one identifier per line from FILE, or stdin when omitted, and
reports how the corpus encodes. zstd and lz4 sizes of the same corpus are
printed for comparison.`,
		Example: `  metastr stats fields.txt
  cut -f1 schema.tsv | metastr stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			first, second := cfg.Runes()
			s1, s2 := specials.resolve(cmd.Flags(), first, second)

			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(errors.ErrInvalidInput, "failed to open corpus", "", err)
				}
				defer f.Close()
				in, name = f, args[0]
			}

			inputs, err := readLines(in)
			if err != nil {
				return errors.Wrap(errors.ErrInvalidInput, "failed to read "+name, "", err)
			}
			root.log().Debug("read corpus", "source", name, "inputs", len(inputs))

			report := metastring.Survey(inputs, s1, s2)
			sizes, err := baseline.Measure(inputs)
			if err != nil {
				return err
			}
			root.log().Debug("survey complete", "accepted", report.Accepted(), "raw_bytes", report.RawBytes)

			printReport(cmd.OutOrStdout(), report, sizes)
			return nil
		},
	}

	specials.register(cmd.Flags())

	return cmd
}

// readLines returns the lines of r without their terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*metastring.MaxLength+16)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func printReport(w io.Writer, report metastring.Report, sizes baseline.Sizes) {
	fmt.Fprintf(w, "%s\n", info("selection"))
	printInfo(w, "inputs", report.Inputs)
	for enc, n := range report.Selected {
		if n > 0 {
			printInfo(w, metastring.Encoding(enc).String(), n)
		}
	}

	fmt.Fprintf(w, "%s\n", info("encode"))
	printInfo(w, "accepted", report.Accepted())
	for _, code := range slices.Sorted(maps.Keys(report.Rejected)) {
		printInfo(w, "rejected "+string(code), report.Rejected[code])
	}
	printInfo(w, "accepted bytes", fmt.Sprintf("%d -> %d (%.3f)", report.AcceptedBytes, report.PackedBytes, report.Ratio()))
	printInfo(w, "all encodings", fmt.Sprintf("%d -> %d (%.3f)", report.RawBytes, report.FullMatrixBytes, report.FullMatrixRatio()))

	fmt.Fprintf(w, "%s\n", info("baselines"))
	printInfo(w, "raw", sizes.Raw)
	printInfo(w, "lz4", sizes.LZ4)
	printInfo(w, "zstd", sizes.Zstd)
}
