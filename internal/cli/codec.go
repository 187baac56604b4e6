package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/violetpay-org/metastring"
	"github.com/violetpay-org/metastring/internal/codec"
	"github.com/violetpay-org/metastring/internal/config"
	"github.com/violetpay-org/metastring/internal/errors"
)

type codecOptions struct {
	specials specialFlags
	format   string
}

func (o *codecOptions) register(cmd *cobra.Command) {
	o.specials.register(cmd.Flags())
	cmd.Flags().StringVar(&o.format, "format", "", "Payload format: hex, base64 or cbor (default from config, hex)")
}

// resolve merges the flags over cfg.
func (o *codecOptions) resolve(cmd *cobra.Command, cfg *config.Config) (s1, s2 rune, format string, err error) {
	first, second := cfg.Runes()
	s1, s2 = o.specials.resolve(cmd.Flags(), first, second)
	format = cfg.Output.Format
	if o.format != "" {
		format = o.format
	}
	if !slices.Contains(config.Formats, format) {
		return 0, 0, "", errors.InvalidFlag("format", fmt.Sprintf("unknown format %q", format))
	}
	return s1, s2, format, nil
}

// formatPayload renders ms for output. The cbor format carries the tag
// and special characters and is printed as hex.
func formatPayload(ms metastring.EncodedString, format string) (string, error) {
	switch format {
	case "base64":
		return base64.StdEncoding.EncodeToString(ms.Bytes()), nil
	case "cbor":
		data, err := ms.MarshalCBOR()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(data), nil
	default:
		return hex.EncodeToString(ms.Bytes()), nil
	}
}

// parsePayload reverses formatPayload for hex and base64.
func parsePayload(s, format string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		data []byte
		err  error
	)
	if format == "base64" {
		data, err = base64.StdEncoding.DecodeString(s)
	} else {
		data, err = hex.DecodeString(s)
	}
	if err != nil {
		return nil, errors.InvalidPayload(format, err)
	}
	return data, nil
}

type encodeOptions struct {
	codecOptions
	as encodingValue
}

// NewEncodeCmd creates the encode command.
func NewEncodeCmd(root *rootOptions) *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Pack identifiers",
		Long: `Packs each identifier and prints its encoding and payload.

Without --as only lower_special output is produced, and identifiers the
selector assigns to another encoding are rejected. --as packs with the
named encoding instead.`,
		Example: `  metastr encode user_id
  metastr encode --as first_to_lower_special Hello
  metastr encode --format cbor --special1 '$' field$name`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, root, opts, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().Var(&opts.as, "as", "Pack with this encoding instead of selecting one")

	return cmd
}

func runEncode(cmd *cobra.Command, root *rootOptions, opts *encodeOptions, args []string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	s1, s2, format, err := opts.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	logger := root.log()
	enc := metastring.NewEncoder(s1, s2)
	out := cmd.OutOrStdout()
	for _, text := range args {
		logger.Debug("selected encoding", "text", text, "encoding", enc.ComputeEncoding(text))

		var ms metastring.EncodedString
		if opts.as.set {
			ms, err = enc.EncodeAs(text, opts.as.enc)
		} else {
			ms, err = enc.Encode(text)
		}
		if err != nil {
			return errors.CodecFailed("encode", text, err)
		}

		payload, err := formatPayload(ms, format)
		if err != nil {
			return errors.CodecFailed("encode", text, err)
		}
		fmt.Fprintf(out, "%s %s\n", info(ms.Encoding()), payload)
	}
	return nil
}

type decodeOptions struct {
	codecOptions
	encoding encodingValue
}

// NewDecodeCmd creates the decode command.
func NewDecodeCmd(root *rootOptions) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode PAYLOAD...",
		Short: "Unpack payloads",
		Long: `Decodes hex or base64 payloads packed with --encoding.

With --format cbor each payload is a CBOR frame printed by
"metastr encode --format cbor". The frame carries its own encoding and
special characters, so --encoding and the special flags are ignored.`,
		Example: `  metastr decode --encoding lower_special 52448ed030
  metastr decode --format cbor 8401182e185f428020`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, root, opts, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().Var(&opts.encoding, "encoding", "Encoding the payload was packed with")

	return cmd
}

func runDecode(cmd *cobra.Command, root *rootOptions, opts *decodeOptions, args []string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	s1, s2, format, err := opts.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	if format != "cbor" && !opts.encoding.set {
		return errors.InvalidFlag("encoding", "required unless --format cbor")
	}

	dec := metastring.NewDecoder(s1, s2)
	out := cmd.OutOrStdout()
	for _, payload := range args {
		if format == "cbor" {
			data, err := parsePayload(payload, "hex")
			if err != nil {
				return err
			}
			var ms metastring.EncodedString
			if err := ms.UnmarshalCBOR(data); err != nil {
				return errors.CodecFailed("decode", payload, err)
			}
			if diag, err := codec.Diagnose(data); err == nil {
				root.log().Debug("decoded frame", "cbor", diag, "encoding", ms.Encoding())
			}
			fmt.Fprintln(out, ms.Text())
			continue
		}

		data, err := parsePayload(payload, format)
		if err != nil {
			return err
		}
		text, err := dec.Decode(data, opts.encoding.enc)
		if err != nil {
			return errors.CodecFailed("decode", payload, err)
		}
		fmt.Fprintln(out, text)
	}
	return nil
}
