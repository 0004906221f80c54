package cli

import (
	"encoding/hex"
	"strings"

	"github.com/sms-sw-toolkit/cdmacode/dtmf"
	"github.com/spf13/cobra"
)

type dtmfView struct {
	Digits    string `json:"digits"`
	CodesHex  string `json:"codes_hex"`
	PackedHex string `json:"packed_hex"`
}

func dtmfViewOf(cmd cobra.Command, codes []byte) (dtmfView, bool) {
	digits, err := dtmf.Decode(codes)
	if err != nil {
		logErrorCmd(cmd, err)
		return dtmfView{}, false
	}
	packed, err := dtmf.Pack(codes)
	if err != nil {
		logErrorCmd(cmd, err)
		return dtmfView{}, false
	}
	return dtmfView{
		Digits:    digits,
		CodesHex:  strings.ToUpper(hex.EncodeToString(codes)),
		PackedHex: strings.ToUpper(hex.EncodeToString(packed)),
	}, true
}

// NewDTMFCmd returns the DTMF symbol code commands.
func NewDTMFCmd() *cobra.Command {
	cmds := []cobra.Command{
		{
			Use:   "encode <digits>",
			Short: "Encode dialable digits to DTMF symbol codes",
			Long: "Encode a string of dialable symbols (0-9 * #) to 4-bit DTMF codes\n" +
				"usage:\n" +
				"\tcdmacode dtmf encode \"123*0#\"",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 {
					logUsageCmd(*cmd, cmd.Use)
					return
				}
				codes, err := dtmf.Encode(args[0])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				if v, ok := dtmfViewOf(*cmd, codes); ok {
					logJSONCmd(*cmd, v)
				}
			},
		},
		{
			Use:   "decode <hex>",
			Short: "Decode DTMF symbol codes back to digits",
			Long: "Decode hex-encoded 4-bit DTMF codes, one code per byte, to dialable symbols\n" +
				"usage:\n" +
				"\tcdmacode dtmf decode 0102030B0A0C",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 {
					logUsageCmd(*cmd, cmd.Use)
					return
				}
				codes, err := hex.DecodeString(args[0])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				if v, ok := dtmfViewOf(*cmd, codes); ok {
					logJSONCmd(*cmd, v)
				}
			},
		},
	}

	cmd := cobra.Command{
		Use:   "dtmf [encode | decode]",
		Short: "DTMF symbol codes",
		Long:  "Encode and decode the 4-bit DTMF digit codes used by dialable addresses",
	}
	for i := range cmds {
		cmd.AddCommand(&cmds[i])
	}
	return &cmd
}
