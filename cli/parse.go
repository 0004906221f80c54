package cli

import (
	"encoding/hex"
	"strings"

	"github.com/sms-sw-toolkit/cdmacode/cdmasms"
	"github.com/spf13/cobra"
)

type addressView struct {
	Address        string `json:"address"`
	DigitMode      string `json:"digit_mode"`
	NumberMode     string `json:"number_mode"`
	TypeOfNumber   string `json:"type_of_number"`
	NumberingPlan  string `json:"numbering_plan"`
	NumberOfDigits int    `json:"number_of_digits"`
	EncodedHex     string `json:"encoded_hex"`
	DecodedText    string `json:"decoded_text"`
}

// NewParseCmd returns the address classification command.
func NewParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <address>...",
		Short: "Classify and encode SMS addresses",
		Long: "Classify each address per the C.S0015-B rules and show its wire encoding\n" +
			"usage:\n" +
			"\tcdmacode parse \"+1 (415) 555-1234\" user@example.com 555-1234",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			for _, arg := range args {
				addr, err := cdmasms.Parse(arg)
				if err != nil {
					logErrorCmd(*cmd, err)
					continue
				}
				text, err := addr.DecodeText()
				if err != nil {
					logErrorCmd(*cmd, err)
					continue
				}

				logJSONCmd(*cmd, addressView{
					Address:        addr.DisplayAddress(),
					DigitMode:      addr.DigitMode().String(),
					NumberMode:     addr.NumberMode().String(),
					TypeOfNumber:   addr.TypeOfNumber().String(),
					NumberingPlan:  addr.NumberingPlan().String(),
					NumberOfDigits: addr.NumberOfDigits(),
					EncodedHex:     strings.ToUpper(hex.EncodeToString(addr.EncodedDigits())),
					DecodedText:    text,
				})
			}
		},
	}
}
