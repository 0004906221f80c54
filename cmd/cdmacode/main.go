// Package main contains the cdmacode CLI, a diagnostic tool for the CDMA
// SMS address codec.
package main

import (
	"log"
	"os"

	"github.com/caarlos0/env/v7"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/sms-sw-toolkit/cdmacode/cdmasms"
	"github.com/sms-sw-toolkit/cdmacode/cli"
	"github.com/sms-sw-toolkit/cdmacode/logger"
	"github.com/spf13/cobra"
)

type config struct {
	LogLevel  string `env:"CDMACODE_LOG_LEVEL"  envDefault:"error"`
	RawOutput bool   `env:"CDMACODE_RAW_OUTPUT" envDefault:"false"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err)
	}

	l, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger : %s", err)
	}
	cdmasms.SetLogger(l)

	rootCmd := &cobra.Command{
		Use:   "cdmacode",
		Short: "CDMA SMS address field codec",
		Long: "cdmacode classifies and encodes CDMA SMS address fields per " +
			"3GPP2 C.S0015-B",
	}

	rootCmd.AddCommand(cli.NewParseCmd())
	rootCmd.AddCommand(cli.NewDTMFCmd())

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cfg.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute command : %s", err)
	}
}
