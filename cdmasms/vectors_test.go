package cdmasms

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type parseVector struct {
	Name          string `yaml:"name"`
	Address       string `yaml:"address"`
	DigitMode     string `yaml:"digit_mode"`
	NumberMode    string `yaml:"number_mode"`
	TypeOfNumber  string `yaml:"type_of_number"`
	NumberingPlan string `yaml:"numbering_plan"`
	EncodedHex    string `yaml:"encoded_hex"`
	Error         string `yaml:"error"`
}

type parseVectorFile struct {
	Vectors []parseVector `yaml:"vectors"`
}

func TestParseVectors(t *testing.T) {
	w := expect.WrapT(t)

	data := w.ShouldHaveResult(os.ReadFile("testdata/parse_vectors.yaml")).([]byte)
	var file parseVectorFile
	w.StopOnMismatch().ShouldSucceed(yaml.Unmarshal(data, &file))
	w.StopOnMismatch().ShouldBeTrue(len(file.Vectors) > 0)

	for i, v := range file.Vectors {
		v := v
		t.Run(fmt.Sprintf("%02d_%s", i, v.Name), func(t *testing.T) {
			w := expect.WrapT(t)

			addr, err := Parse(v.Address)
			if v.Error != "" {
				w.As(v.Address).ShouldFail(err)
				switch v.Error {
				case "unencodable":
					w.ShouldBeEqual(errors.Cause(err), ErrUnencodable)
				default:
					t.Fatalf("unknown expected error %q", v.Error)
				}
				return
			}
			w.As(v.Address).StopOnMismatch().ShouldSucceed(err)

			w.ShouldBeEqual(addr.DigitMode().String(), v.DigitMode)
			w.ShouldBeEqual(addr.NumberMode().String(), v.NumberMode)
			w.ShouldBeEqual(addr.TypeOfNumber().String(), v.TypeOfNumber)
			w.ShouldBeEqual(addr.NumberingPlan().String(), v.NumberingPlan)

			encoded := strings.ToUpper(hex.EncodeToString(addr.EncodedDigits()))
			w.ShouldBeEqual(encoded, v.EncodedHex)
			w.ShouldBeEqual(addr.NumberOfDigits(), len(addr.EncodedDigits()))
		})
	}
}
