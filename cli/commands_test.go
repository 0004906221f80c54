package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	RawOutput = true
	t.Cleanup(func() { RawOutput = false })

	root := NewParseCmd()
	if args[0] == "dtmf" {
		root = NewDTMFCmd()
		args = args[1:]
	}

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.Nil(t, root.Execute(), "command should not fail to execute")
	return out.String(), errOut.String()
}

func TestParseCmd(t *testing.T) {
	out, errOut := execute(t, "(555) 123-4567")
	assert.Empty(t, errOut)

	var view addressView
	require.Nil(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "(555) 123-4567", view.Address)
	assert.Equal(t, "4BitDTMF", view.DigitMode)
	assert.Equal(t, "NotDataNetwork", view.NumberMode)
	assert.Equal(t, 10, view.NumberOfDigits)
	assert.Equal(t, "05050501020304050607", view.EncodedHex)
	assert.Equal(t, "5551234567", view.DecodedText)
}

func TestParseCmdInternational(t *testing.T) {
	out, errOut := execute(t, "+14155551234")
	assert.Empty(t, errOut)

	var view addressView
	require.Nil(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "8BitChar", view.DigitMode)
	assert.Equal(t, "International/IP", view.TypeOfNumber)
	assert.Equal(t, "ISDN/Telephony", view.NumberingPlan)
	assert.Equal(t, "14155551234", view.DecodedText)
}

func TestParseCmdUnencodable(t *testing.T) {
	_, errOut := execute(t, "пример")
	assert.Contains(t, errOut, "error")
}

func TestParseCmdMultipleAddresses(t *testing.T) {
	out, _ := execute(t, "5551234", "user@example.com")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second addressView
	require.Nil(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Nil(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "4BitDTMF", first.DigitMode)
	assert.Equal(t, "National/Email", second.TypeOfNumber)
}

func TestDTMFEncodeCmd(t *testing.T) {
	out, errOut := execute(t, "dtmf", "encode", "123*0#")
	assert.Empty(t, errOut)

	var view dtmfView
	require.Nil(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "123*0#", view.Digits)
	assert.Equal(t, "0102030B0A0C", view.CodesHex)
	assert.Equal(t, "123BAC", view.PackedHex)
}

func TestDTMFDecodeCmd(t *testing.T) {
	out, errOut := execute(t, "dtmf", "decode", "0102030B0A0C")
	assert.Empty(t, errOut)

	var view dtmfView
	require.Nil(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "123*0#", view.Digits)
}

func TestDTMFEncodeCmdRejectsNonDialable(t *testing.T) {
	_, errOut := execute(t, "dtmf", "encode", "555a123")
	assert.Contains(t, errOut, "error")
}
