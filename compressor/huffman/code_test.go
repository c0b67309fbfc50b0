package huffman

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: MakeCode(0, 0), expect: `""`},
		{code: MakeCode(1, 0), expect: `"0"`},
		{code: MakeCode(2, 1), expect: `"01"`},
		{code: MakeCode(5, 0x13), expect: `"10011"`},
	}
	for _, row := range testData {
		if actual := row.code.String(); actual != row.expect {
			t.Errorf("wrong string: expect %s, actual %s", row.expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	code := MakeCode(4, 0xb) // "1011"
	if !code.HasPrefix(MakeCode(2, 0x2)) {
		t.Errorf("%s should have prefix \"10\"", code)
	}
	if code.HasPrefix(MakeCode(2, 0x3)) {
		t.Errorf("%s should not have prefix \"11\"", code)
	}
	if code.HasPrefix(MakeCode(5, 0x16)) {
		t.Errorf("%s should not have a longer prefix", code)
	}
}

func TestBuildCodeTable_Dump(t *testing.T) {
	codes := BuildCodeTable(BuildTree(tableOf("abb")))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tEncode(97) = \"00\"\n",
		"\tEncode(98) = \"1\"\n",
		"\tEncode(256) = \"01\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		codes := BuildCodeTable(BuildTree(randomTable(rng)))

		var present []Symbol
		for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
			if codes[symbol].Size != 0 {
				present = append(present, symbol)
			}
		}
		if codes[PseudoEOF].Size == 0 {
			t.Fatalf("table %d: PseudoEOF has no code", i)
		}
		for _, a := range present {
			for _, b := range present {
				if a != b && codes[a].HasPrefix(codes[b]) {
					t.Fatalf("table %d: code %s of %d has prefix %s of %d", i, codes[a], a, codes[b], b)
				}
			}
		}
	}
}
