package radix

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"baseconv/internal/platform/testkit"
)

func TestConvert_Literals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		from, to Radix
		want     string
	}{
		{"hex to binary", "FF", 16, 2, "11111111"},
		{"binary to hex", "1010", 2, 16, "A"},
		{"decimal to hex", "255", 10, 16, "FF"},
		{"negative hex to decimal", "-FF", 16, 10, "-255"},
		{"negative binary to decimal", "-1010", 2, 10, "-10"},
		{"octal to decimal", "777", 8, 10, "511"},
		{"lower case hex", "ff", 16, 10, "255"},
		{"mixed case hex", "dEaDbEeF", 16, 16, "DEADBEEF"},
		{"surrounding whitespace", "  \t42\n", 10, 2, "101010"},
		{"leading zeros dropped", "000123", 10, 10, "123"},
		{"zero", "0", 2, 16, "0"},
		{"negative zero", "-0", 16, 2, "0"},
		{"negative zeros", "-000", 10, 8, "0"},
		{"same base identity", "1234567890", 10, 10, "1234567890"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Convert(tc.in, tc.from, tc.to)
			if err != nil {
				t.Fatalf("Convert(%q, %d, %d) error: %v", tc.in, tc.from, tc.to, err)
			}
			if got != tc.want {
				t.Fatalf("Convert(%q, %d, %d) = %q, want %q", tc.in, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		from, to Radix
		kind     Kind
		sentinel error
		role     string
		char     rune
		pos      int
	}{
		{name: "empty", in: "", from: 10, to: 2, kind: KindEmptyInput, sentinel: ErrEmptyInput},
		{name: "whitespace only", in: "   \t", from: 10, to: 2, kind: KindEmptyInput, sentinel: ErrEmptyInput},
		{name: "lone minus", in: "-", from: 16, to: 2, kind: KindEmptyInput, sentinel: ErrEmptyInput},
		{name: "minus then spaces", in: "  -  ", from: 16, to: 2, kind: KindEmptyInput, sentinel: ErrEmptyInput},
		{name: "G is not a digit", in: "G1", from: 16, to: 2, kind: KindInvalidCharacter, sentinel: ErrInvalidCharacter, char: 'G', pos: 0},
		{name: "inner space", in: "1 0", from: 10, to: 2, kind: KindInvalidCharacter, sentinel: ErrInvalidCharacter, char: ' ', pos: 1},
		{name: "double minus", in: "--1", from: 10, to: 2, kind: KindInvalidCharacter, sentinel: ErrInvalidCharacter, char: '-', pos: 0},
		{name: "plus sign", in: "+1", from: 10, to: 2, kind: KindInvalidCharacter, sentinel: ErrInvalidCharacter, char: '+', pos: 0},
		{name: "prefix 0x", in: "0xFF", from: 16, to: 2, kind: KindInvalidCharacter, sentinel: ErrInvalidCharacter, char: 'x', pos: 1},
		{name: "8 in binary", in: "8", from: 2, to: 10, kind: KindDigitOutOfRange, sentinel: ErrDigitOutOfRange, char: '8', pos: 0},
		{name: "2 in binary", in: "1012", from: 2, to: 10, kind: KindDigitOutOfRange, sentinel: ErrDigitOutOfRange, char: '2', pos: 3},
		{name: "9 in octal", in: "-79", from: 8, to: 10, kind: KindDigitOutOfRange, sentinel: ErrDigitOutOfRange, char: '9', pos: 1},
		{name: "A in decimal", in: "1A", from: 10, to: 16, kind: KindDigitOutOfRange, sentinel: ErrDigitOutOfRange, char: 'A', pos: 1},
		{name: "from base 3", in: "1", from: 3, to: 10, kind: KindUnsupportedBase, sentinel: ErrUnsupportedBase, role: "from"},
		{name: "to base 36", in: "1", from: 10, to: 36, kind: KindUnsupportedBase, sentinel: ErrUnsupportedBase, role: "to"},
		{name: "base beats bad input", in: "", from: 0, to: 10, kind: KindUnsupportedBase, sentinel: ErrUnsupportedBase, role: "from"},
		{name: "to checked before input", in: "zz", from: 16, to: 1, kind: KindUnsupportedBase, sentinel: ErrUnsupportedBase, role: "to"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := Convert(tc.in, tc.from, tc.to)
			if err == nil {
				t.Fatalf("Convert(%q) = %q, want error", tc.in, out)
			}
			if out != "" {
				t.Fatalf("partial output %q on error", out)
			}
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tc.sentinel)
			}
			k, ok := KindOf(err)
			if !ok || k != tc.kind {
				t.Fatalf("KindOf = %v,%v want %v", k, ok, tc.kind)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("not a *Error: %T", err)
			}
			if e.Role != tc.role {
				t.Fatalf("Role = %q, want %q", e.Role, tc.role)
			}
			if tc.kind == KindInvalidCharacter || tc.kind == KindDigitOutOfRange {
				if e.Char != tc.char || e.Pos != tc.pos {
					t.Fatalf("Char,Pos = %q,%d want %q,%d", e.Char, e.Pos, tc.char, tc.pos)
				}
			}
		})
	}
}

func TestErrors_KindsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrUnsupportedBase, ErrEmptyInput, ErrInvalidCharacter, ErrDigitOutOfRange}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if got := errors.Is(a, b); got != (i == j) {
				t.Fatalf("errors.Is(%v, %v) = %v", a, b, got)
			}
		}
	}
	if _, ok := KindOf(errors.New("other")); ok {
		t.Fatalf("KindOf on foreign error should report !ok")
	}
	if _, ok := KindOf(nil); ok {
		t.Fatalf("KindOf(nil) should report !ok")
	}
}

func TestError_Messages(t *testing.T) {
	t.Parallel()

	_, err := Convert("12", 2, 10)
	testkit.MustContain(t, err.Error(), `digit '2' at position 1 is out of range for base 2`)

	_, err = Convert("1", 10, 5)
	testkit.MustContain(t, err.Error(), "unsupported to base 5")

	_, err = ParseRadix("trinary")
	testkit.MustContain(t, err.Error(), `"trinary"`)

	if got := KindEmptyInput.String(); got != "empty_input" {
		t.Fatalf("KindEmptyInput.String() = %q", got)
	}
}

func TestRoundTrip_Canonical(t *testing.T) {
	t.Parallel()

	canon := map[Radix][]string{
		Binary:      {"0", "1", "10", "-1", "-101101", "1111111111111111111111111111111111111111111111111111111111111111"},
		Octal:       {"0", "7", "10", "-777", "1234567012345670"},
		Decimal:     {"0", "9", "-10", "18446744073709551616", "-340282366920938463463374607431768211457"},
		Hexadecimal: {"0", "F", "-10", "DEADBEEF", "-FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF1"},
	}
	for base, inputs := range canon {
		for _, s := range inputs {
			n, err := Decode(s, base)
			if err != nil {
				t.Fatalf("Decode(%q, %d): %v", s, base, err)
			}
			got, err := Encode(n, base)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != s {
				t.Fatalf("round trip base %d: %q -> %q", base, s, got)
			}
		}
	}
}

func TestCrossBase_Consistency(t *testing.T) {
	t.Parallel()

	big1, _ := new(big.Int).SetString("-98765432109876543210987654321", 10)
	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(-1), big.NewInt(255), big.NewInt(-4096), big1}

	for _, v := range values {
		n := FromBigInt(v)
		for _, b1 := range Supported() {
			src, err := Encode(n, b1)
			if err != nil {
				t.Fatal(err)
			}
			for _, b2 := range Supported() {
				want, _ := Encode(n, b2)
				got, err := Convert(src, b1, b2)
				if err != nil {
					t.Fatalf("Convert(%q, %d, %d): %v", src, b1, b2, err)
				}
				if got != want {
					t.Fatalf("Convert(%q, %d, %d) = %q, want %q", src, b1, b2, got, want)
				}
				if want2 := strings.ToUpper(v.Text(int(b2))); got != want2 {
					t.Fatalf("Convert(%q, %d, %d) = %q, big.Int says %q", src, b1, b2, got, want2)
				}
			}
		}
	}
}

func TestConvert_Beyond64Bits(t *testing.T) {
	t.Parallel()

	// 2^64 and 2^128 - 1
	got, err := Convert("1"+strings.Repeat("0", 64), 2, 10)
	if err != nil || got != "18446744073709551616" {
		t.Fatalf("2^64 = %q, %v", got, err)
	}
	got, err = Convert(strings.Repeat("F", 32), 16, 10)
	if err != nil || got != "340282366920938463463374607431768211455" {
		t.Fatalf("2^128-1 = %q, %v", got, err)
	}
	got, err = Convert("340282366920938463463374607431768211455", 10, 2)
	if err != nil || got != strings.Repeat("1", 128) {
		t.Fatalf("back to binary = %q, %v", got, err)
	}
}

func TestConvertAll(t *testing.T) {
	t.Parallel()

	got, err := ConvertAll(" 255 ", Decimal)
	if err != nil {
		t.Fatal(err)
	}
	want := map[Radix]string{2: "11111111", 8: "377", 10: "255", 16: "FF"}
	if len(got) != len(want) {
		t.Fatalf("len = %d want %d", len(got), len(want))
	}
	for b, s := range want {
		if got[b] != s {
			t.Fatalf("base %d = %q want %q", b, got[b], s)
		}
	}

	if _, err := ConvertAll("1", 7); !errors.Is(err, ErrUnsupportedBase) {
		t.Fatalf("want unsupported base, got %v", err)
	}
	if _, err := ConvertAll("", 2); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("want empty input, got %v", err)
	}
}

func TestDigitCodec(t *testing.T) {
	t.Parallel()

	for v := 0; v < 16; v++ {
		c := CharOf(v)
		got, err := ValueOf(rune(c))
		if err != nil || got != v {
			t.Fatalf("ValueOf(CharOf(%d)) = %d, %v", v, got, err)
		}
		lower, err := ValueOf(rune(strings.ToLower(string(c))[0]))
		if err != nil || lower != v {
			t.Fatalf("lower case %q = %d, %v", c, lower, err)
		}
	}
	for _, c := range []rune{'G', 'g', ' ', '-', '.', 'é', '٣'} {
		if _, err := ValueOf(c); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("ValueOf(%q) = %v, want invalid character", c, err)
		}
	}
	testkit.MustPanic(t, func() { CharOf(16) })
	testkit.MustPanic(t, func() { CharOf(-1) })
	testkit.MustNotPanic(t, func() { CharOf(15) })
}

func TestEncode_ZeroIgnoresSign(t *testing.T) {
	t.Parallel()

	for _, n := range []SignedNumber{
		{Negative: true, Magnitude: new(big.Int)},
		{Negative: true},
		{},
	} {
		got, err := Encode(n, Hexadecimal)
		if err != nil || got != "0" {
			t.Fatalf("Encode(%+v) = %q, %v", n, got, err)
		}
	}
	if _, err := Encode(FromBigInt(big.NewInt(1)), 12); !errors.Is(err, ErrUnsupportedBase) {
		t.Fatalf("want unsupported base, got %v", err)
	}
}

func TestEncode_SignComesFromFlagOnly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    SignedNumber
		base Radix
		want string
	}{
		{"negative magnitude, positive flag", SignedNumber{Magnitude: big.NewInt(-255)}, Hexadecimal, "FF"},
		{"negative magnitude, negative flag", SignedNumber{Negative: true, Magnitude: big.NewInt(-255)}, Hexadecimal, "-FF"},
		{"negative magnitude in binary", SignedNumber{Magnitude: big.NewInt(-5)}, Binary, "101"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.n, c.base)
			if err != nil || got != c.want {
				t.Fatalf("Encode(%+v, %d) = %q, %v; want %q", c.n, c.base, got, err, c.want)
			}
		})
	}

	n := SignedNumber{Magnitude: big.NewInt(-9)}
	if _, err := Encode(n, Decimal); err != nil || n.Magnitude.Int64() != -9 {
		t.Fatalf("Encode must not mutate the magnitude: %s, %v", n.Magnitude, err)
	}
	if got := n.BigInt().Int64(); got != 9 {
		t.Fatalf("BigInt() = %d, want 9", got)
	}
}

func TestDecode_MultibytePosition(t *testing.T) {
	t.Parallel()

	_, err := Decode(" -12\u00e9\u00e9", Decimal)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidCharacter {
		t.Fatalf("err = %v", err)
	}
	if e.Char != '\u00e9' || e.Pos != 2 {
		t.Fatalf("char=%q pos=%d, want 'é' at 2", e.Char, e.Pos)
	}
}

func TestDecode_NegativeZeroIsNotNegative(t *testing.T) {
	t.Parallel()

	n, err := Decode("-0000", Octal)
	if err != nil {
		t.Fatal(err)
	}
	if n.Negative || n.Sign() != 0 {
		t.Fatalf("got %+v, want non-negative zero", n)
	}
}

func TestSignedNumber_BigInt(t *testing.T) {
	t.Parallel()

	x := big.NewInt(-42)
	n := FromBigInt(x)
	if !n.Negative || n.Magnitude.Int64() != 42 || n.Sign() != -1 {
		t.Fatalf("FromBigInt(-42) = %+v", n)
	}
	back := n.BigInt()
	if back.Cmp(x) != 0 {
		t.Fatalf("BigInt() = %s", back)
	}
	back.SetInt64(7)
	if n.Magnitude.Int64() != 42 {
		t.Fatalf("BigInt must return a copy")
	}
	if FromBigInt(nil).Sign() != 0 {
		t.Fatalf("FromBigInt(nil) should be zero")
	}
}

func TestParseRadix(t *testing.T) {
	t.Parallel()

	ok := map[string]Radix{
		"2": Binary, "bin": Binary, "Binary": Binary,
		"8": Octal, "oct": Octal, " OCTAL ": Octal,
		"10": Decimal, "dec": Decimal, "decimal": Decimal,
		"16": Hexadecimal, "HEX": Hexadecimal, "hexadecimal": Hexadecimal,
	}
	for in, want := range ok {
		got, err := ParseRadix(in)
		if err != nil || got != want {
			t.Fatalf("ParseRadix(%q) = %d, %v want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "3", "36", "0x10", "base16", "-2"} {
		if _, err := ParseRadix(in); !errors.Is(err, ErrUnsupportedBase) {
			t.Fatalf("ParseRadix(%q) = %v, want unsupported base", in, err)
		}
	}
}

func TestRadix_Names(t *testing.T) {
	t.Parallel()

	want := []struct {
		r    Radix
		name string
		str  string
	}{
		{Binary, "binary", "2"},
		{Octal, "octal", "8"},
		{Decimal, "decimal", "10"},
		{Hexadecimal, "hexadecimal", "16"},
	}
	got := Supported()
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v", got)
	}
	for i, w := range want {
		if got[i] != w.r || w.r.Name() != w.name || w.r.String() != w.str || !w.r.Valid() {
			t.Fatalf("base %d: name=%q str=%q", w.r, w.r.Name(), w.r.String())
		}
	}
	got[0] = 99
	if Supported()[0] != Binary {
		t.Fatalf("Supported must return a copy")
	}
	if Radix(3).Valid() || Radix(3).Name() != "" {
		t.Fatalf("base 3 must be invalid")
	}
}
