package radix

// Convert decodes input in from and re-encodes it in to
// Both bases are checked before the input is looked at
func Convert(input string, from, to Radix) (string, error) {
	if err := checkBase(from, "from"); err != nil {
		return "", err
	}
	if err := checkBase(to, "to"); err != nil {
		return "", err
	}
	n, err := Decode(input, from)
	if err != nil {
		return "", err
	}
	return Encode(n, to)
}

// ConvertAll decodes input once and encodes it in every supported base
func ConvertAll(input string, from Radix) (map[Radix]string, error) {
	if err := checkBase(from, "from"); err != nil {
		return nil, err
	}
	n, err := Decode(input, from)
	if err != nil {
		return nil, err
	}
	out := make(map[Radix]string, len(supported))
	for _, b := range supported {
		s, err := Encode(n, b)
		if err != nil {
			return nil, err
		}
		out[b] = s
	}
	return out, nil
}
