package lottiecat

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Redact blanks the "p" field of every embedded image asset ("e":1),
// which normally carries a base64 data URI. It leaves everything else —
// including non-embedded assets that only reference a filename — byte
// for byte identical, so a redacted document still round-trips through
// glottie's own parser.
func Redact(buf []byte) ([]byte, error) {
	assets := gjson.GetBytes(buf, "assets")
	if !assets.Exists() || !assets.IsArray() {
		return buf, nil
	}

	out := buf
	var rangeErr error
	assets.ForEach(func(key, asset gjson.Result) bool {
		if asset.Get("e").Int() != 1 {
			return true
		}
		path := fmt.Sprintf("assets.%d.p", key.Int())
		next, err := sjson.SetBytes(out, path, "<redacted>")
		if err != nil {
			rangeErr = err
			return false
		}
		out = next
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return out, nil
}
