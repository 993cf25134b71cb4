package lottiecat

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRedactBlanksEmbeddedAssetsOnly(t *testing.T) {
	doc := `{"assets": [
		{"id": "img_0", "e": 1, "p": "data:image/png;base64,AAAA"},
		{"id": "img_1", "e": 0, "p": "logo.png"}
	]}`
	out, err := Redact([]byte(doc))
	if err != nil {
		t.Fatalf("Redact: %v", err)
	}
	if strings.Contains(string(out), "base64,AAAA") {
		t.Error("expected the embedded asset's payload to be redacted")
	}
	if gjson.GetBytes(out, "assets.0.p").String() != "<redacted>" {
		t.Errorf("assets.0.p = %q, want <redacted>", gjson.GetBytes(out, "assets.0.p").String())
	}
	if gjson.GetBytes(out, "assets.1.p").String() != "logo.png" {
		t.Errorf("assets.1.p = %q, want logo.png unchanged", gjson.GetBytes(out, "assets.1.p").String())
	}
}

func TestRedactNoAssetsIsNoop(t *testing.T) {
	doc := `{"nm": "x"}`
	out, err := Redact([]byte(doc))
	if err != nil {
		t.Fatalf("Redact: %v", err)
	}
	if string(out) != doc {
		t.Errorf("out = %q, want unchanged %q", out, doc)
	}
}
