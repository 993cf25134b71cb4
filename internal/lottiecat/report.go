package lottiecat

import (
	"github.com/Jeffail/gabs/v2"
	"github.com/tidwall/gjson"
)

// Report walks the raw document with gjson and assembles a small
// structural summary with gabs, independent of glottie's own model
// builder. It exists so a malformed document that the strict parser
// rejects can still be inspected at the JSON level.
func Report(buf []byte) (string, error) {
	root := gjson.ParseBytes(buf)

	out := gabs.New()
	setPath := func(path string, v any) {
		_, _ = out.SetP(v, path)
	}

	setPath("name", root.Get("nm").String())
	setPath("width", root.Get("w").Int())
	setPath("height", root.Get("h").Int())
	setPath("frameRate", root.Get("fr").Float())
	setPath("inFrame", root.Get("ip").Float())
	setPath("outFrame", root.Get("op").Float())

	layers := root.Get("layers")
	setPath("layers.count", layerCount(layers))
	setPath("layers.shapeCount", shapeCount(layers))

	assets := root.Get("assets")
	setPath("assets.count", assets.Get("#").Int())
	setPath("assets.embeddedCount", embeddedAssetCount(assets))

	return out.StringIndent("", "  "), nil
}

func layerCount(layers gjson.Result) int64 {
	if !layers.IsArray() {
		return 0
	}
	return layers.Get("#").Int()
}

// shapeCount sums len(shapes) across every top-level layer, whatever its
// "ty"; it does not recurse into groups or precomps, matching what a
// quick document triage needs.
func shapeCount(layers gjson.Result) int64 {
	var total int64
	layers.ForEach(func(_, layer gjson.Result) bool {
		total += layer.Get("shapes.#").Int()
		return true
	})
	return total
}

func embeddedAssetCount(assets gjson.Result) int64 {
	var total int64
	assets.ForEach(func(_, asset gjson.Result) bool {
		if asset.Get("e").Int() == 1 {
			total++
		}
		return true
	})
	return total
}
