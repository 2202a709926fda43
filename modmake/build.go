package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorimgVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	// Screened pixels only round trip through lossless codecs.
	b.Build().DependsOnRunner("codecs", "Verifies pixel screening round trips through lossless codecs",
		Go().Test("./pkg/pixel/").Arg("-run", "Lossless|Transparent|SurvivesPNG"))

	xorimg := NewAppBuild("xorimg", "cmd/xorimg", xorimgVersion)
	xorimg.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			TrimPath().
			SetVariable("main", "version", xorimgVersion).
			Env("CGO_ENABLED", "0")
	})
	xorimg.Variant("windows", "amd64")
	xorimg.Variant("linux", "amd64")
	xorimg.Variant("linux", "arm64")
	xorimg.Variant("darwin", "amd64")
	xorimg.Variant("darwin", "arm64")
	b.ImportApp(xorimg)

	b.Execute()
}
