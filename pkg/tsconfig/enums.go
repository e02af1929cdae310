package tsconfig

import (
	"encoding/json"

	"github.com/mcncl/jsconf/pkg/enum"
	"github.com/mcncl/jsconf/pkg/shape"
)

// decodeEnum maps a JSON string onto table. Any string is accepted; other
// kinds are a shape mismatch.
func decodeEnum[S comparable](table *enum.Table[S], dst *enum.Value[S], raw json.RawMessage, path shape.Path) error {
	if err := shape.Expect(raw, path, shape.String); err != nil {
		return err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return shape.NewMalformedJSON(err)
	}
	*dst = table.Map(s)
	return nil
}

// TargetSymbol names a known ECMAScript target
type TargetSymbol int

const (
	TargetOther TargetSymbol = iota
	TargetES3
	TargetES5
	TargetES6
	TargetES2015
	TargetES7
	TargetES2016
	TargetES2017
	TargetES2018
	TargetES2019
	TargetES2020
	TargetES2021
	TargetES2022
	TargetES2023
	TargetES2024
	TargetESNext
)

var targets = enum.NewTable("target", TargetOther, []enum.Entry[TargetSymbol]{
	{Symbol: TargetES3, Name: "es3"},
	{Symbol: TargetES5, Name: "es5"},
	{Symbol: TargetES6, Name: "es6"},
	{Symbol: TargetES2015, Name: "es2015"},
	{Symbol: TargetES7, Name: "es7"},
	{Symbol: TargetES2016, Name: "es2016"},
	{Symbol: TargetES2017, Name: "es2017"},
	{Symbol: TargetES2018, Name: "es2018"},
	{Symbol: TargetES2019, Name: "es2019"},
	{Symbol: TargetES2020, Name: "es2020"},
	{Symbol: TargetES2021, Name: "es2021"},
	{Symbol: TargetES2022, Name: "es2022"},
	{Symbol: TargetES2023, Name: "es2023"},
	{Symbol: TargetES2024, Name: "es2024"},
	{Symbol: TargetESNext, Name: "esnext"},
})

// Target is the `target` compiler option
type Target struct{ enum.Value[TargetSymbol] }

// ParseTarget maps s onto a known target, or TargetOther
func ParseTarget(s string) Target { return Target{targets.Map(s)} }

// TargetOf returns the value for a known symbol
func TargetOf(symbol TargetSymbol) Target { return Target{targets.Of(symbol)} }

// Known reports whether t is one of the known targets
func (t Target) Known() bool { return targets.Known(t.Value) }

func (t Target) String() string { return targets.Text(t.Value) }

func (t Target) MarshalJSON() ([]byte, error) { return shape.Marshal(t.String()) }

func (t *Target) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(targets, &t.Value, raw, path)
}

func (t *Target) UnmarshalJSON(data []byte) error { return t.UnmarshalShape(data, "") }

// ModuleSymbol names a known module system
type ModuleSymbol int

const (
	ModuleOther ModuleSymbol = iota
	ModuleNone
	ModuleCommonJS
	ModuleAMD
	ModuleUMD
	ModuleSystem
	ModuleES6
	ModuleES2015
	ModuleES2020
	ModuleES2022
	ModuleESNext
	ModuleNode16
	ModuleNodeNext
	ModulePreserve
)

var modules = enum.NewTable("module", ModuleOther, []enum.Entry[ModuleSymbol]{
	{Symbol: ModuleNone, Name: "none"},
	{Symbol: ModuleCommonJS, Name: "commonjs"},
	{Symbol: ModuleAMD, Name: "amd"},
	{Symbol: ModuleUMD, Name: "umd"},
	{Symbol: ModuleSystem, Name: "system"},
	{Symbol: ModuleES6, Name: "es6"},
	{Symbol: ModuleES2015, Name: "es2015"},
	{Symbol: ModuleES2020, Name: "es2020"},
	{Symbol: ModuleES2022, Name: "es2022"},
	{Symbol: ModuleESNext, Name: "esnext"},
	{Symbol: ModuleNode16, Name: "node16"},
	{Symbol: ModuleNodeNext, Name: "nodenext"},
	{Symbol: ModulePreserve, Name: "preserve"},
})

// Module is the `module` compiler option
type Module struct{ enum.Value[ModuleSymbol] }

// ParseModule maps s onto a known module system, or ModuleOther
func ParseModule(s string) Module { return Module{modules.Map(s)} }

// ModuleOf returns the value for a known symbol
func ModuleOf(symbol ModuleSymbol) Module { return Module{modules.Of(symbol)} }

// Known reports whether m is one of the known module systems
func (m Module) Known() bool { return modules.Known(m.Value) }

func (m Module) String() string { return modules.Text(m.Value) }

func (m Module) MarshalJSON() ([]byte, error) { return shape.Marshal(m.String()) }

func (m *Module) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(modules, &m.Value, raw, path)
}

func (m *Module) UnmarshalJSON(data []byte) error { return m.UnmarshalShape(data, "") }

// LibSymbol names a known bundled library declaration file
type LibSymbol int

const (
	LibOther LibSymbol = iota
	LibES5
	LibES6
	LibES2015
	LibES7
	LibES2016
	LibES2017
	LibES2018
	LibES2019
	LibES2020
	LibES2021
	LibES2022
	LibES2023
	LibESNext
	LibDOM
	LibDOMIterable
	LibDOMAsyncIterable
	LibWebWorker
	LibWebWorkerImportScripts
	LibScriptHost
	LibES2015Core
	LibES2015Collection
	LibES2015Generator
	LibES2015Iterable
	LibES2015Promise
	LibES2015Proxy
	LibES2015Reflect
	LibES2015Symbol
	LibES2015SymbolWellKnown
	LibES2016ArrayInclude
	LibES2017Object
	LibES2017Intl
	LibES2017SharedMemory
	LibES2017String
	LibES2017TypedArrays
	LibES2018AsyncGenerator
	LibES2018AsyncIterable
	LibES2018Intl
	LibES2018Promise
	LibES2018RegExp
	LibES2019Array
	LibES2019Object
	LibES2019String
	LibES2019Symbol
	LibES2020BigInt
	LibES2020Intl
	LibES2020Promise
	LibES2020String
	LibES2020SymbolWellKnown
	LibESNextAsyncIterable
	LibESNextArray
	LibESNextIntl
	LibESNextSymbol
)

// Library names are dotted compounds; "_" is accepted as a separator too.
var libs = enum.NewTable("lib", LibOther, []enum.Entry[LibSymbol]{
	{Symbol: LibES5, Name: "es5"},
	{Symbol: LibES6, Name: "es6"},
	{Symbol: LibES2015, Name: "es2015"},
	{Symbol: LibES7, Name: "es7"},
	{Symbol: LibES2016, Name: "es2016"},
	{Symbol: LibES2017, Name: "es2017"},
	{Symbol: LibES2018, Name: "es2018"},
	{Symbol: LibES2019, Name: "es2019"},
	{Symbol: LibES2020, Name: "es2020"},
	{Symbol: LibES2021, Name: "es2021"},
	{Symbol: LibES2022, Name: "es2022"},
	{Symbol: LibES2023, Name: "es2023"},
	{Symbol: LibESNext, Name: "esnext"},
	{Symbol: LibDOM, Name: "dom"},
	{Symbol: LibDOMIterable, Name: "dom.iterable"},
	{Symbol: LibDOMAsyncIterable, Name: "dom.asynciterable"},
	{Symbol: LibWebWorker, Name: "webworker"},
	{Symbol: LibWebWorkerImportScripts, Name: "webworker.importscripts"},
	{Symbol: LibScriptHost, Name: "scripthost"},
	{Symbol: LibES2015Core, Name: "es2015.core"},
	{Symbol: LibES2015Collection, Name: "es2015.collection"},
	{Symbol: LibES2015Generator, Name: "es2015.generator"},
	{Symbol: LibES2015Iterable, Name: "es2015.iterable"},
	{Symbol: LibES2015Promise, Name: "es2015.promise"},
	{Symbol: LibES2015Proxy, Name: "es2015.proxy"},
	{Symbol: LibES2015Reflect, Name: "es2015.reflect"},
	{Symbol: LibES2015Symbol, Name: "es2015.symbol"},
	{Symbol: LibES2015SymbolWellKnown, Name: "es2015.symbol.wellknown"},
	{Symbol: LibES2016ArrayInclude, Name: "es2016.array.include"},
	{Symbol: LibES2017Object, Name: "es2017.object"},
	{Symbol: LibES2017Intl, Name: "es2017.intl"},
	{Symbol: LibES2017SharedMemory, Name: "es2017.sharedmemory"},
	{Symbol: LibES2017String, Name: "es2017.string"},
	{Symbol: LibES2017TypedArrays, Name: "es2017.typedarrays"},
	{Symbol: LibES2018AsyncGenerator, Name: "es2018.asyncgenerator"},
	{Symbol: LibES2018AsyncIterable, Name: "es2018.asynciterable"},
	{Symbol: LibES2018Intl, Name: "es2018.intl"},
	{Symbol: LibES2018Promise, Name: "es2018.promise"},
	{Symbol: LibES2018RegExp, Name: "es2018.regexp"},
	{Symbol: LibES2019Array, Name: "es2019.array"},
	{Symbol: LibES2019Object, Name: "es2019.object"},
	{Symbol: LibES2019String, Name: "es2019.string"},
	{Symbol: LibES2019Symbol, Name: "es2019.symbol"},
	{Symbol: LibES2020BigInt, Name: "es2020.bigint"},
	{Symbol: LibES2020Intl, Name: "es2020.intl"},
	{Symbol: LibES2020Promise, Name: "es2020.promise"},
	{Symbol: LibES2020String, Name: "es2020.string"},
	{Symbol: LibES2020SymbolWellKnown, Name: "es2020.symbol.wellknown"},
	{Symbol: LibESNextAsyncIterable, Name: "esnext.asynciterable"},
	{Symbol: LibESNextArray, Name: "esnext.array"},
	{Symbol: LibESNextIntl, Name: "esnext.intl"},
	{Symbol: LibESNextSymbol, Name: "esnext.symbol"},
}, enum.WithSeparators("_"))

// Lib is one entry of the `lib` compiler option
type Lib struct{ enum.Value[LibSymbol] }

// ParseLib maps s onto a known library, or LibOther
func ParseLib(s string) Lib { return Lib{libs.Map(s)} }

// LibOf returns the value for a known symbol
func LibOf(symbol LibSymbol) Lib { return Lib{libs.Of(symbol)} }

// Known reports whether l is one of the known libraries
func (l Lib) Known() bool { return libs.Known(l.Value) }

func (l Lib) String() string { return libs.Text(l.Value) }

func (l Lib) MarshalJSON() ([]byte, error) { return shape.Marshal(l.String()) }

func (l *Lib) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(libs, &l.Value, raw, path)
}

func (l *Lib) UnmarshalJSON(data []byte) error { return l.UnmarshalShape(data, "") }

// ModuleResolutionSymbol names a known module resolution strategy
type ModuleResolutionSymbol int

const (
	ModuleResolutionOther ModuleResolutionSymbol = iota
	ModuleResolutionClassic
	ModuleResolutionNode
	ModuleResolutionNode16
	ModuleResolutionNodeNext
	ModuleResolutionBundler
)

var moduleResolutions = enum.NewTable("moduleResolution", ModuleResolutionOther, []enum.Entry[ModuleResolutionSymbol]{
	{Symbol: ModuleResolutionClassic, Name: "classic"},
	{Symbol: ModuleResolutionNode, Name: "node", Aliases: []string{"node10"}},
	{Symbol: ModuleResolutionNode16, Name: "node16"},
	{Symbol: ModuleResolutionNodeNext, Name: "nodenext"},
	{Symbol: ModuleResolutionBundler, Name: "bundler"},
})

// ModuleResolutionMode is the `moduleResolution` compiler option
type ModuleResolutionMode struct{ enum.Value[ModuleResolutionSymbol] }

// ParseModuleResolution maps s onto a known strategy, or ModuleResolutionOther
func ParseModuleResolution(s string) ModuleResolutionMode {
	return ModuleResolutionMode{moduleResolutions.Map(s)}
}

// ModuleResolutionOf returns the value for a known symbol
func ModuleResolutionOf(symbol ModuleResolutionSymbol) ModuleResolutionMode {
	return ModuleResolutionMode{moduleResolutions.Of(symbol)}
}

// Known reports whether m is one of the known strategies
func (m ModuleResolutionMode) Known() bool { return moduleResolutions.Known(m.Value) }

func (m ModuleResolutionMode) String() string { return moduleResolutions.Text(m.Value) }

func (m ModuleResolutionMode) MarshalJSON() ([]byte, error) { return shape.Marshal(m.String()) }

func (m *ModuleResolutionMode) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(moduleResolutions, &m.Value, raw, path)
}

func (m *ModuleResolutionMode) UnmarshalJSON(data []byte) error { return m.UnmarshalShape(data, "") }

// JsxSymbol names a known JSX emit mode
type JsxSymbol int

const (
	JsxOther JsxSymbol = iota
	// JsxPreserve emits .jsx files with the JSX unchanged
	JsxPreserve
	// JsxReact emits .js files with JSX changed to React.createElement calls
	JsxReact
	// JsxReactNative emits .js files with the JSX unchanged
	JsxReactNative
	// JsxReactJSX emits .js files with the JSX changed to _jsx calls
	JsxReactJSX
	// JsxReactJSXDev emits .js files with the JSX changed to _jsxDEV calls
	JsxReactJSXDev
)

var jsxModes = enum.NewTable("jsx", JsxOther, []enum.Entry[JsxSymbol]{
	{Symbol: JsxPreserve, Name: "preserve"},
	{Symbol: JsxReact, Name: "react"},
	{Symbol: JsxReactNative, Name: "react-native"},
	{Symbol: JsxReactJSX, Name: "react-jsx"},
	{Symbol: JsxReactJSXDev, Name: "react-jsxdev"},
})

// Jsx is the `jsx` compiler option
type Jsx struct{ enum.Value[JsxSymbol] }

// ParseJsx maps s onto a known JSX mode, or JsxOther
func ParseJsx(s string) Jsx { return Jsx{jsxModes.Map(s)} }

// JsxOf returns the value for a known symbol
func JsxOf(symbol JsxSymbol) Jsx { return Jsx{jsxModes.Of(symbol)} }

// Known reports whether j is one of the known JSX modes
func (j Jsx) Known() bool { return jsxModes.Known(j.Value) }

func (j Jsx) String() string { return jsxModes.Text(j.Value) }

func (j Jsx) MarshalJSON() ([]byte, error) { return shape.Marshal(j.String()) }

func (j *Jsx) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(jsxModes, &j.Value, raw, path)
}

func (j *Jsx) UnmarshalJSON(data []byte) error { return j.UnmarshalShape(data, "") }

// ModuleDetectionSymbol names a known module detection strategy
type ModuleDetectionSymbol int

const (
	ModuleDetectionOther ModuleDetectionSymbol = iota
	ModuleDetectionAuto
	ModuleDetectionLegacy
	ModuleDetectionForce
)

var moduleDetections = enum.NewTable("moduleDetection", ModuleDetectionOther, []enum.Entry[ModuleDetectionSymbol]{
	{Symbol: ModuleDetectionAuto, Name: "auto"},
	{Symbol: ModuleDetectionLegacy, Name: "legacy"},
	{Symbol: ModuleDetectionForce, Name: "force"},
})

// ModuleDetection is the `moduleDetection` compiler option
type ModuleDetection struct{ enum.Value[ModuleDetectionSymbol] }

// ParseModuleDetection maps s onto a known strategy, or ModuleDetectionOther
func ParseModuleDetection(s string) ModuleDetection {
	return ModuleDetection{moduleDetections.Map(s)}
}

func (m ModuleDetection) Known() bool { return moduleDetections.Known(m.Value) }

func (m ModuleDetection) String() string { return moduleDetections.Text(m.Value) }

func (m ModuleDetection) MarshalJSON() ([]byte, error) { return shape.Marshal(m.String()) }

func (m *ModuleDetection) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(moduleDetections, &m.Value, raw, path)
}

func (m *ModuleDetection) UnmarshalJSON(data []byte) error { return m.UnmarshalShape(data, "") }

// NewLineSymbol names a known end of line sequence
type NewLineSymbol int

const (
	NewLineOther NewLineSymbol = iota
	NewLineCRLF
	NewLineLF
)

var newLines = enum.NewTable("newLine", NewLineOther, []enum.Entry[NewLineSymbol]{
	{Symbol: NewLineCRLF, Name: "crlf"},
	{Symbol: NewLineLF, Name: "lf"},
})

// NewLine is the `newLine` compiler option
type NewLine struct{ enum.Value[NewLineSymbol] }

// ParseNewLine maps s onto a known line ending, or NewLineOther
func ParseNewLine(s string) NewLine { return NewLine{newLines.Map(s)} }

func (n NewLine) Known() bool { return newLines.Known(n.Value) }

func (n NewLine) String() string { return newLines.Text(n.Value) }

func (n NewLine) MarshalJSON() ([]byte, error) { return shape.Marshal(n.String()) }

func (n *NewLine) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	return decodeEnum(newLines, &n.Value, raw, path)
}

func (n *NewLine) UnmarshalJSON(data []byte) error { return n.UnmarshalShape(data, "") }
