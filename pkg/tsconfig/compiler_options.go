package tsconfig

import (
	"github.com/mcncl/jsconf/pkg/shape"
)

// CompilerOptions make up the bulk of a project configuration and cover how
// the language should work. Every option is independent and optional; no
// cross-option rules are applied here.
//
// Wire names are listed per field. Several do not follow a mechanical
// camel case rename (emitBOM, tsBuildInfoFile, esModuleInterop, baseUrl).
// Options that are not modeled are kept in Extras.
type CompilerOptions struct {
	// Projects
	AllowJS            *bool   `json:"allowJs,omitempty"`
	CheckJS            *bool   `json:"checkJs,omitempty"`
	Composite          *bool   `json:"composite,omitempty"`
	Declaration        *bool   `json:"declaration,omitempty"`
	DeclarationMap     *bool   `json:"declarationMap,omitempty"`
	DownlevelIteration *bool   `json:"downlevelIteration,omitempty"`
	ImportHelpers      *bool   `json:"importHelpers,omitempty"`
	Incremental        *bool   `json:"incremental,omitempty"`
	IsolatedModules    *bool   `json:"isolatedModules,omitempty"`
	Jsx                *Jsx    `json:"jsx,omitempty"`
	Lib                []Lib   `json:"lib,omitempty"`
	Module             *Module `json:"module,omitempty"`
	NoEmit             *bool   `json:"noEmit,omitempty"`
	OutDir             *string `json:"outDir,omitempty"`
	OutFile            *string `json:"outFile,omitempty"`
	RemoveComments     *bool   `json:"removeComments,omitempty"`
	RootDir            *string `json:"rootDir,omitempty"`
	SourceMap          *bool   `json:"sourceMap,omitempty"`
	Target             *Target `json:"target,omitempty"`
	TSBuildInfoFile    *string `json:"tsBuildInfoFile,omitempty"`

	// Strict checks
	AlwaysStrict                 *bool `json:"alwaysStrict,omitempty"`
	NoImplicitAny                *bool `json:"noImplicitAny,omitempty"`
	NoImplicitThis               *bool `json:"noImplicitThis,omitempty"`
	Strict                       *bool `json:"strict,omitempty"`
	StrictBindCallApply          *bool `json:"strictBindCallApply,omitempty"`
	StrictFunctionTypes          *bool `json:"strictFunctionTypes,omitempty"`
	StrictNullChecks             *bool `json:"strictNullChecks,omitempty"`
	StrictPropertyInitialization *bool `json:"strictPropertyInitialization,omitempty"`
	UseUnknownInCatchVariables   *bool `json:"useUnknownInCatchVariables,omitempty"`
	ExactOptionalPropertyTypes   *bool `json:"exactOptionalPropertyTypes,omitempty"`

	// Module resolution
	AllowSyntheticDefaultImports *bool                 `json:"allowSyntheticDefaultImports,omitempty"`
	AllowUMDGlobalAccess         *bool                 `json:"allowUmdGlobalAccess,omitempty"`
	BaseURL                      *string               `json:"baseUrl,omitempty"`
	ESModuleInterop              *bool                 `json:"esModuleInterop,omitempty"`
	ModuleResolution             *ModuleResolutionMode `json:"moduleResolution,omitempty"`
	Paths                        map[string][]string   `json:"paths,omitempty"`
	PreserveSymlinks             *bool                 `json:"preserveSymlinks,omitempty"`
	RootDirs                     []string              `json:"rootDirs,omitempty"`
	TypeRoots                    []string              `json:"typeRoots,omitempty"`
	Types                        []string              `json:"types,omitempty"`
	ResolveJSONModule            *bool                 `json:"resolveJsonModule,omitempty"`
	ResolvePackageJSONExports    *bool                 `json:"resolvePackageJsonExports,omitempty"`
	ResolvePackageJSONImports    *bool                 `json:"resolvePackageJsonImports,omitempty"`
	CustomConditions             []string              `json:"customConditions,omitempty"`
	ModuleSuffixes               []string              `json:"moduleSuffixes,omitempty"`
	AllowImportingTSExtensions   *bool                 `json:"allowImportingTsExtensions,omitempty"`
	AllowArbitraryExtensions     *bool                 `json:"allowArbitraryExtensions,omitempty"`
	ModuleDetection              *ModuleDetection      `json:"moduleDetection,omitempty"`
	VerbatimModuleSyntax         *bool                 `json:"verbatimModuleSyntax,omitempty"`

	// Source maps
	InlineSourceMap *bool   `json:"inlineSourceMap,omitempty"`
	InlineSources   *bool   `json:"inlineSources,omitempty"`
	MapRoot         *string `json:"mapRoot,omitempty"`
	SourceRoot      *string `json:"sourceRoot,omitempty"`

	// Linter checks
	NoFallthroughCasesInSwitch         *bool `json:"noFallthroughCasesInSwitch,omitempty"`
	NoImplicitReturns                  *bool `json:"noImplicitReturns,omitempty"`
	NoImplicitOverride                 *bool `json:"noImplicitOverride,omitempty"`
	NoPropertyAccessFromIndexSignature *bool `json:"noPropertyAccessFromIndexSignature,omitempty"`
	NoUncheckedIndexedAccess           *bool `json:"noUncheckedIndexedAccess,omitempty"`
	NoUnusedLocals                     *bool `json:"noUnusedLocals,omitempty"`
	NoUnusedParameters                 *bool `json:"noUnusedParameters,omitempty"`

	// Experimental
	EmitDecoratorMetadata  *bool `json:"emitDecoratorMetadata,omitempty"`
	ExperimentalDecorators *bool `json:"experimentalDecorators,omitempty"`

	// Advanced
	AllowUnreachableCode                      *bool `json:"allowUnreachableCode,omitempty"`
	AllowUnusedLabels                         *bool `json:"allowUnusedLabels,omitempty"`
	AssumeChangesOnlyAffectDirectDependencies *bool `json:"assumeChangesOnlyAffectDirectDependencies,omitempty"`
	// Deprecated: removed from the compiler, kept for old configurations.
	Charset        *string `json:"charset,omitempty"`
	DeclarationDir *string `json:"declarationDir,omitempty"`
	// Deprecated: use ExtendedDiagnostics.
	Diagnostics                             *bool   `json:"diagnostics,omitempty"`
	DisableReferencedProjectLoad            *bool   `json:"disableReferencedProjectLoad,omitempty"`
	DisableSizeLimit                        *bool   `json:"disableSizeLimit,omitempty"`
	DisableSolutionSearching                *bool   `json:"disableSolutionSearching,omitempty"`
	DisableSourceOfProjectReferenceRedirect *bool   `json:"disableSourceOfProjectReferenceRedirect,omitempty"`
	EmitBOM                                 *bool   `json:"emitBOM,omitempty"`
	EmitDeclarationOnly                     *bool   `json:"emitDeclarationOnly,omitempty"`
	ExplainFiles                            *bool   `json:"explainFiles,omitempty"`
	ExtendedDiagnostics                     *bool   `json:"extendedDiagnostics,omitempty"`
	ForceConsistentCasingInFileNames        *bool   `json:"forceConsistentCasingInFileNames,omitempty"`
	GenerateCPUProfile                      *string `json:"generateCpuProfile,omitempty"`
	// Deprecated: use VerbatimModuleSyntax.
	ImportsNotUsedAsValues *string `json:"importsNotUsedAsValues,omitempty"`
	// Deprecated: use VerbatimModuleSyntax.
	PreserveValueImports *bool   `json:"preserveValueImports,omitempty"`
	JSXFactory           *string `json:"jsxFactory,omitempty"`
	JSXFragmentFactory   *string `json:"jsxFragmentFactory,omitempty"`
	JSXImportSource      *string `json:"jsxImportSource,omitempty"`
	// Deprecated: removed in TypeScript 5.5.
	KeyofStringsOnly     *bool    `json:"keyofStringsOnly,omitempty"`
	ListEmittedFiles     *bool    `json:"listEmittedFiles,omitempty"`
	ListFiles            *bool    `json:"listFiles,omitempty"`
	MaxNodeModuleJSDepth *int     `json:"maxNodeModuleJsDepth,omitempty"`
	NewLine              *NewLine `json:"newLine,omitempty"`
	NoEmitHelpers        *bool    `json:"noEmitHelpers,omitempty"`
	NoEmitOnError        *bool    `json:"noEmitOnError,omitempty"`
	NoErrorTruncation    *bool    `json:"noErrorTruncation,omitempty"`
	// Deprecated: removed in TypeScript 5.5.
	NoImplicitUseStrict *bool `json:"noImplicitUseStrict,omitempty"`
	NoLib               *bool `json:"noLib,omitempty"`
	NoResolve           *bool `json:"noResolve,omitempty"`
	// Deprecated: removed in TypeScript 5.5.
	NoStrictGenericChecks *bool `json:"noStrictGenericChecks,omitempty"`
	// Deprecated: use OutFile.
	Out                 *string `json:"out,omitempty"`
	PreserveConstEnums  *bool   `json:"preserveConstEnums,omitempty"`
	ReactNamespace      *string `json:"reactNamespace,omitempty"`
	SkipDefaultLibCheck *bool   `json:"skipDefaultLibCheck,omitempty"`
	SkipLibCheck        *bool   `json:"skipLibCheck,omitempty"`
	StripInternal       *bool   `json:"stripInternal,omitempty"`
	// Deprecated: removed in TypeScript 5.5.
	SuppressExcessPropertyErrors *bool `json:"suppressExcessPropertyErrors,omitempty"`
	// Deprecated: removed in TypeScript 5.5.
	SuppressImplicitAnyIndexErrors *bool `json:"suppressImplicitAnyIndexErrors,omitempty"`
	TraceResolution                *bool `json:"traceResolution,omitempty"`
	UseDefineForClassFields        *bool `json:"useDefineForClassFields,omitempty"`

	// Command line
	PreserveWatchOutput *bool `json:"preserveWatchOutput,omitempty"`
	Pretty              *bool `json:"pretty,omitempty"`

	// Watch options, accepted here by older compilers
	FallbackPolling *string `json:"fallbackPolling,omitempty"`
	WatchDirectory  *string `json:"watchDirectory,omitempty"`
	WatchFile       *string `json:"watchFile,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (o CompilerOptions) MarshalJSON() ([]byte, error) {
	return shape.Encode(o)
}

func (o *CompilerOptions) UnmarshalJSON(data []byte) error {
	return shape.Decode(data, o, "")
}
