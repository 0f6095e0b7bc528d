package svgtypes

// Identifier tables mapping canonical lowercase SVG names to small integer
// ordinals, grounded on the name sets from the original svgtypes crate's
// attribute_id.rs/element.rs (ported by meaning, not by generated PHF layout:
// spec.md section 9 explicitly leaves the lookup strategy as an implementation
// detail, so this file uses plain Go maps rather than a perfect-hash table).

// ElementID identifies a recognized SVG element name.
type ElementID int

const (
	ElementUnknown ElementID = iota
	ElementA
	ElementAltGlyph
	ElementAltGlyphDef
	ElementAltGlyphItem
	ElementAnimate
	ElementAnimateColor
	ElementAnimateMotion
	ElementAnimateTransform
	ElementCircle
	ElementClipPath
	ElementColorProfile
	ElementCursor
	ElementDefs
	ElementDesc
	ElementEllipse
	ElementFeBlend
	ElementFeColorMatrix
	ElementFeComponentTransfer
	ElementFeComposite
	ElementFeConvolveMatrix
	ElementFeDiffuseLighting
	ElementFeDisplacementMap
	ElementFeDistantLight
	ElementFeFlood
	ElementFeFuncA
	ElementFeFuncB
	ElementFeFuncG
	ElementFeFuncR
	ElementFeGaussianBlur
	ElementFeImage
	ElementFeMerge
	ElementFeMergeNode
	ElementFeMorphology
	ElementFeOffset
	ElementFePointLight
	ElementFeSpecularLighting
	ElementFeSpotLight
	ElementFeTile
	ElementFeTurbulence
	ElementFilter
	ElementFlowPara
	ElementFlowRegion
	ElementFlowRoot
	ElementFlowSpan
	ElementFont
	ElementFontFace
	ElementFontFaceFormat
	ElementFontFaceName
	ElementFontFaceSrc
	ElementFontFaceUri
	ElementForeignObject
	ElementG
	ElementGlyph
	ElementGlyphRef
	ElementHkern
	ElementImage
	ElementLine
	ElementLinearGradient
	ElementMarker
	ElementMask
	ElementMetadata
	ElementMissingGlyph
	ElementMpath
	ElementPath
	ElementPattern
	ElementPolygon
	ElementPolyline
	ElementRadialGradient
	ElementRect
	ElementScript
	ElementSet
	ElementStop
	ElementStyle
	ElementSvg
	ElementSwitch
	ElementSymbol
	ElementText
	ElementTextPath
	ElementTitle
	ElementTref
	ElementTspan
	ElementUse
	ElementView
	ElementVkern
)

var elementNames = map[ElementID]string{
	ElementA: "a",
	ElementAltGlyph: "altGlyph",
	ElementAltGlyphDef: "altGlyphDef",
	ElementAltGlyphItem: "altGlyphItem",
	ElementAnimate: "animate",
	ElementAnimateColor: "animateColor",
	ElementAnimateMotion: "animateMotion",
	ElementAnimateTransform: "animateTransform",
	ElementCircle: "circle",
	ElementClipPath: "clipPath",
	ElementColorProfile: "color-profile",
	ElementCursor: "cursor",
	ElementDefs: "defs",
	ElementDesc: "desc",
	ElementEllipse: "ellipse",
	ElementFeBlend: "feBlend",
	ElementFeColorMatrix: "feColorMatrix",
	ElementFeComponentTransfer: "feComponentTransfer",
	ElementFeComposite: "feComposite",
	ElementFeConvolveMatrix: "feConvolveMatrix",
	ElementFeDiffuseLighting: "feDiffuseLighting",
	ElementFeDisplacementMap: "feDisplacementMap",
	ElementFeDistantLight: "feDistantLight",
	ElementFeFlood: "feFlood",
	ElementFeFuncA: "feFuncA",
	ElementFeFuncB: "feFuncB",
	ElementFeFuncG: "feFuncG",
	ElementFeFuncR: "feFuncR",
	ElementFeGaussianBlur: "feGaussianBlur",
	ElementFeImage: "feImage",
	ElementFeMerge: "feMerge",
	ElementFeMergeNode: "feMergeNode",
	ElementFeMorphology: "feMorphology",
	ElementFeOffset: "feOffset",
	ElementFePointLight: "fePointLight",
	ElementFeSpecularLighting: "feSpecularLighting",
	ElementFeSpotLight: "feSpotLight",
	ElementFeTile: "feTile",
	ElementFeTurbulence: "feTurbulence",
	ElementFilter: "filter",
	ElementFlowPara: "flowPara",
	ElementFlowRegion: "flowRegion",
	ElementFlowRoot: "flowRoot",
	ElementFlowSpan: "flowSpan",
	ElementFont: "font",
	ElementFontFace: "font-face",
	ElementFontFaceFormat: "font-face-format",
	ElementFontFaceName: "font-face-name",
	ElementFontFaceSrc: "font-face-src",
	ElementFontFaceUri: "font-face-uri",
	ElementForeignObject: "foreignObject",
	ElementG: "g",
	ElementGlyph: "glyph",
	ElementGlyphRef: "glyphRef",
	ElementHkern: "hkern",
	ElementImage: "image",
	ElementLine: "line",
	ElementLinearGradient: "linearGradient",
	ElementMarker: "marker",
	ElementMask: "mask",
	ElementMetadata: "metadata",
	ElementMissingGlyph: "missing-glyph",
	ElementMpath: "mpath",
	ElementPath: "path",
	ElementPattern: "pattern",
	ElementPolygon: "polygon",
	ElementPolyline: "polyline",
	ElementRadialGradient: "radialGradient",
	ElementRect: "rect",
	ElementScript: "script",
	ElementSet: "set",
	ElementStop: "stop",
	ElementStyle: "style",
	ElementSvg: "svg",
	ElementSwitch: "switch",
	ElementSymbol: "symbol",
	ElementText: "text",
	ElementTextPath: "textPath",
	ElementTitle: "title",
	ElementTref: "tref",
	ElementTspan: "tspan",
	ElementUse: "use",
	ElementView: "view",
	ElementVkern: "vkern",
}

var elementByName = map[string]ElementID{
	"a": ElementA,
	"altGlyph": ElementAltGlyph,
	"altGlyphDef": ElementAltGlyphDef,
	"altGlyphItem": ElementAltGlyphItem,
	"animate": ElementAnimate,
	"animateColor": ElementAnimateColor,
	"animateMotion": ElementAnimateMotion,
	"animateTransform": ElementAnimateTransform,
	"circle": ElementCircle,
	"clipPath": ElementClipPath,
	"color-profile": ElementColorProfile,
	"cursor": ElementCursor,
	"defs": ElementDefs,
	"desc": ElementDesc,
	"ellipse": ElementEllipse,
	"feBlend": ElementFeBlend,
	"feColorMatrix": ElementFeColorMatrix,
	"feComponentTransfer": ElementFeComponentTransfer,
	"feComposite": ElementFeComposite,
	"feConvolveMatrix": ElementFeConvolveMatrix,
	"feDiffuseLighting": ElementFeDiffuseLighting,
	"feDisplacementMap": ElementFeDisplacementMap,
	"feDistantLight": ElementFeDistantLight,
	"feFlood": ElementFeFlood,
	"feFuncA": ElementFeFuncA,
	"feFuncB": ElementFeFuncB,
	"feFuncG": ElementFeFuncG,
	"feFuncR": ElementFeFuncR,
	"feGaussianBlur": ElementFeGaussianBlur,
	"feImage": ElementFeImage,
	"feMerge": ElementFeMerge,
	"feMergeNode": ElementFeMergeNode,
	"feMorphology": ElementFeMorphology,
	"feOffset": ElementFeOffset,
	"fePointLight": ElementFePointLight,
	"feSpecularLighting": ElementFeSpecularLighting,
	"feSpotLight": ElementFeSpotLight,
	"feTile": ElementFeTile,
	"feTurbulence": ElementFeTurbulence,
	"filter": ElementFilter,
	"flowPara": ElementFlowPara,
	"flowRegion": ElementFlowRegion,
	"flowRoot": ElementFlowRoot,
	"flowSpan": ElementFlowSpan,
	"font": ElementFont,
	"font-face": ElementFontFace,
	"font-face-format": ElementFontFaceFormat,
	"font-face-name": ElementFontFaceName,
	"font-face-src": ElementFontFaceSrc,
	"font-face-uri": ElementFontFaceUri,
	"foreignObject": ElementForeignObject,
	"g": ElementG,
	"glyph": ElementGlyph,
	"glyphRef": ElementGlyphRef,
	"hkern": ElementHkern,
	"image": ElementImage,
	"line": ElementLine,
	"linearGradient": ElementLinearGradient,
	"marker": ElementMarker,
	"mask": ElementMask,
	"metadata": ElementMetadata,
	"missing-glyph": ElementMissingGlyph,
	"mpath": ElementMpath,
	"path": ElementPath,
	"pattern": ElementPattern,
	"polygon": ElementPolygon,
	"polyline": ElementPolyline,
	"radialGradient": ElementRadialGradient,
	"rect": ElementRect,
	"script": ElementScript,
	"set": ElementSet,
	"stop": ElementStop,
	"style": ElementStyle,
	"svg": ElementSvg,
	"switch": ElementSwitch,
	"symbol": ElementSymbol,
	"text": ElementText,
	"textPath": ElementTextPath,
	"title": ElementTitle,
	"tref": ElementTref,
	"tspan": ElementTspan,
	"use": ElementUse,
	"view": ElementView,
	"vkern": ElementVkern,
}

// String returns the canonical SVG name for id, or "" for ElementUnknown.
func (id ElementID) String() string {
	return elementNames[id]
}

// LookupElement resolves a canonical SVG element name to its id.
// The second return value is false for unrecognized names.
func LookupElement(name string) (ElementID, bool) {
	id, ok := elementByName[name]
	return id, ok
}

// AttributeID identifies a recognized SVG attribute name.
type AttributeID int

const (
	AttributeUnknown AttributeID = iota
	AttributeAccentHeight
	AttributeAccumulate
	AttributeAdditive
	AttributeAlignmentBaseline
	AttributeAlphabetic
	AttributeAmplitude
	AttributeArabicForm
	AttributeAscent
	AttributeAttributeName
	AttributeAttributeType
	AttributeAzimuth
	AttributeBaseFrequency
	AttributeBaseProfile
	AttributeBaselineShift
	AttributeBbox
	AttributeBegin
	AttributeBias
	AttributeBy
	AttributeCalcMode
	AttributeCapHeight
	AttributeClass
	AttributeClip
	AttributeClipPath
	AttributeClipPathUnits
	AttributeClipRule
	AttributeColor
	AttributeColorInterpolation
	AttributeColorInterpolationFilters
	AttributeColorProfile
	AttributeColorRendering
	AttributeContentScriptType
	AttributeContentStyleType
	AttributeCursor
	AttributeCx
	AttributeCy
	AttributeD
	AttributeDescent
	AttributeDiffuseConstant
	AttributeDirection
	AttributeDisplay
	AttributeDivisor
	AttributeDominantBaseline
	AttributeDur
	AttributeDx
	AttributeDy
	AttributeEdgeMode
	AttributeElevation
	AttributeEnableBackground
	AttributeEnd
	AttributeExponent
	AttributeExternalResourcesRequired
	AttributeFill
	AttributeFillOpacity
	AttributeFillRule
	AttributeFilter
	AttributeFilterRes
	AttributeFilterUnits
	AttributeFloodColor
	AttributeFloodOpacity
	AttributeFont
	AttributeFontFamily
	AttributeFontSize
	AttributeFontSizeAdjust
	AttributeFontStretch
	AttributeFontStyle
	AttributeFontVariant
	AttributeFontWeight
	AttributeFormat
	AttributeFrom
	AttributeFx
	AttributeFy
	AttributeG1
	AttributeG2
	AttributeGlyphName
	AttributeGlyphOrientationHorizontal
	AttributeGlyphOrientationVertical
	AttributeGlyphRef
	AttributeGradientTransform
	AttributeGradientUnits
	AttributeHanging
	AttributeHeight
	AttributeHorizAdvX
	AttributeHorizOriginX
	AttributeHorizOriginY
	AttributeId
	AttributeIdeographic
	AttributeImageRendering
	AttributeIn
	AttributeIn2
	AttributeIntercept
	AttributeK
	AttributeK1
	AttributeK2
	AttributeK3
	AttributeK4
	AttributeKernelMatrix
	AttributeKernelUnitLength
	AttributeKerning
	AttributeKeyPoints
	AttributeKeySplines
	AttributeKeyTimes
	AttributeLang
	AttributeLengthAdjust
	AttributeLetterSpacing
	AttributeLightingColor
	AttributeLimitingConeAngle
	AttributeLineHeight
	AttributeLocal
	AttributeMarker
	AttributeMarkerEnd
	AttributeMarkerHeight
	AttributeMarkerMid
	AttributeMarkerStart
	AttributeMarkerUnits
	AttributeMarkerWidth
	AttributeMask
	AttributeMaskContentUnits
	AttributeMaskUnits
	AttributeMathematical
	AttributeMax
	AttributeMedia
	AttributeMethod
	AttributeMin
	AttributeMode
	AttributeName
	AttributeNumOctaves
	AttributeOffset
	AttributeOnabort
	AttributeOnactivate
	AttributeOnbegin
	AttributeOnclick
	AttributeOnend
	AttributeOnerror
	AttributeOnfocusin
	AttributeOnfocusout
	AttributeOnload
	AttributeOnmousedown
	AttributeOnmousemove
	AttributeOnmouseout
	AttributeOnmouseover
	AttributeOnmouseup
	AttributeOnrepeat
	AttributeOnresize
	AttributeOnscroll
	AttributeOnunload
	AttributeOnzoom
	AttributeOpacity
	AttributeOperator
	AttributeOrder
	AttributeOrient
	AttributeOrientation
	AttributeOrigin
	AttributeOverflow
	AttributeOverlinePosition
	AttributeOverlineThickness
	AttributePanose1
	AttributePath
	AttributePathLength
	AttributePatternContentUnits
	AttributePatternTransform
	AttributePatternUnits
	AttributePointerEvents
	AttributePoints
	AttributePointsAtX
	AttributePointsAtY
	AttributePointsAtZ
	AttributePreserveAlpha
	AttributePreserveAspectRatio
	AttributePrimitiveUnits
	AttributeR
	AttributeRadius
	AttributeRefX
	AttributeRefY
	AttributeRenderingIntent
	AttributeRepeatCount
	AttributeRepeatDur
	AttributeRequiredExtensions
	AttributeRequiredFeatures
	AttributeRestart
	AttributeResult
	AttributeRotate
	AttributeRx
	AttributeRy
	AttributeScale
	AttributeSeed
	AttributeShapeRendering
	AttributeSlope
	AttributeSpacing
	AttributeSpecularConstant
	AttributeSpecularExponent
	AttributeSpreadMethod
	AttributeStartOffset
	AttributeStdDeviation
	AttributeStemh
	AttributeStemv
	AttributeStitchTiles
	AttributeStopColor
	AttributeStopOpacity
	AttributeStrikethroughPosition
	AttributeStrikethroughThickness
	AttributeString
	AttributeStroke
	AttributeStrokeDasharray
	AttributeStrokeDashoffset
	AttributeStrokeLinecap
	AttributeStrokeLinejoin
	AttributeStrokeMiterlimit
	AttributeStrokeOpacity
	AttributeStrokeWidth
	AttributeStyle
	AttributeSurfaceScale
	AttributeSystemLanguage
	AttributeTableValues
	AttributeTarget
	AttributeTargetX
	AttributeTargetY
	AttributeTextAnchor
	AttributeTextDecoration
	AttributeTextLength
	AttributeTextRendering
	AttributeTitle
	AttributeTo
	AttributeTransform
	AttributeType
	AttributeU1
	AttributeU2
	AttributeUnderlinePosition
	AttributeUnderlineThickness
	AttributeUnicode
	AttributeUnicodeBidi
	AttributeUnicodeRange
	AttributeUnitsPerEm
	AttributeVAlphabetic
	AttributeVHanging
	AttributeVIdeographic
	AttributeVMathematical
	AttributeValues
	AttributeVersion
	AttributeVertAdvY
	AttributeVertOriginX
	AttributeVertOriginY
	AttributeViewBox
	AttributeViewTarget
	AttributeVisibility
	AttributeWidth
	AttributeWidths
	AttributeWordSpacing
	AttributeWritingMode
	AttributeX
	AttributeX1
	AttributeX2
	AttributeXChannelSelector
	AttributeXHeight
	AttributeXlinkActuate
	AttributeXlinkArcrole
	AttributeXlinkHref
	AttributeXlinkRole
	AttributeXlinkShow
	AttributeXlinkTitle
	AttributeXlinkType
	AttributeXmlBase
	AttributeXmlLang
	AttributeXmlSpace
	AttributeXmlns
	AttributeXmlnsXlink
	AttributeY
	AttributeY1
	AttributeY2
	AttributeYChannelSelector
	AttributeZ
	AttributeZoomAndPan
)

var attributeNames = map[AttributeID]string{
	AttributeAccentHeight: "accent-height",
	AttributeAccumulate: "accumulate",
	AttributeAdditive: "additive",
	AttributeAlignmentBaseline: "alignment-baseline",
	AttributeAlphabetic: "alphabetic",
	AttributeAmplitude: "amplitude",
	AttributeArabicForm: "arabic-form",
	AttributeAscent: "ascent",
	AttributeAttributeName: "attributeName",
	AttributeAttributeType: "attributeType",
	AttributeAzimuth: "azimuth",
	AttributeBaseFrequency: "baseFrequency",
	AttributeBaseProfile: "baseProfile",
	AttributeBaselineShift: "baseline-shift",
	AttributeBbox: "bbox",
	AttributeBegin: "begin",
	AttributeBias: "bias",
	AttributeBy: "by",
	AttributeCalcMode: "calcMode",
	AttributeCapHeight: "cap-height",
	AttributeClass: "class",
	AttributeClip: "clip",
	AttributeClipPath: "clip-path",
	AttributeClipPathUnits: "clipPathUnits",
	AttributeClipRule: "clip-rule",
	AttributeColor: "color",
	AttributeColorInterpolation: "color-interpolation",
	AttributeColorInterpolationFilters: "color-interpolation-filters",
	AttributeColorProfile: "color-profile",
	AttributeColorRendering: "color-rendering",
	AttributeContentScriptType: "contentScriptType",
	AttributeContentStyleType: "contentStyleType",
	AttributeCursor: "cursor",
	AttributeCx: "cx",
	AttributeCy: "cy",
	AttributeD: "d",
	AttributeDescent: "descent",
	AttributeDiffuseConstant: "diffuseConstant",
	AttributeDirection: "direction",
	AttributeDisplay: "display",
	AttributeDivisor: "divisor",
	AttributeDominantBaseline: "dominant-baseline",
	AttributeDur: "dur",
	AttributeDx: "dx",
	AttributeDy: "dy",
	AttributeEdgeMode: "edgeMode",
	AttributeElevation: "elevation",
	AttributeEnableBackground: "enable-background",
	AttributeEnd: "end",
	AttributeExponent: "exponent",
	AttributeExternalResourcesRequired: "externalResourcesRequired",
	AttributeFill: "fill",
	AttributeFillOpacity: "fill-opacity",
	AttributeFillRule: "fill-rule",
	AttributeFilter: "filter",
	AttributeFilterRes: "filterRes",
	AttributeFilterUnits: "filterUnits",
	AttributeFloodColor: "flood-color",
	AttributeFloodOpacity: "flood-opacity",
	AttributeFont: "font",
	AttributeFontFamily: "font-family",
	AttributeFontSize: "font-size",
	AttributeFontSizeAdjust: "font-size-adjust",
	AttributeFontStretch: "font-stretch",
	AttributeFontStyle: "font-style",
	AttributeFontVariant: "font-variant",
	AttributeFontWeight: "font-weight",
	AttributeFormat: "format",
	AttributeFrom: "from",
	AttributeFx: "fx",
	AttributeFy: "fy",
	AttributeG1: "g1",
	AttributeG2: "g2",
	AttributeGlyphName: "glyph-name",
	AttributeGlyphOrientationHorizontal: "glyph-orientation-horizontal",
	AttributeGlyphOrientationVertical: "glyph-orientation-vertical",
	AttributeGlyphRef: "glyphRef",
	AttributeGradientTransform: "gradientTransform",
	AttributeGradientUnits: "gradientUnits",
	AttributeHanging: "hanging",
	AttributeHeight: "height",
	AttributeHorizAdvX: "horiz-adv-x",
	AttributeHorizOriginX: "horiz-origin-x",
	AttributeHorizOriginY: "horiz-origin-y",
	AttributeId: "id",
	AttributeIdeographic: "ideographic",
	AttributeImageRendering: "image-rendering",
	AttributeIn: "in",
	AttributeIn2: "in2",
	AttributeIntercept: "intercept",
	AttributeK: "k",
	AttributeK1: "k1",
	AttributeK2: "k2",
	AttributeK3: "k3",
	AttributeK4: "k4",
	AttributeKernelMatrix: "kernelMatrix",
	AttributeKernelUnitLength: "kernelUnitLength",
	AttributeKerning: "kerning",
	AttributeKeyPoints: "keyPoints",
	AttributeKeySplines: "keySplines",
	AttributeKeyTimes: "keyTimes",
	AttributeLang: "lang",
	AttributeLengthAdjust: "lengthAdjust",
	AttributeLetterSpacing: "letter-spacing",
	AttributeLightingColor: "lighting-color",
	AttributeLimitingConeAngle: "limitingConeAngle",
	AttributeLineHeight: "line-height",
	AttributeLocal: "local",
	AttributeMarker: "marker",
	AttributeMarkerEnd: "marker-end",
	AttributeMarkerHeight: "markerHeight",
	AttributeMarkerMid: "marker-mid",
	AttributeMarkerStart: "marker-start",
	AttributeMarkerUnits: "markerUnits",
	AttributeMarkerWidth: "markerWidth",
	AttributeMask: "mask",
	AttributeMaskContentUnits: "maskContentUnits",
	AttributeMaskUnits: "maskUnits",
	AttributeMathematical: "mathematical",
	AttributeMax: "max",
	AttributeMedia: "media",
	AttributeMethod: "method",
	AttributeMin: "min",
	AttributeMode: "mode",
	AttributeName: "name",
	AttributeNumOctaves: "numOctaves",
	AttributeOffset: "offset",
	AttributeOnabort: "onabort",
	AttributeOnactivate: "onactivate",
	AttributeOnbegin: "onbegin",
	AttributeOnclick: "onclick",
	AttributeOnend: "onend",
	AttributeOnerror: "onerror",
	AttributeOnfocusin: "onfocusin",
	AttributeOnfocusout: "onfocusout",
	AttributeOnload: "onload",
	AttributeOnmousedown: "onmousedown",
	AttributeOnmousemove: "onmousemove",
	AttributeOnmouseout: "onmouseout",
	AttributeOnmouseover: "onmouseover",
	AttributeOnmouseup: "onmouseup",
	AttributeOnrepeat: "onrepeat",
	AttributeOnresize: "onresize",
	AttributeOnscroll: "onscroll",
	AttributeOnunload: "onunload",
	AttributeOnzoom: "onzoom",
	AttributeOpacity: "opacity",
	AttributeOperator: "operator",
	AttributeOrder: "order",
	AttributeOrient: "orient",
	AttributeOrientation: "orientation",
	AttributeOrigin: "origin",
	AttributeOverflow: "overflow",
	AttributeOverlinePosition: "overline-position",
	AttributeOverlineThickness: "overline-thickness",
	AttributePanose1: "panose-1",
	AttributePath: "path",
	AttributePathLength: "pathLength",
	AttributePatternContentUnits: "patternContentUnits",
	AttributePatternTransform: "patternTransform",
	AttributePatternUnits: "patternUnits",
	AttributePointerEvents: "pointer-events",
	AttributePoints: "points",
	AttributePointsAtX: "pointsAtX",
	AttributePointsAtY: "pointsAtY",
	AttributePointsAtZ: "pointsAtZ",
	AttributePreserveAlpha: "preserveAlpha",
	AttributePreserveAspectRatio: "preserveAspectRatio",
	AttributePrimitiveUnits: "primitiveUnits",
	AttributeR: "r",
	AttributeRadius: "radius",
	AttributeRefX: "refX",
	AttributeRefY: "refY",
	AttributeRenderingIntent: "rendering-intent",
	AttributeRepeatCount: "repeatCount",
	AttributeRepeatDur: "repeatDur",
	AttributeRequiredExtensions: "requiredExtensions",
	AttributeRequiredFeatures: "requiredFeatures",
	AttributeRestart: "restart",
	AttributeResult: "result",
	AttributeRotate: "rotate",
	AttributeRx: "rx",
	AttributeRy: "ry",
	AttributeScale: "scale",
	AttributeSeed: "seed",
	AttributeShapeRendering: "shape-rendering",
	AttributeSlope: "slope",
	AttributeSpacing: "spacing",
	AttributeSpecularConstant: "specularConstant",
	AttributeSpecularExponent: "specularExponent",
	AttributeSpreadMethod: "spreadMethod",
	AttributeStartOffset: "startOffset",
	AttributeStdDeviation: "stdDeviation",
	AttributeStemh: "stemh",
	AttributeStemv: "stemv",
	AttributeStitchTiles: "stitchTiles",
	AttributeStopColor: "stop-color",
	AttributeStopOpacity: "stop-opacity",
	AttributeStrikethroughPosition: "strikethrough-position",
	AttributeStrikethroughThickness: "strikethrough-thickness",
	AttributeString: "string",
	AttributeStroke: "stroke",
	AttributeStrokeDasharray: "stroke-dasharray",
	AttributeStrokeDashoffset: "stroke-dashoffset",
	AttributeStrokeLinecap: "stroke-linecap",
	AttributeStrokeLinejoin: "stroke-linejoin",
	AttributeStrokeMiterlimit: "stroke-miterlimit",
	AttributeStrokeOpacity: "stroke-opacity",
	AttributeStrokeWidth: "stroke-width",
	AttributeStyle: "style",
	AttributeSurfaceScale: "surfaceScale",
	AttributeSystemLanguage: "systemLanguage",
	AttributeTableValues: "tableValues",
	AttributeTarget: "target",
	AttributeTargetX: "targetX",
	AttributeTargetY: "targetY",
	AttributeTextAnchor: "text-anchor",
	AttributeTextDecoration: "text-decoration",
	AttributeTextLength: "textLength",
	AttributeTextRendering: "text-rendering",
	AttributeTitle: "title",
	AttributeTo: "to",
	AttributeTransform: "transform",
	AttributeType: "type",
	AttributeU1: "u1",
	AttributeU2: "u2",
	AttributeUnderlinePosition: "underline-position",
	AttributeUnderlineThickness: "underline-thickness",
	AttributeUnicode: "unicode",
	AttributeUnicodeBidi: "unicode-bidi",
	AttributeUnicodeRange: "unicode-range",
	AttributeUnitsPerEm: "units-per-em",
	AttributeVAlphabetic: "v-alphabetic",
	AttributeVHanging: "v-hanging",
	AttributeVIdeographic: "v-ideographic",
	AttributeVMathematical: "v-mathematical",
	AttributeValues: "values",
	AttributeVersion: "version",
	AttributeVertAdvY: "vert-adv-y",
	AttributeVertOriginX: "vert-origin-x",
	AttributeVertOriginY: "vert-origin-y",
	AttributeViewBox: "viewBox",
	AttributeViewTarget: "viewTarget",
	AttributeVisibility: "visibility",
	AttributeWidth: "width",
	AttributeWidths: "widths",
	AttributeWordSpacing: "word-spacing",
	AttributeWritingMode: "writing-mode",
	AttributeX: "x",
	AttributeX1: "x1",
	AttributeX2: "x2",
	AttributeXChannelSelector: "xChannelSelector",
	AttributeXHeight: "x-height",
	AttributeXlinkActuate: "xlink:actuate",
	AttributeXlinkArcrole: "xlink:arcrole",
	AttributeXlinkHref: "xlink:href",
	AttributeXlinkRole: "xlink:role",
	AttributeXlinkShow: "xlink:show",
	AttributeXlinkTitle: "xlink:title",
	AttributeXlinkType: "xlink:type",
	AttributeXmlBase: "xml:base",
	AttributeXmlLang: "xml:lang",
	AttributeXmlSpace: "xml:space",
	AttributeXmlns: "xmlns",
	AttributeXmlnsXlink: "xmlns:xlink",
	AttributeY: "y",
	AttributeY1: "y1",
	AttributeY2: "y2",
	AttributeYChannelSelector: "yChannelSelector",
	AttributeZ: "z",
	AttributeZoomAndPan: "zoomAndPan",
}

var attributeByName = map[string]AttributeID{
	"accent-height": AttributeAccentHeight,
	"accumulate": AttributeAccumulate,
	"additive": AttributeAdditive,
	"alignment-baseline": AttributeAlignmentBaseline,
	"alphabetic": AttributeAlphabetic,
	"amplitude": AttributeAmplitude,
	"arabic-form": AttributeArabicForm,
	"ascent": AttributeAscent,
	"attributeName": AttributeAttributeName,
	"attributeType": AttributeAttributeType,
	"azimuth": AttributeAzimuth,
	"baseFrequency": AttributeBaseFrequency,
	"baseProfile": AttributeBaseProfile,
	"baseline-shift": AttributeBaselineShift,
	"bbox": AttributeBbox,
	"begin": AttributeBegin,
	"bias": AttributeBias,
	"by": AttributeBy,
	"calcMode": AttributeCalcMode,
	"cap-height": AttributeCapHeight,
	"class": AttributeClass,
	"clip": AttributeClip,
	"clip-path": AttributeClipPath,
	"clipPathUnits": AttributeClipPathUnits,
	"clip-rule": AttributeClipRule,
	"color": AttributeColor,
	"color-interpolation": AttributeColorInterpolation,
	"color-interpolation-filters": AttributeColorInterpolationFilters,
	"color-profile": AttributeColorProfile,
	"color-rendering": AttributeColorRendering,
	"contentScriptType": AttributeContentScriptType,
	"contentStyleType": AttributeContentStyleType,
	"cursor": AttributeCursor,
	"cx": AttributeCx,
	"cy": AttributeCy,
	"d": AttributeD,
	"descent": AttributeDescent,
	"diffuseConstant": AttributeDiffuseConstant,
	"direction": AttributeDirection,
	"display": AttributeDisplay,
	"divisor": AttributeDivisor,
	"dominant-baseline": AttributeDominantBaseline,
	"dur": AttributeDur,
	"dx": AttributeDx,
	"dy": AttributeDy,
	"edgeMode": AttributeEdgeMode,
	"elevation": AttributeElevation,
	"enable-background": AttributeEnableBackground,
	"end": AttributeEnd,
	"exponent": AttributeExponent,
	"externalResourcesRequired": AttributeExternalResourcesRequired,
	"fill": AttributeFill,
	"fill-opacity": AttributeFillOpacity,
	"fill-rule": AttributeFillRule,
	"filter": AttributeFilter,
	"filterRes": AttributeFilterRes,
	"filterUnits": AttributeFilterUnits,
	"flood-color": AttributeFloodColor,
	"flood-opacity": AttributeFloodOpacity,
	"font": AttributeFont,
	"font-family": AttributeFontFamily,
	"font-size": AttributeFontSize,
	"font-size-adjust": AttributeFontSizeAdjust,
	"font-stretch": AttributeFontStretch,
	"font-style": AttributeFontStyle,
	"font-variant": AttributeFontVariant,
	"font-weight": AttributeFontWeight,
	"format": AttributeFormat,
	"from": AttributeFrom,
	"fx": AttributeFx,
	"fy": AttributeFy,
	"g1": AttributeG1,
	"g2": AttributeG2,
	"glyph-name": AttributeGlyphName,
	"glyph-orientation-horizontal": AttributeGlyphOrientationHorizontal,
	"glyph-orientation-vertical": AttributeGlyphOrientationVertical,
	"glyphRef": AttributeGlyphRef,
	"gradientTransform": AttributeGradientTransform,
	"gradientUnits": AttributeGradientUnits,
	"hanging": AttributeHanging,
	"height": AttributeHeight,
	"horiz-adv-x": AttributeHorizAdvX,
	"horiz-origin-x": AttributeHorizOriginX,
	"horiz-origin-y": AttributeHorizOriginY,
	"id": AttributeId,
	"ideographic": AttributeIdeographic,
	"image-rendering": AttributeImageRendering,
	"in": AttributeIn,
	"in2": AttributeIn2,
	"intercept": AttributeIntercept,
	"k": AttributeK,
	"k1": AttributeK1,
	"k2": AttributeK2,
	"k3": AttributeK3,
	"k4": AttributeK4,
	"kernelMatrix": AttributeKernelMatrix,
	"kernelUnitLength": AttributeKernelUnitLength,
	"kerning": AttributeKerning,
	"keyPoints": AttributeKeyPoints,
	"keySplines": AttributeKeySplines,
	"keyTimes": AttributeKeyTimes,
	"lang": AttributeLang,
	"lengthAdjust": AttributeLengthAdjust,
	"letter-spacing": AttributeLetterSpacing,
	"lighting-color": AttributeLightingColor,
	"limitingConeAngle": AttributeLimitingConeAngle,
	"line-height": AttributeLineHeight,
	"local": AttributeLocal,
	"marker": AttributeMarker,
	"marker-end": AttributeMarkerEnd,
	"markerHeight": AttributeMarkerHeight,
	"marker-mid": AttributeMarkerMid,
	"marker-start": AttributeMarkerStart,
	"markerUnits": AttributeMarkerUnits,
	"markerWidth": AttributeMarkerWidth,
	"mask": AttributeMask,
	"maskContentUnits": AttributeMaskContentUnits,
	"maskUnits": AttributeMaskUnits,
	"mathematical": AttributeMathematical,
	"max": AttributeMax,
	"media": AttributeMedia,
	"method": AttributeMethod,
	"min": AttributeMin,
	"mode": AttributeMode,
	"name": AttributeName,
	"numOctaves": AttributeNumOctaves,
	"offset": AttributeOffset,
	"onabort": AttributeOnabort,
	"onactivate": AttributeOnactivate,
	"onbegin": AttributeOnbegin,
	"onclick": AttributeOnclick,
	"onend": AttributeOnend,
	"onerror": AttributeOnerror,
	"onfocusin": AttributeOnfocusin,
	"onfocusout": AttributeOnfocusout,
	"onload": AttributeOnload,
	"onmousedown": AttributeOnmousedown,
	"onmousemove": AttributeOnmousemove,
	"onmouseout": AttributeOnmouseout,
	"onmouseover": AttributeOnmouseover,
	"onmouseup": AttributeOnmouseup,
	"onrepeat": AttributeOnrepeat,
	"onresize": AttributeOnresize,
	"onscroll": AttributeOnscroll,
	"onunload": AttributeOnunload,
	"onzoom": AttributeOnzoom,
	"opacity": AttributeOpacity,
	"operator": AttributeOperator,
	"order": AttributeOrder,
	"orient": AttributeOrient,
	"orientation": AttributeOrientation,
	"origin": AttributeOrigin,
	"overflow": AttributeOverflow,
	"overline-position": AttributeOverlinePosition,
	"overline-thickness": AttributeOverlineThickness,
	"panose-1": AttributePanose1,
	"path": AttributePath,
	"pathLength": AttributePathLength,
	"patternContentUnits": AttributePatternContentUnits,
	"patternTransform": AttributePatternTransform,
	"patternUnits": AttributePatternUnits,
	"pointer-events": AttributePointerEvents,
	"points": AttributePoints,
	"pointsAtX": AttributePointsAtX,
	"pointsAtY": AttributePointsAtY,
	"pointsAtZ": AttributePointsAtZ,
	"preserveAlpha": AttributePreserveAlpha,
	"preserveAspectRatio": AttributePreserveAspectRatio,
	"primitiveUnits": AttributePrimitiveUnits,
	"r": AttributeR,
	"radius": AttributeRadius,
	"refX": AttributeRefX,
	"refY": AttributeRefY,
	"rendering-intent": AttributeRenderingIntent,
	"repeatCount": AttributeRepeatCount,
	"repeatDur": AttributeRepeatDur,
	"requiredExtensions": AttributeRequiredExtensions,
	"requiredFeatures": AttributeRequiredFeatures,
	"restart": AttributeRestart,
	"result": AttributeResult,
	"rotate": AttributeRotate,
	"rx": AttributeRx,
	"ry": AttributeRy,
	"scale": AttributeScale,
	"seed": AttributeSeed,
	"shape-rendering": AttributeShapeRendering,
	"slope": AttributeSlope,
	"spacing": AttributeSpacing,
	"specularConstant": AttributeSpecularConstant,
	"specularExponent": AttributeSpecularExponent,
	"spreadMethod": AttributeSpreadMethod,
	"startOffset": AttributeStartOffset,
	"stdDeviation": AttributeStdDeviation,
	"stemh": AttributeStemh,
	"stemv": AttributeStemv,
	"stitchTiles": AttributeStitchTiles,
	"stop-color": AttributeStopColor,
	"stop-opacity": AttributeStopOpacity,
	"strikethrough-position": AttributeStrikethroughPosition,
	"strikethrough-thickness": AttributeStrikethroughThickness,
	"string": AttributeString,
	"stroke": AttributeStroke,
	"stroke-dasharray": AttributeStrokeDasharray,
	"stroke-dashoffset": AttributeStrokeDashoffset,
	"stroke-linecap": AttributeStrokeLinecap,
	"stroke-linejoin": AttributeStrokeLinejoin,
	"stroke-miterlimit": AttributeStrokeMiterlimit,
	"stroke-opacity": AttributeStrokeOpacity,
	"stroke-width": AttributeStrokeWidth,
	"style": AttributeStyle,
	"surfaceScale": AttributeSurfaceScale,
	"systemLanguage": AttributeSystemLanguage,
	"tableValues": AttributeTableValues,
	"target": AttributeTarget,
	"targetX": AttributeTargetX,
	"targetY": AttributeTargetY,
	"text-anchor": AttributeTextAnchor,
	"text-decoration": AttributeTextDecoration,
	"textLength": AttributeTextLength,
	"text-rendering": AttributeTextRendering,
	"title": AttributeTitle,
	"to": AttributeTo,
	"transform": AttributeTransform,
	"type": AttributeType,
	"u1": AttributeU1,
	"u2": AttributeU2,
	"underline-position": AttributeUnderlinePosition,
	"underline-thickness": AttributeUnderlineThickness,
	"unicode": AttributeUnicode,
	"unicode-bidi": AttributeUnicodeBidi,
	"unicode-range": AttributeUnicodeRange,
	"units-per-em": AttributeUnitsPerEm,
	"v-alphabetic": AttributeVAlphabetic,
	"v-hanging": AttributeVHanging,
	"v-ideographic": AttributeVIdeographic,
	"v-mathematical": AttributeVMathematical,
	"values": AttributeValues,
	"version": AttributeVersion,
	"vert-adv-y": AttributeVertAdvY,
	"vert-origin-x": AttributeVertOriginX,
	"vert-origin-y": AttributeVertOriginY,
	"viewBox": AttributeViewBox,
	"viewTarget": AttributeViewTarget,
	"visibility": AttributeVisibility,
	"width": AttributeWidth,
	"widths": AttributeWidths,
	"word-spacing": AttributeWordSpacing,
	"writing-mode": AttributeWritingMode,
	"x": AttributeX,
	"x1": AttributeX1,
	"x2": AttributeX2,
	"xChannelSelector": AttributeXChannelSelector,
	"x-height": AttributeXHeight,
	"xlink:actuate": AttributeXlinkActuate,
	"xlink:arcrole": AttributeXlinkArcrole,
	"xlink:href": AttributeXlinkHref,
	"xlink:role": AttributeXlinkRole,
	"xlink:show": AttributeXlinkShow,
	"xlink:title": AttributeXlinkTitle,
	"xlink:type": AttributeXlinkType,
	"xml:base": AttributeXmlBase,
	"xml:lang": AttributeXmlLang,
	"xml:space": AttributeXmlSpace,
	"xmlns": AttributeXmlns,
	"xmlns:xlink": AttributeXmlnsXlink,
	"y": AttributeY,
	"y1": AttributeY1,
	"y2": AttributeY2,
	"yChannelSelector": AttributeYChannelSelector,
	"z": AttributeZ,
	"zoomAndPan": AttributeZoomAndPan,
}

// String returns the canonical SVG name for id, or "" for AttributeUnknown.
func (id AttributeID) String() string {
	return attributeNames[id]
}

// LookupAttribute resolves a canonical SVG attribute name to its id.
// The second return value is false for unrecognized names.
func LookupAttribute(name string) (AttributeID, bool) {
	id, ok := attributeByName[name]
	return id, ok
}

// ValueID identifies a recognized SVG value name.
type ValueID int

const (
	ValueUnknown ValueID = iota
	ValueAccumulate
	ValueAfterEdge
	ValueAll
	ValueAlphabetic
	ValueAuto
	ValueBaseline
	ValueBeforeEdge
	ValueBevel
	ValueBidiOverride
	ValueBlink
	ValueBlock
	ValueBold
	ValueBolder
	ValueButt
	ValueCentral
	ValueCollapse
	ValueCompact
	ValueCondensed
	ValueCrispEdges
	ValueCurrentColor
	ValueEmbed
	ValueEnd
	ValueEvenodd
	ValueExpanded
	ValueExtraCondensed
	ValueExtraExpanded
	ValueFill
	ValueGeometricPrecision
	ValueHanging
	ValueHidden
	ValueIdeographic
	ValueInherit
	ValueInline
	ValueInlineTable
	ValueItalic
	ValueLarge
	ValueLarger
	ValueLighter
	ValueLineThrough
	ValueLinearRGB
	ValueListItem
	ValueLr
	ValueLrTb
	ValueLtr
	ValueMarker
	ValueMathematical
	ValueMedium
	ValueMiddle
	ValueMiter
	ValueN100
	ValueN200
	ValueN300
	ValueN400
	ValueN500
	ValueN600
	ValueN700
	ValueN800
	ValueN900
	ValueNarrower
	ValueNoChange
	ValueNone
	ValueNonzero
	ValueNormal
	ValueObjectBoundingBox
	ValueOblique
	ValueOptimizeLegibility
	ValueOptimizeQuality
	ValueOptimizeSpeed
	ValueOverline
	ValuePad
	ValuePainted
	ValueReflect
	ValueRepeat
	ValueResetSize
	ValueRl
	ValueRlTb
	ValueRound
	ValueRtl
	ValueRunIn
	ValueSRGB
	ValueScroll
	ValueSemiCondensed
	ValueSemiExpanded
	ValueSmall
	ValueSmallCaps
	ValueSmaller
	ValueSquare
	ValueStart
	ValueStroke
	ValueSub
	ValueSuper
	ValueTable
	ValueTableCaption
	ValueTableCell
	ValueTableColumn
	ValueTableColumnGroup
	ValueTableFooterGroup
	ValueTableHeaderGroup
	ValueTableRow
	ValueTableRowGroup
	ValueTb
	ValueTbRl
	ValueTextAfterEdge
	ValueTextBeforeEdge
	ValueUltraCondensed
	ValueUltraExpanded
	ValueUnderline
	ValueUseScript
	ValueUserSpaceOnUse
	ValueVisible
	ValueVisibleFill
	ValueVisiblePainted
	ValueVisibleStroke
	ValueWider
	ValueXLarge
	ValueXSmall
	ValueXxLarge
	ValueXxSmall
)

var valueNames = map[ValueID]string{
	ValueAccumulate: "accumulate",
	ValueAfterEdge: "after-edge",
	ValueAll: "all",
	ValueAlphabetic: "alphabetic",
	ValueAuto: "auto",
	ValueBaseline: "baseline",
	ValueBeforeEdge: "before-edge",
	ValueBevel: "bevel",
	ValueBidiOverride: "bidi-override",
	ValueBlink: "blink",
	ValueBlock: "block",
	ValueBold: "bold",
	ValueBolder: "bolder",
	ValueButt: "butt",
	ValueCentral: "central",
	ValueCollapse: "collapse",
	ValueCompact: "compact",
	ValueCondensed: "condensed",
	ValueCrispEdges: "crispEdges",
	ValueCurrentColor: "currentColor",
	ValueEmbed: "embed",
	ValueEnd: "end",
	ValueEvenodd: "evenodd",
	ValueExpanded: "expanded",
	ValueExtraCondensed: "extra-condensed",
	ValueExtraExpanded: "extra-expanded",
	ValueFill: "fill",
	ValueGeometricPrecision: "geometricPrecision",
	ValueHanging: "hanging",
	ValueHidden: "hidden",
	ValueIdeographic: "ideographic",
	ValueInherit: "inherit",
	ValueInline: "inline",
	ValueInlineTable: "inline-table",
	ValueItalic: "italic",
	ValueLarge: "large",
	ValueLarger: "larger",
	ValueLighter: "lighter",
	ValueLineThrough: "line-through",
	ValueLinearRGB: "linearRGB",
	ValueListItem: "list-item",
	ValueLr: "lr",
	ValueLrTb: "lr-tb",
	ValueLtr: "ltr",
	ValueMarker: "marker",
	ValueMathematical: "mathematical",
	ValueMedium: "medium",
	ValueMiddle: "middle",
	ValueMiter: "miter",
	ValueN100: "100",
	ValueN200: "200",
	ValueN300: "300",
	ValueN400: "400",
	ValueN500: "500",
	ValueN600: "600",
	ValueN700: "700",
	ValueN800: "800",
	ValueN900: "900",
	ValueNarrower: "narrower",
	ValueNoChange: "no-change",
	ValueNone: "none",
	ValueNonzero: "nonzero",
	ValueNormal: "normal",
	ValueObjectBoundingBox: "objectBoundingBox",
	ValueOblique: "oblique",
	ValueOptimizeLegibility: "optimizeLegibility",
	ValueOptimizeQuality: "optimizeQuality",
	ValueOptimizeSpeed: "optimizeSpeed",
	ValueOverline: "overline",
	ValuePad: "pad",
	ValuePainted: "painted",
	ValueReflect: "reflect",
	ValueRepeat: "repeat",
	ValueResetSize: "reset-size",
	ValueRl: "rl",
	ValueRlTb: "rl-tb",
	ValueRound: "round",
	ValueRtl: "rtl",
	ValueRunIn: "run-in",
	ValueSRGB: "sRGB",
	ValueScroll: "scroll",
	ValueSemiCondensed: "semi-condensed",
	ValueSemiExpanded: "semi-expanded",
	ValueSmall: "small",
	ValueSmallCaps: "small-caps",
	ValueSmaller: "smaller",
	ValueSquare: "square",
	ValueStart: "start",
	ValueStroke: "stroke",
	ValueSub: "sub",
	ValueSuper: "super",
	ValueTable: "table",
	ValueTableCaption: "table-caption",
	ValueTableCell: "table-cell",
	ValueTableColumn: "table-column",
	ValueTableColumnGroup: "table-column-group",
	ValueTableFooterGroup: "table-footer-group",
	ValueTableHeaderGroup: "table-header-group",
	ValueTableRow: "table-row",
	ValueTableRowGroup: "table-row-group",
	ValueTb: "tb",
	ValueTbRl: "tb-rl",
	ValueTextAfterEdge: "text-after-edge",
	ValueTextBeforeEdge: "text-before-edge",
	ValueUltraCondensed: "ultra-condensed",
	ValueUltraExpanded: "ultra-expanded",
	ValueUnderline: "underline",
	ValueUseScript: "use-script",
	ValueUserSpaceOnUse: "userSpaceOnUse",
	ValueVisible: "visible",
	ValueVisibleFill: "visibleFill",
	ValueVisiblePainted: "visiblePainted",
	ValueVisibleStroke: "visibleStroke",
	ValueWider: "wider",
	ValueXLarge: "x-large",
	ValueXSmall: "x-small",
	ValueXxLarge: "xx-large",
	ValueXxSmall: "xx-small",
}

var valueByName = map[string]ValueID{
	"accumulate": ValueAccumulate,
	"after-edge": ValueAfterEdge,
	"all": ValueAll,
	"alphabetic": ValueAlphabetic,
	"auto": ValueAuto,
	"baseline": ValueBaseline,
	"before-edge": ValueBeforeEdge,
	"bevel": ValueBevel,
	"bidi-override": ValueBidiOverride,
	"blink": ValueBlink,
	"block": ValueBlock,
	"bold": ValueBold,
	"bolder": ValueBolder,
	"butt": ValueButt,
	"central": ValueCentral,
	"collapse": ValueCollapse,
	"compact": ValueCompact,
	"condensed": ValueCondensed,
	"crispEdges": ValueCrispEdges,
	"currentColor": ValueCurrentColor,
	"embed": ValueEmbed,
	"end": ValueEnd,
	"evenodd": ValueEvenodd,
	"expanded": ValueExpanded,
	"extra-condensed": ValueExtraCondensed,
	"extra-expanded": ValueExtraExpanded,
	"fill": ValueFill,
	"geometricPrecision": ValueGeometricPrecision,
	"hanging": ValueHanging,
	"hidden": ValueHidden,
	"ideographic": ValueIdeographic,
	"inherit": ValueInherit,
	"inline": ValueInline,
	"inline-table": ValueInlineTable,
	"italic": ValueItalic,
	"large": ValueLarge,
	"larger": ValueLarger,
	"lighter": ValueLighter,
	"line-through": ValueLineThrough,
	"linearRGB": ValueLinearRGB,
	"list-item": ValueListItem,
	"lr": ValueLr,
	"lr-tb": ValueLrTb,
	"ltr": ValueLtr,
	"marker": ValueMarker,
	"mathematical": ValueMathematical,
	"medium": ValueMedium,
	"middle": ValueMiddle,
	"miter": ValueMiter,
	"100": ValueN100,
	"200": ValueN200,
	"300": ValueN300,
	"400": ValueN400,
	"500": ValueN500,
	"600": ValueN600,
	"700": ValueN700,
	"800": ValueN800,
	"900": ValueN900,
	"narrower": ValueNarrower,
	"no-change": ValueNoChange,
	"none": ValueNone,
	"nonzero": ValueNonzero,
	"normal": ValueNormal,
	"objectBoundingBox": ValueObjectBoundingBox,
	"oblique": ValueOblique,
	"optimizeLegibility": ValueOptimizeLegibility,
	"optimizeQuality": ValueOptimizeQuality,
	"optimizeSpeed": ValueOptimizeSpeed,
	"overline": ValueOverline,
	"pad": ValuePad,
	"painted": ValuePainted,
	"reflect": ValueReflect,
	"repeat": ValueRepeat,
	"reset-size": ValueResetSize,
	"rl": ValueRl,
	"rl-tb": ValueRlTb,
	"round": ValueRound,
	"rtl": ValueRtl,
	"run-in": ValueRunIn,
	"sRGB": ValueSRGB,
	"scroll": ValueScroll,
	"semi-condensed": ValueSemiCondensed,
	"semi-expanded": ValueSemiExpanded,
	"small": ValueSmall,
	"small-caps": ValueSmallCaps,
	"smaller": ValueSmaller,
	"square": ValueSquare,
	"start": ValueStart,
	"stroke": ValueStroke,
	"sub": ValueSub,
	"super": ValueSuper,
	"table": ValueTable,
	"table-caption": ValueTableCaption,
	"table-cell": ValueTableCell,
	"table-column": ValueTableColumn,
	"table-column-group": ValueTableColumnGroup,
	"table-footer-group": ValueTableFooterGroup,
	"table-header-group": ValueTableHeaderGroup,
	"table-row": ValueTableRow,
	"table-row-group": ValueTableRowGroup,
	"tb": ValueTb,
	"tb-rl": ValueTbRl,
	"text-after-edge": ValueTextAfterEdge,
	"text-before-edge": ValueTextBeforeEdge,
	"ultra-condensed": ValueUltraCondensed,
	"ultra-expanded": ValueUltraExpanded,
	"underline": ValueUnderline,
	"use-script": ValueUseScript,
	"userSpaceOnUse": ValueUserSpaceOnUse,
	"visible": ValueVisible,
	"visibleFill": ValueVisibleFill,
	"visiblePainted": ValueVisiblePainted,
	"visibleStroke": ValueVisibleStroke,
	"wider": ValueWider,
	"x-large": ValueXLarge,
	"x-small": ValueXSmall,
	"xx-large": ValueXxLarge,
	"xx-small": ValueXxSmall,
}

// String returns the canonical SVG name for id, or "" for ValueUnknown.
func (id ValueID) String() string {
	return valueNames[id]
}

// LookupValue resolves a canonical SVG value name to its id.
// The second return value is false for unrecognized names.
func LookupValue(name string) (ValueID, bool) {
	id, ok := valueByName[name]
	return id, ok
}
