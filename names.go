package svgdom

// ElementID identifies a known SVG 1.1 element name.
type ElementID int

const (
	ElUnknown ElementID = iota
	ElA
	ElAltGlyph
	ElAltGlyphDef
	ElAltGlyphItem
	ElAnimate
	ElAnimateColor
	ElAnimateMotion
	ElAnimateTransform
	ElCircle
	ElClipPath
	ElColorProfile
	ElCursorElement
	ElDefs
	ElDesc
	ElEllipse
	ElFeBlend
	ElFeColorMatrix
	ElFeComponentTransfer
	ElFeComposite
	ElFeConvolveMatrix
	ElFeDiffuseLighting
	ElFeDisplacementMap
	ElFeDistantLight
	ElFeFlood
	ElFeFuncA
	ElFeFuncB
	ElFeFuncG
	ElFeFuncR
	ElFeGaussianBlur
	ElFeImage
	ElFeMerge
	ElFeMergeNode
	ElFeMorphology
	ElFeOffset
	ElFePointLight
	ElFeSpecularLighting
	ElFeSpotLight
	ElFeTile
	ElFeTurbulence
	ElFilter
	ElFont
	ElFontFace
	ElFontFaceFormat
	ElFontFaceName
	ElFontFaceSrc
	ElFontFaceURI
	ElForeignObject
	ElG
	ElGlyph
	ElGlyphRef
	ElHkern
	ElImage
	ElLine
	ElLinearGradient
	ElMarker
	ElMask
	ElMetadata
	ElMissingGlyph
	ElMpath
	ElPath
	ElPattern
	ElPolygon
	ElPolyline
	ElRadialGradient
	ElRect
	ElScript
	ElSet
	ElStop
	ElStyle
	ElSVG
	ElSwitch
	ElSymbol
	ElText
	ElTextPath
	ElTitle
	ElTref
	ElTspan
	ElUse
	ElView
	ElVkern
)

var elementNames = map[ElementID]string{
	ElA:                   "a",
	ElAltGlyph:            "altGlyph",
	ElAltGlyphDef:         "altGlyphDef",
	ElAltGlyphItem:        "altGlyphItem",
	ElAnimate:             "animate",
	ElAnimateColor:        "animateColor",
	ElAnimateMotion:       "animateMotion",
	ElAnimateTransform:    "animateTransform",
	ElCircle:              "circle",
	ElClipPath:            "clipPath",
	ElColorProfile:        "color-profile",
	ElCursorElement:       "cursor",
	ElDefs:                "defs",
	ElDesc:                "desc",
	ElEllipse:             "ellipse",
	ElFeBlend:             "feBlend",
	ElFeColorMatrix:       "feColorMatrix",
	ElFeComponentTransfer: "feComponentTransfer",
	ElFeComposite:         "feComposite",
	ElFeConvolveMatrix:    "feConvolveMatrix",
	ElFeDiffuseLighting:   "feDiffuseLighting",
	ElFeDisplacementMap:   "feDisplacementMap",
	ElFeDistantLight:      "feDistantLight",
	ElFeFlood:             "feFlood",
	ElFeFuncA:             "feFuncA",
	ElFeFuncB:             "feFuncB",
	ElFeFuncG:             "feFuncG",
	ElFeFuncR:             "feFuncR",
	ElFeGaussianBlur:      "feGaussianBlur",
	ElFeImage:             "feImage",
	ElFeMerge:             "feMerge",
	ElFeMergeNode:         "feMergeNode",
	ElFeMorphology:        "feMorphology",
	ElFeOffset:            "feOffset",
	ElFePointLight:        "fePointLight",
	ElFeSpecularLighting:  "feSpecularLighting",
	ElFeSpotLight:         "feSpotLight",
	ElFeTile:              "feTile",
	ElFeTurbulence:        "feTurbulence",
	ElFilter:              "filter",
	ElFont:                "font",
	ElFontFace:            "font-face",
	ElFontFaceFormat:      "font-face-format",
	ElFontFaceName:        "font-face-name",
	ElFontFaceSrc:         "font-face-src",
	ElFontFaceURI:         "font-face-uri",
	ElForeignObject:       "foreignObject",
	ElG:                   "g",
	ElGlyph:               "glyph",
	ElGlyphRef:            "glyphRef",
	ElHkern:               "hkern",
	ElImage:               "image",
	ElLine:                "line",
	ElLinearGradient:      "linearGradient",
	ElMarker:              "marker",
	ElMask:                "mask",
	ElMetadata:            "metadata",
	ElMissingGlyph:        "missing-glyph",
	ElMpath:               "mpath",
	ElPath:                "path",
	ElPattern:             "pattern",
	ElPolygon:             "polygon",
	ElPolyline:            "polyline",
	ElRadialGradient:      "radialGradient",
	ElRect:                "rect",
	ElScript:              "script",
	ElSet:                 "set",
	ElStop:                "stop",
	ElStyle:               "style",
	ElSVG:                 "svg",
	ElSwitch:              "switch",
	ElSymbol:              "symbol",
	ElText:                "text",
	ElTextPath:            "textPath",
	ElTitle:               "title",
	ElTref:                "tref",
	ElTspan:               "tspan",
	ElUse:                 "use",
	ElView:                "view",
	ElVkern:               "vkern",
}

var elementIDs map[string]ElementID

func init() {
	elementIDs = make(map[string]ElementID, len(elementNames))
	for id, name := range elementNames {
		elementIDs[name] = id
	}
}

// LookupElement resolves a canonical element name. The lookup is
// case-sensitive; unrecognized names return ElUnknown.
func LookupElement(name string) ElementID {
	return elementIDs[name]
}

func (id ElementID) String() string {
	return elementNames[id]
}

// IsGradient reports whether the element is linearGradient or radialGradient.
func (id ElementID) IsGradient() bool {
	return id == ElLinearGradient || id == ElRadialGradient
}

// IsPaintServer reports whether the element may be referenced by fill/stroke.
func (id ElementID) IsPaintServer() bool {
	return id.IsGradient() || id == ElPattern
}

// IsShape reports whether the element is a basic shape or path.
func (id ElementID) IsShape() bool {
	switch id {
	case ElCircle, ElEllipse, ElLine, ElPath, ElPolygon, ElPolyline, ElRect:
		return true
	}
	return false
}

// IsContainer reports whether the element may hold graphics children.
func (id ElementID) IsContainer() bool {
	switch id {
	case ElA, ElDefs, ElG, ElGlyph, ElMarker, ElMask, ElMissingGlyph,
		ElPattern, ElSVG, ElSwitch, ElSymbol:
		return true
	}
	return false
}

// AttributeID identifies a known SVG 1.1 attribute name.
type AttributeID int

const (
	AttrUnknown AttributeID = iota
	AttrAccentHeight
	AttrAccumulate
	AttrAdditive
	AttrAlignmentBaseline
	AttrAmplitude
	AttrAscent
	AttrAttributeName
	AttrAttributeType
	AttrAzimuth
	AttrBaseFrequency
	AttrBaseProfile
	AttrBaselineShift
	AttrBegin
	AttrBias
	AttrBy
	AttrCalcMode
	AttrClass
	AttrClip
	AttrClipPath
	AttrClipPathUnits
	AttrClipRule
	AttrColor
	AttrColorInterpolation
	AttrColorInterpolationFilters
	AttrColorProfile
	AttrColorRendering
	AttrCursor
	AttrCx
	AttrCy
	AttrD
	AttrDiffuseConstant
	AttrDirection
	AttrDisplay
	AttrDivisor
	AttrDominantBaseline
	AttrDur
	AttrDx
	AttrDy
	AttrEdgeMode
	AttrElevation
	AttrEnableBackground
	AttrEnd
	AttrExponent
	AttrExternalResourcesRequired
	AttrFill
	AttrFillOpacity
	AttrFillRule
	AttrFilter
	AttrFilterUnits
	AttrFloodColor
	AttrFloodOpacity
	AttrFont
	AttrFontFamily
	AttrFontSize
	AttrFontSizeAdjust
	AttrFontStretch
	AttrFontStyle
	AttrFontVariant
	AttrFontWeight
	AttrFrom
	AttrFx
	AttrFy
	AttrGlyphOrientationHorizontal
	AttrGlyphOrientationVertical
	AttrGradientTransform
	AttrGradientUnits
	AttrHeight
	AttrHref
	AttrID
	AttrImageRendering
	AttrIn
	AttrIn2
	AttrIntercept
	AttrK1
	AttrK2
	AttrK3
	AttrK4
	AttrKernelMatrix
	AttrKernelUnitLength
	AttrKerning
	AttrKeyPoints
	AttrKeySplines
	AttrKeyTimes
	AttrLengthAdjust
	AttrLetterSpacing
	AttrLightingColor
	AttrLimitingConeAngle
	AttrMarker
	AttrMarkerEnd
	AttrMarkerHeight
	AttrMarkerMid
	AttrMarkerStart
	AttrMarkerUnits
	AttrMarkerWidth
	AttrMask
	AttrMaskContentUnits
	AttrMaskUnits
	AttrMax
	AttrMedia
	AttrMethod
	AttrMin
	AttrMode
	AttrNumOctaves
	AttrOffset
	AttrOnAbort
	AttrOnActivate
	AttrOnBegin
	AttrOnClick
	AttrOnEnd
	AttrOnError
	AttrOnFocusIn
	AttrOnFocusOut
	AttrOnLoad
	AttrOnMouseDown
	AttrOnMouseMove
	AttrOnMouseOut
	AttrOnMouseOver
	AttrOnMouseUp
	AttrOnRepeat
	AttrOnResize
	AttrOnScroll
	AttrOnUnload
	AttrOnZoom
	AttrOpacity
	AttrOperator
	AttrOrder
	AttrOrient
	AttrOverflow
	AttrPathLength
	AttrPatternContentUnits
	AttrPatternTransform
	AttrPatternUnits
	AttrPointerEvents
	AttrPoints
	AttrPointsAtX
	AttrPointsAtY
	AttrPointsAtZ
	AttrPreserveAlpha
	AttrPreserveAspectRatio
	AttrPrimitiveUnits
	AttrR
	AttrRadius
	AttrRefX
	AttrRefY
	AttrRepeatCount
	AttrRepeatDur
	AttrRequiredExtensions
	AttrRequiredFeatures
	AttrRestart
	AttrResult
	AttrRotate
	AttrRx
	AttrRy
	AttrScale
	AttrSeed
	AttrShapeRendering
	AttrSlope
	AttrSpacing
	AttrSpecularConstant
	AttrSpecularExponent
	AttrSpreadMethod
	AttrStartOffset
	AttrStdDeviation
	AttrStitchTiles
	AttrStopColor
	AttrStopOpacity
	AttrStroke
	AttrStrokeDasharray
	AttrStrokeDashoffset
	AttrStrokeLinecap
	AttrStrokeLinejoin
	AttrStrokeMiterlimit
	AttrStrokeOpacity
	AttrStrokeWidth
	AttrStyle
	AttrSurfaceScale
	AttrSystemLanguage
	AttrTableValues
	AttrTarget
	AttrTargetX
	AttrTargetY
	AttrTextAnchor
	AttrTextDecoration
	AttrTextLength
	AttrTextRendering
	AttrTo
	AttrTransform
	AttrType
	AttrUnicodeBidi
	AttrValues
	AttrVersion
	AttrViewBox
	AttrVisibility
	AttrWidth
	AttrWordSpacing
	AttrWritingMode
	AttrX
	AttrX1
	AttrX2
	AttrXChannelSelector
	AttrXmlBase
	AttrXmlLang
	AttrXmlSpace
	AttrY
	AttrY1
	AttrY2
	AttrYChannelSelector
	AttrZ
	AttrZoomAndPan
)

var attributeNames = map[AttributeID]string{
	AttrAccentHeight:               "accent-height",
	AttrAccumulate:                 "accumulate",
	AttrAdditive:                   "additive",
	AttrAlignmentBaseline:          "alignment-baseline",
	AttrAmplitude:                  "amplitude",
	AttrAscent:                     "ascent",
	AttrAttributeName:              "attributeName",
	AttrAttributeType:              "attributeType",
	AttrAzimuth:                    "azimuth",
	AttrBaseFrequency:              "baseFrequency",
	AttrBaseProfile:                "baseProfile",
	AttrBaselineShift:              "baseline-shift",
	AttrBegin:                      "begin",
	AttrBias:                       "bias",
	AttrBy:                         "by",
	AttrCalcMode:                   "calcMode",
	AttrClass:                      "class",
	AttrClip:                       "clip",
	AttrClipPath:                   "clip-path",
	AttrClipPathUnits:              "clipPathUnits",
	AttrClipRule:                   "clip-rule",
	AttrColor:                      "color",
	AttrColorInterpolation:         "color-interpolation",
	AttrColorInterpolationFilters:  "color-interpolation-filters",
	AttrColorProfile:               "color-profile",
	AttrColorRendering:             "color-rendering",
	AttrCursor:                     "cursor",
	AttrCx:                         "cx",
	AttrCy:                         "cy",
	AttrD:                          "d",
	AttrDiffuseConstant:            "diffuseConstant",
	AttrDirection:                  "direction",
	AttrDisplay:                    "display",
	AttrDivisor:                    "divisor",
	AttrDominantBaseline:           "dominant-baseline",
	AttrDur:                        "dur",
	AttrDx:                         "dx",
	AttrDy:                         "dy",
	AttrEdgeMode:                   "edgeMode",
	AttrElevation:                  "elevation",
	AttrEnableBackground:           "enable-background",
	AttrEnd:                        "end",
	AttrExponent:                   "exponent",
	AttrExternalResourcesRequired:  "externalResourcesRequired",
	AttrFill:                       "fill",
	AttrFillOpacity:                "fill-opacity",
	AttrFillRule:                   "fill-rule",
	AttrFilter:                     "filter",
	AttrFilterUnits:                "filterUnits",
	AttrFloodColor:                 "flood-color",
	AttrFloodOpacity:               "flood-opacity",
	AttrFont:                       "font",
	AttrFontFamily:                 "font-family",
	AttrFontSize:                   "font-size",
	AttrFontSizeAdjust:             "font-size-adjust",
	AttrFontStretch:                "font-stretch",
	AttrFontStyle:                  "font-style",
	AttrFontVariant:                "font-variant",
	AttrFontWeight:                 "font-weight",
	AttrFrom:                       "from",
	AttrFx:                         "fx",
	AttrFy:                         "fy",
	AttrGlyphOrientationHorizontal: "glyph-orientation-horizontal",
	AttrGlyphOrientationVertical:   "glyph-orientation-vertical",
	AttrGradientTransform:          "gradientTransform",
	AttrGradientUnits:              "gradientUnits",
	AttrHeight:                     "height",
	AttrHref:                       "href",
	AttrID:                         "id",
	AttrImageRendering:             "image-rendering",
	AttrIn:                         "in",
	AttrIn2:                        "in2",
	AttrIntercept:                  "intercept",
	AttrK1:                         "k1",
	AttrK2:                         "k2",
	AttrK3:                         "k3",
	AttrK4:                         "k4",
	AttrKernelMatrix:               "kernelMatrix",
	AttrKernelUnitLength:           "kernelUnitLength",
	AttrKerning:                    "kerning",
	AttrKeyPoints:                  "keyPoints",
	AttrKeySplines:                 "keySplines",
	AttrKeyTimes:                   "keyTimes",
	AttrLengthAdjust:               "lengthAdjust",
	AttrLetterSpacing:              "letter-spacing",
	AttrLightingColor:              "lighting-color",
	AttrLimitingConeAngle:          "limitingConeAngle",
	AttrMarker:                     "marker",
	AttrMarkerEnd:                  "marker-end",
	AttrMarkerHeight:               "markerHeight",
	AttrMarkerMid:                  "marker-mid",
	AttrMarkerStart:                "marker-start",
	AttrMarkerUnits:                "markerUnits",
	AttrMarkerWidth:                "markerWidth",
	AttrMask:                       "mask",
	AttrMaskContentUnits:           "maskContentUnits",
	AttrMaskUnits:                  "maskUnits",
	AttrMax:                        "max",
	AttrMedia:                      "media",
	AttrMethod:                     "method",
	AttrMin:                        "min",
	AttrMode:                       "mode",
	AttrNumOctaves:                 "numOctaves",
	AttrOffset:                     "offset",
	AttrOnAbort:                    "onabort",
	AttrOnActivate:                 "onactivate",
	AttrOnBegin:                    "onbegin",
	AttrOnClick:                    "onclick",
	AttrOnEnd:                      "onend",
	AttrOnError:                    "onerror",
	AttrOnFocusIn:                  "onfocusin",
	AttrOnFocusOut:                 "onfocusout",
	AttrOnLoad:                     "onload",
	AttrOnMouseDown:                "onmousedown",
	AttrOnMouseMove:                "onmousemove",
	AttrOnMouseOut:                 "onmouseout",
	AttrOnMouseOver:                "onmouseover",
	AttrOnMouseUp:                  "onmouseup",
	AttrOnRepeat:                   "onrepeat",
	AttrOnResize:                   "onresize",
	AttrOnScroll:                   "onscroll",
	AttrOnUnload:                   "onunload",
	AttrOnZoom:                     "onzoom",
	AttrOpacity:                    "opacity",
	AttrOperator:                   "operator",
	AttrOrder:                      "order",
	AttrOrient:                     "orient",
	AttrOverflow:                   "overflow",
	AttrPathLength:                 "pathLength",
	AttrPatternContentUnits:        "patternContentUnits",
	AttrPatternTransform:           "patternTransform",
	AttrPatternUnits:               "patternUnits",
	AttrPointerEvents:              "pointer-events",
	AttrPoints:                     "points",
	AttrPointsAtX:                  "pointsAtX",
	AttrPointsAtY:                  "pointsAtY",
	AttrPointsAtZ:                  "pointsAtZ",
	AttrPreserveAlpha:              "preserveAlpha",
	AttrPreserveAspectRatio:        "preserveAspectRatio",
	AttrPrimitiveUnits:             "primitiveUnits",
	AttrR:                          "r",
	AttrRadius:                     "radius",
	AttrRefX:                       "refX",
	AttrRefY:                       "refY",
	AttrRepeatCount:                "repeatCount",
	AttrRepeatDur:                  "repeatDur",
	AttrRequiredExtensions:         "requiredExtensions",
	AttrRequiredFeatures:           "requiredFeatures",
	AttrRestart:                    "restart",
	AttrResult:                     "result",
	AttrRotate:                     "rotate",
	AttrRx:                         "rx",
	AttrRy:                         "ry",
	AttrScale:                      "scale",
	AttrSeed:                       "seed",
	AttrShapeRendering:             "shape-rendering",
	AttrSlope:                      "slope",
	AttrSpacing:                    "spacing",
	AttrSpecularConstant:           "specularConstant",
	AttrSpecularExponent:           "specularExponent",
	AttrSpreadMethod:               "spreadMethod",
	AttrStartOffset:                "startOffset",
	AttrStdDeviation:               "stdDeviation",
	AttrStitchTiles:                "stitchTiles",
	AttrStopColor:                  "stop-color",
	AttrStopOpacity:                "stop-opacity",
	AttrStroke:                     "stroke",
	AttrStrokeDasharray:            "stroke-dasharray",
	AttrStrokeDashoffset:           "stroke-dashoffset",
	AttrStrokeLinecap:              "stroke-linecap",
	AttrStrokeLinejoin:             "stroke-linejoin",
	AttrStrokeMiterlimit:           "stroke-miterlimit",
	AttrStrokeOpacity:              "stroke-opacity",
	AttrStrokeWidth:                "stroke-width",
	AttrStyle:                      "style",
	AttrSurfaceScale:               "surfaceScale",
	AttrSystemLanguage:             "systemLanguage",
	AttrTableValues:                "tableValues",
	AttrTarget:                     "target",
	AttrTargetX:                    "targetX",
	AttrTargetY:                    "targetY",
	AttrTextAnchor:                 "text-anchor",
	AttrTextDecoration:             "text-decoration",
	AttrTextLength:                 "textLength",
	AttrTextRendering:              "text-rendering",
	AttrTo:                         "to",
	AttrTransform:                  "transform",
	AttrType:                       "type",
	AttrUnicodeBidi:                "unicode-bidi",
	AttrValues:                     "values",
	AttrVersion:                    "version",
	AttrViewBox:                    "viewBox",
	AttrVisibility:                 "visibility",
	AttrWidth:                      "width",
	AttrWordSpacing:                "word-spacing",
	AttrWritingMode:                "writing-mode",
	AttrX:                          "x",
	AttrX1:                         "x1",
	AttrX2:                         "x2",
	AttrXChannelSelector:           "xChannelSelector",
	AttrXmlBase:                    "base",
	AttrXmlLang:                    "lang",
	AttrXmlSpace:                   "space",
	AttrY:                          "y",
	AttrY1:                         "y1",
	AttrY2:                         "y2",
	AttrYChannelSelector:           "yChannelSelector",
	AttrZ:                          "z",
	AttrZoomAndPan:                 "zoomAndPan",
}

var attributeIDs map[string]AttributeID

func init() {
	attributeIDs = make(map[string]AttributeID, len(attributeNames))
	for id, name := range attributeNames {
		// xml:base/lang/space share local names with nothing else, but the
		// unprefixed forms must not resolve to them.
		switch id {
		case AttrXmlBase, AttrXmlLang, AttrXmlSpace:
			continue
		}
		attributeIDs[name] = id
	}
}

// LookupAttribute resolves an unprefixed canonical attribute name.
func LookupAttribute(name string) AttributeID {
	return attributeIDs[name]
}

// LookupXMLAttribute resolves a local name within the xml namespace.
func LookupXMLAttribute(local string) AttributeID {
	switch local {
	case "base":
		return AttrXmlBase
	case "lang":
		return AttrXmlLang
	case "space":
		return AttrXmlSpace
	}
	return AttrUnknown
}

func (id AttributeID) String() string {
	return attributeNames[id]
}

var presentationAttrs = map[AttributeID]bool{
	AttrAlignmentBaseline: true, AttrBaselineShift: true, AttrClip: true,
	AttrClipPath: true, AttrClipRule: true, AttrColor: true,
	AttrColorInterpolation: true, AttrColorInterpolationFilters: true,
	AttrColorProfile: true, AttrColorRendering: true, AttrCursor: true,
	AttrDirection: true, AttrDisplay: true, AttrDominantBaseline: true,
	AttrEnableBackground: true, AttrFill: true, AttrFillOpacity: true,
	AttrFillRule: true, AttrFilter: true, AttrFloodColor: true,
	AttrFloodOpacity: true, AttrFont: true, AttrFontFamily: true,
	AttrFontSize: true, AttrFontSizeAdjust: true, AttrFontStretch: true,
	AttrFontStyle: true, AttrFontVariant: true, AttrFontWeight: true,
	AttrGlyphOrientationHorizontal: true, AttrGlyphOrientationVertical: true,
	AttrImageRendering: true, AttrKerning: true, AttrLetterSpacing: true,
	AttrLightingColor: true, AttrMarker: true, AttrMarkerEnd: true,
	AttrMarkerMid: true, AttrMarkerStart: true, AttrMask: true,
	AttrOpacity: true, AttrOverflow: true, AttrPointerEvents: true,
	AttrShapeRendering: true, AttrStopColor: true, AttrStopOpacity: true,
	AttrStroke: true, AttrStrokeDasharray: true, AttrStrokeDashoffset: true,
	AttrStrokeLinecap: true, AttrStrokeLinejoin: true,
	AttrStrokeMiterlimit: true, AttrStrokeOpacity: true,
	AttrStrokeWidth: true, AttrTextAnchor: true, AttrTextDecoration: true,
	AttrTextRendering: true, AttrUnicodeBidi: true, AttrVisibility: true,
	AttrWordSpacing: true, AttrWritingMode: true,
}

// IsPresentation reports whether the attribute may alternatively appear as a
// CSS property.
func (id AttributeID) IsPresentation() bool {
	return presentationAttrs[id]
}

// IsCore reports whether the attribute belongs to the core attribute group.
func (id AttributeID) IsCore() bool {
	switch id {
	case AttrID, AttrXmlBase, AttrXmlLang, AttrXmlSpace:
		return true
	}
	return false
}

// IsGraphicalEvent reports membership in the graphical event group.
func (id AttributeID) IsGraphicalEvent() bool {
	switch id {
	case AttrOnFocusIn, AttrOnFocusOut, AttrOnActivate, AttrOnClick,
		AttrOnMouseDown, AttrOnMouseUp, AttrOnMouseOver, AttrOnMouseMove,
		AttrOnMouseOut, AttrOnLoad:
		return true
	}
	return false
}

// IsAnimationEvent reports membership in the animation event group.
func (id AttributeID) IsAnimationEvent() bool {
	switch id {
	case AttrOnBegin, AttrOnEnd, AttrOnRepeat, AttrOnLoad:
		return true
	}
	return false
}

// IsDocumentEvent reports membership in the document event group.
func (id AttributeID) IsDocumentEvent() bool {
	switch id {
	case AttrOnUnload, AttrOnAbort, AttrOnError, AttrOnResize, AttrOnScroll,
		AttrOnZoom:
		return true
	}
	return false
}

// IsConditionalProcessing reports membership in the conditional processing
// group.
func (id AttributeID) IsConditionalProcessing() bool {
	switch id {
	case AttrRequiredFeatures, AttrRequiredExtensions, AttrSystemLanguage:
		return true
	}
	return false
}

// IsFill reports whether the attribute belongs to the fill group.
func (id AttributeID) IsFill() bool {
	switch id {
	case AttrFill, AttrFillOpacity, AttrFillRule:
		return true
	}
	return false
}

// IsStroke reports whether the attribute belongs to the stroke group.
func (id AttributeID) IsStroke() bool {
	switch id {
	case AttrStroke, AttrStrokeDasharray, AttrStrokeDashoffset,
		AttrStrokeLinecap, AttrStrokeLinejoin, AttrStrokeMiterlimit,
		AttrStrokeOpacity, AttrStrokeWidth:
		return true
	}
	return false
}
