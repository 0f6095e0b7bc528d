package svgtypes

// AttributeValueKind identifies which alternative of the AttributeValue
// tagged union a value holds.
type AttributeValueKind int

const (
	AVNumber AttributeValueKind = iota
	AVNumberList
	AVLength
	AVLengthList
	AVColor
	AVViewBox
	AVAspectRatio
	AVPoints
	AVPath
	AVStyle
	AVTransform
	AVEntityRef
	AVIRI
	AVFuncIRI
	AVPredefValue
	AVString
	AVPaint
)

// AttributeValue is the parsed, typed form of a recognized SVG
// presentation attribute, produced by DispatchAttribute. Only the field
// matching Kind is populated; the lazy-sequence fields (NumberList,
// LengthList, Points, Path, Style, Transform) are tokenizer seeds, not
// materialized slices — iterating one may itself fail partway through,
// which is reported through that tokenizer's own Next, not here.
type AttributeValue struct {
	Kind        AttributeValueKind
	Number      float64
	NumberList  *NumberList
	Length      Length
	LengthList  *LengthList
	Color       Color
	ViewBox     ViewBox
	AspectRatio AspectRatio
	Points      *PointsTokenizer
	Path        *PathTokenizer
	Style       *StyleTokenizer
	Transform   *TransformTokenizer
	EntityRef   Span
	IRI         Span
	FuncIRI     Span
	PredefValue ValueID
	String      Span
	Paint       Paint
}

// AsNumberList reports whether v holds a NumberList seed and returns it.
func (v AttributeValue) AsNumberList() (*NumberList, bool) {
	return v.NumberList, v.Kind == AVNumberList
}

// AsLengthList reports whether v holds a LengthList seed and returns it.
func (v AttributeValue) AsLengthList() (*LengthList, bool) {
	return v.LengthList, v.Kind == AVLengthList
}

// AsPoints reports whether v holds a PointsTokenizer seed and returns it.
func (v AttributeValue) AsPoints() (*PointsTokenizer, bool) {
	return v.Points, v.Kind == AVPoints
}

// AsPath reports whether v holds a PathTokenizer seed and returns it.
func (v AttributeValue) AsPath() (*PathTokenizer, bool) {
	return v.Path, v.Kind == AVPath
}

// AsStyle reports whether v holds a StyleTokenizer seed and returns it.
func (v AttributeValue) AsStyle() (*StyleTokenizer, bool) {
	return v.Style, v.Kind == AVStyle
}

// AsTransform reports whether v holds a TransformTokenizer seed and
// returns it.
func (v AttributeValue) AsTransform() (*TransformTokenizer, bool) {
	return v.Transform, v.Kind == AVTransform
}

// AsColor reports whether v holds a Color and returns it.
func (v AttributeValue) AsColor() (Color, bool) {
	return v.Color, v.Kind == AVColor
}

// AsPaint reports whether v holds a Paint and returns it.
func (v AttributeValue) AsPaint() (Paint, bool) {
	return v.Paint, v.Kind == AVPaint
}

// AsLength reports whether v holds a Length and returns it.
func (v AttributeValue) AsLength() (Length, bool) {
	return v.Length, v.Kind == AVLength
}

// AsString reports whether v holds a raw String fallback and returns it.
func (v AttributeValue) AsString() (Span, bool) {
	return v.String, v.Kind == AVString
}

// DispatchAttribute parses span as the value of attribute aid on an
// element of kind eid, following spec.md section 4.10's attempt order:
// predefined keyword first where the attribute has an enumerated set,
// then the attribute's typed grammar, then a raw String fallback.
func DispatchAttribute(eid ElementID, aid AttributeID, span Span, logger Logger) (AttributeValue, error) {
	if logger == nil {
		logger = defaultLogger
	}

	// 'unicode' can legitimately contain spaces; every other attribute is
	// trimmed before dispatch.
	if aid != AttributeUnicode {
		span = span.trimSpace()
	}

	if !span.IsEmpty() && span.Parent[span.Start] == '&' {
		if name, ok := tryEntityRef(span); ok {
			return AttributeValue{Kind: AVEntityRef, EntityRef: name}, nil
		}
	}

	if aid == AttributeXlinkHref {
		link, isLocal := ParseIRI(span)
		if isLocal {
			return AttributeValue{Kind: AVIRI, IRI: link}, nil
		}
		return AttributeValue{Kind: AVString, String: link}, nil
	}

	switch aid {
	case AttributeX, AttributeY, AttributeDx, AttributeDy:
		switch eid {
		case ElementAltGlyph, ElementText, ElementTref, ElementTspan:
			return AttributeValue{Kind: AVLengthList, LengthList: NewLengthList(span)}, nil
		default:
			return lengthAttr(span)
		}

	case AttributeX1, AttributeY1, AttributeX2, AttributeY2,
		AttributeR, AttributeRx, AttributeRy, AttributeCx, AttributeCy,
		AttributeFx, AttributeFy, AttributeOffset, AttributeWidth, AttributeHeight:
		return lengthAttr(span)

	case AttributeStrokeDashoffset, AttributeStrokeMiterlimit, AttributeStrokeWidth:
		if v, ok := parsePredef(span, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return lengthAttr(span)

	case AttributeOpacity, AttributeFillOpacity, AttributeFloodOpacity,
		AttributeStrokeOpacity, AttributeStopOpacity:
		if v, ok := parsePredef(span, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		n, err := NewStream(span).ParseNumber()
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVNumber, Number: boundF(0, n, 1)}, nil

	case AttributeStrokeDasharray:
		if v, ok := parsePredef(span, ValueNone, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return AttributeValue{Kind: AVLengthList, LengthList: NewLengthList(span)}, nil

	case AttributeFill:
		switch eid {
		case ElementSet, ElementAnimate, ElementAnimateColor, ElementAnimateMotion, ElementAnimateTransform:
			return AttributeValue{Kind: AVString, String: span}, nil
		default:
			return paintAttr(span, logger, ValueNone, ValueCurrentColor, ValueInherit)
		}

	case AttributeStroke:
		return paintAttr(span, logger, ValueNone, ValueCurrentColor, ValueInherit)

	case AttributeClipPath, AttributeFilter, AttributeMarker,
		AttributeMarkerEnd, AttributeMarkerMid, AttributeMarkerStart, AttributeMask:
		if v, ok := parsePredef(span, ValueNone, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		link, err := ParseFuncIRI(span)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVFuncIRI, FuncIRI: link}, nil

	case AttributeColor:
		if v, ok := parsePredef(span, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return colorAttr(span)

	case AttributeLightingColor, AttributeFloodColor, AttributeStopColor:
		if v, ok := parsePredef(span, ValueInherit, ValueCurrentColor); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return colorAttr(span)

	case AttributeStdDeviation, AttributeBaseFrequency:
		return AttributeValue{Kind: AVNumberList, NumberList: NewNumberList(span)}, nil

	case AttributePoints:
		return AttributeValue{Kind: AVPoints, Points: NewPointsTokenizer(span, logger)}, nil

	case AttributeD:
		return AttributeValue{Kind: AVPath, Path: NewPathTokenizer(span, logger)}, nil

	case AttributeStyle:
		return AttributeValue{Kind: AVStyle, Style: NewStyleTokenizer(span, logger)}, nil

	case AttributeTransform, AttributeGradientTransform, AttributePatternTransform:
		return AttributeValue{Kind: AVTransform, Transform: NewTransformTokenizer(span, logger)}, nil

	case AttributeAlignmentBaseline:
		return predefOnly(span, ValueAuto, ValueBaseline, ValueBeforeEdge, ValueTextBeforeEdge,
			ValueMiddle, ValueCentral, ValueAfterEdge, ValueTextAfterEdge, ValueIdeographic,
			ValueAlphabetic, ValueHanging, ValueMathematical, ValueInherit)

	case AttributeDisplay:
		return predefOnly(span, ValueInline, ValueBlock, ValueListItem, ValueRunIn, ValueCompact,
			ValueMarker, ValueTable, ValueInlineTable, ValueTableRowGroup, ValueTableHeaderGroup,
			ValueTableFooterGroup, ValueTableRow, ValueTableColumnGroup, ValueTableColumn,
			ValueTableCell, ValueTableCaption, ValueNone, ValueInherit)

	case AttributeClipRule, AttributeFillRule:
		return predefOnly(span, ValueNonzero, ValueEvenodd, ValueInherit)

	case AttributeClipPathUnits, AttributeFilterUnits, AttributeGradientUnits,
		AttributeMaskContentUnits, AttributeMaskUnits, AttributePatternContentUnits,
		AttributePatternUnits, AttributePrimitiveUnits:
		return predefOnly(span, ValueUserSpaceOnUse, ValueObjectBoundingBox)

	case AttributeSpreadMethod:
		return predefOnly(span, ValuePad, ValueReflect, ValueRepeat)

	case AttributeStrokeLinecap:
		return predefOnly(span, ValueButt, ValueRound, ValueSquare, ValueInherit)

	case AttributeVisibility:
		return predefOnly(span, ValueVisible, ValueHidden, ValueCollapse, ValueInherit)

	case AttributeColorInterpolation, AttributeColorInterpolationFilters:
		return predefOnly(span, ValueAuto, ValueSRGB, ValueLinearRGB, ValueInherit)

	case AttributeColorRendering:
		return predefOnly(span, ValueAuto, ValueOptimizeSpeed, ValueOptimizeQuality, ValueInherit)

	case AttributeDominantBaseline:
		return predefOnly(span, ValueAuto, ValueUseScript, ValueNoChange, ValueResetSize,
			ValueIdeographic, ValueAlphabetic, ValueHanging, ValueMathematical, ValueCentral,
			ValueMiddle, ValueTextAfterEdge, ValueTextBeforeEdge, ValueInherit)

	case AttributeDirection:
		return predefOnly(span, ValueLtr, ValueRtl, ValueInherit)

	case AttributeFontStretch:
		return predefOnly(span, ValueNormal, ValueWider, ValueNarrower, ValueUltraCondensed,
			ValueExtraCondensed, ValueCondensed, ValueSemiCondensed, ValueSemiExpanded,
			ValueExpanded, ValueExtraExpanded, ValueUltraExpanded, ValueInherit)

	case AttributeFontStyle:
		return predefOnly(span, ValueNormal, ValueItalic, ValueOblique, ValueInherit)

	case AttributeFontVariant:
		return predefOnly(span, ValueNormal, ValueSmallCaps, ValueInherit)

	case AttributeFontWeight:
		// The numeric weight keywords must come out as PredefValue(N100..N900),
		// not Number, so this attribute never falls through to a numeric parse.
		return predefOnly(span, ValueNormal, ValueBold, ValueBolder, ValueLighter,
			ValueN100, ValueN200, ValueN300, ValueN400, ValueN500, ValueN600,
			ValueN700, ValueN800, ValueN900, ValueInherit)

	case AttributeBaselineShift:
		if v, ok := parsePredef(span, ValueBaseline, ValueSub, ValueSuper, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return lengthAttr(span)

	case AttributeFontSize:
		if v, ok := parsePredef(span, ValueXxSmall, ValueXSmall, ValueSmall, ValueMedium,
			ValueLarge, ValueXLarge, ValueXxLarge, ValueLarger, ValueSmaller, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return lengthAttr(span)

	case AttributeFontSizeAdjust:
		if v, ok := parsePredef(span, ValueNone, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		n, err := NewStream(span).ParseNumber()
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVNumber, Number: n}, nil

	case AttributeImageRendering:
		return predefOnly(span, ValueAuto, ValueOptimizeSpeed, ValueOptimizeQuality, ValueInherit)

	case AttributeKerning:
		if v, ok := parsePredef(span, ValueAuto, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return lengthAttr(span)

	case AttributeWordSpacing, AttributeLetterSpacing:
		if v, ok := parsePredef(span, ValueNormal, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return lengthAttr(span)

	case AttributeOverflow:
		return predefOnly(span, ValueAuto, ValueVisible, ValueHidden, ValueScroll, ValueInherit)

	case AttributePointerEvents:
		return predefOnly(span, ValueVisiblePainted, ValueVisibleFill, ValueVisibleStroke,
			ValueVisible, ValuePainted, ValueFill, ValueStroke, ValueAll, ValueNone, ValueInherit)

	case AttributeShapeRendering:
		return predefOnly(span, ValueAuto, ValueOptimizeSpeed, ValueCrispEdges,
			ValueGeometricPrecision, ValueInherit)

	case AttributeStrokeLinejoin:
		return predefOnly(span, ValueMiter, ValueRound, ValueBevel, ValueInherit)

	case AttributeTextAnchor:
		return predefOnly(span, ValueStart, ValueMiddle, ValueEnd, ValueInherit)

	case AttributeTextDecoration:
		return predefOnly(span, ValueNone, ValueUnderline, ValueOverline, ValueLineThrough,
			ValueBlink, ValueInherit)

	case AttributeTextRendering:
		return predefOnly(span, ValueAuto, ValueOptimizeSpeed, ValueOptimizeLegibility,
			ValueGeometricPrecision, ValueInherit)

	case AttributeUnicodeBidi:
		return predefOnly(span, ValueNormal, ValueEmbed, ValueBidiOverride, ValueInherit)

	case AttributeWritingMode:
		return predefOnly(span, ValueLrTb, ValueRlTb, ValueTbRl, ValueLr, ValueRl, ValueTb, ValueInherit)

	case AttributeColorProfile:
		if v, ok := parsePredef(span, ValueAuto, ValueSRGB, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		link, _ := ParseIRI(span)
		return AttributeValue{Kind: AVIRI, IRI: link}, nil

	case AttributeGlyphOrientationVertical:
		if v, ok := parsePredef(span, ValueAuto, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return AttributeValue{Kind: AVString, String: span}, nil

	case AttributeEnableBackground:
		if v, ok := parsePredef(span, ValueAccumulate, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return AttributeValue{Kind: AVString, String: span}, nil

	case AttributeFontFamily:
		if v, ok := parsePredef(span, ValueInherit); ok {
			return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
		}
		return AttributeValue{Kind: AVString, String: span}, nil

	case AttributeViewBox:
		vb, err := ParseViewBox(span)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVViewBox, ViewBox: vb}, nil

	case AttributePreserveAspectRatio:
		ar, err := ParseAspectRatio(span)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVAspectRatio, AspectRatio: ar}, nil

	default:
		return AttributeValue{Kind: AVString, String: span}, nil
	}
}

func lengthAttr(span Span) (AttributeValue, error) {
	l, err := NewStream(span).ParseLength()
	if err != nil {
		return AttributeValue{}, err
	}
	return AttributeValue{Kind: AVLength, Length: l}, nil
}

func colorAttr(span Span) (AttributeValue, error) {
	c, err := ParseColor(span)
	if err != nil {
		return AttributeValue{}, err
	}
	return AttributeValue{Kind: AVColor, Color: c}, nil
}

// paintAttr implements the Fill/Stroke arm: a predefined keyword, else a
// FuncIRI with optional fallback, else a plain Color — all folded into a
// single Paint value, per spec.md section 4.10.
func paintAttr(span Span, logger Logger, allowed ...ValueID) (AttributeValue, error) {
	if v, ok := parsePredef(span, allowed...); ok {
		var kind PaintKind
		switch v {
		case ValueNone:
			kind = PaintNone
		case ValueCurrentColor:
			kind = PaintCurrentColor
		case ValueInherit:
			kind = PaintInherit
		}
		return AttributeValue{Kind: AVPaint, Paint: Paint{Kind: kind}}, nil
	}

	p, err := ParsePaint(span)
	if err != nil {
		warnf(logger, "invalid paint at %s: %v", NewStream(span).GenTextPos(), err)
		return AttributeValue{}, err
	}
	return AttributeValue{Kind: AVPaint, Paint: p}, nil
}

func predefOnly(span Span, allowed ...ValueID) (AttributeValue, error) {
	v, ok := parsePredef(span, allowed...)
	if !ok {
		return AttributeValue{}, &Error{Kind: InvalidValue, Pos: NewStream(span).GenTextPos(), Detail: "not a recognized keyword for this attribute"}
	}
	return AttributeValue{Kind: AVPredefValue, PredefValue: v}, nil
}

func parsePredef(span Span, allowed ...ValueID) (ValueID, bool) {
	v, ok := LookupValue(span.Str())
	if !ok {
		return ValueUnknown, false
	}
	for _, a := range allowed {
		if a == v {
			return v, true
		}
	}
	return ValueUnknown, false
}

func tryEntityRef(span Span) (Span, bool) {
	s := NewStream(span)
	s.AdvanceRaw(1) // '&'
	start := s.Pos
	for !s.AtEnd() && s.curByteRaw() != ';' {
		s.AdvanceRaw(1)
	}
	if s.Pos == start || s.AtEnd() {
		return Span{}, false
	}
	name := s.Span.sub(start, s.Pos)
	return name, true
}
