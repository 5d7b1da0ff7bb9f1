package typeinfo

import "sync"

// Namespace prefixes of the default vocabulary.
const (
	BaseName        = "Spa:"
	EnumBase        = BaseName + "Enum:"
	PodBase         = BaseName + "Pod:"
	PointerBase     = BaseName + "Pointer:"
	ObjectBase      = PodBase + "Object:"
	EventBase       = ObjectBase + "Event:"
	CommandBase     = ObjectBase + "Command:"
	ParamObjectBase = ObjectBase + "Param:"

	ParamIDBase      = EnumBase + "ParamId:"
	MediaTypeBase    = EnumBase + "MediaType:"
	MediaSubtypeBase = EnumBase + "MediaSubtype:"
	AudioFormatBase  = EnumBase + "AudioFormat:"
	VideoFormatBase  = EnumBase + "VideoFormat:"
	NodeEventIDBase  = EnumBase + "NodeEvent:"

	FormatBase      = ParamObjectBase + "Format:"
	FormatAudioBase = FormatBase + "Audio:"
	FormatVideoBase = FormatBase + "Video:"
	PropsBase       = ParamObjectBase + "Props:"
	PropInfoBase    = ParamObjectBase + "PropInfo:"
	BuffersBase     = ParamObjectBase + "Buffers:"
	BlockInfoBase   = BuffersBase + "BlockInfo:"
	MetaBase        = ParamObjectBase + "Meta:"
	IOBase          = ParamObjectBase + "IO:"
	NodeEventBase   = EventBase + "Node:"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in vocabulary. It is built once and shared.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := buildDefault()
		if err != nil {
			panic("typeinfo: default vocabulary: " + err.Error())
		}
		defaultReg = reg
	})
	return defaultReg
}

func buildDefault() (*Registry, error) {
	b := NewBuilder()

	paramIDs := b.Table(EnumBase+"ParamId",
		Info{ParamInvalid, ParamIDBase + "Invalid", TypeInt, NoTable},
		Info{ParamPropInfo, ParamIDBase + "PropInfo", TypeInt, NoTable},
		Info{ParamProps, ParamIDBase + "Props", TypeInt, NoTable},
		Info{ParamEnumFormat, ParamIDBase + "EnumFormat", TypeInt, NoTable},
		Info{ParamFormat, ParamIDBase + "Format", TypeInt, NoTable},
		Info{ParamBuffers, ParamIDBase + "Buffers", TypeInt, NoTable},
		Info{ParamMeta, ParamIDBase + "Meta", TypeInt, NoTable},
		Info{ParamIO, ParamIDBase + "IO", TypeInt, NoTable},
		Info{ParamEnumProfile, ParamIDBase + "EnumProfile", TypeInt, NoTable},
		Info{ParamProfile, ParamIDBase + "Profile", TypeInt, NoTable},
		Info{ParamEnumPortConfig, ParamIDBase + "EnumPortConfig", TypeInt, NoTable},
		Info{ParamPortConfig, ParamIDBase + "PortConfig", TypeInt, NoTable},
		Info{ParamEnumRoute, ParamIDBase + "EnumRoute", TypeInt, NoTable},
		Info{ParamRoute, ParamIDBase + "Route", TypeInt, NoTable},
		Info{ParamControl, ParamIDBase + "Control", TypeInt, NoTable},
		Info{ParamLatency, ParamIDBase + "Latency", TypeInt, NoTable},
		Info{ParamProcessLatency, ParamIDBase + "ProcessLatency", TypeInt, NoTable},
	)

	mediaTypes := b.Table(EnumBase+"MediaType",
		Info{MediaTypeUnknown, MediaTypeBase + "unknown", TypeInt, NoTable},
		Info{MediaTypeAudio, MediaTypeBase + "audio", TypeInt, NoTable},
		Info{MediaTypeVideo, MediaTypeBase + "video", TypeInt, NoTable},
		Info{MediaTypeImage, MediaTypeBase + "image", TypeInt, NoTable},
		Info{MediaTypeBinary, MediaTypeBase + "binary", TypeInt, NoTable},
		Info{MediaTypeStream, MediaTypeBase + "stream", TypeInt, NoTable},
		Info{MediaTypeApplication, MediaTypeBase + "application", TypeInt, NoTable},
	)

	mediaSubtypes := b.Table(EnumBase+"MediaSubtype",
		Info{MediaSubtypeUnknown, MediaSubtypeBase + "unknown", TypeInt, NoTable},
		Info{MediaSubtypeRaw, MediaSubtypeBase + "raw", TypeInt, NoTable},
		Info{MediaSubtypeDSP, MediaSubtypeBase + "dsp", TypeInt, NoTable},
		Info{0x3, MediaSubtypeBase + "iec958", TypeInt, NoTable},
		Info{0x4, MediaSubtypeBase + "dsd", TypeInt, NoTable},
		Info{MediaSubtypeMP3, MediaSubtypeBase + "mp3", TypeInt, NoTable},
		Info{MediaSubtypeAAC, MediaSubtypeBase + "aac", TypeInt, NoTable},
		Info{0x10003, MediaSubtypeBase + "vorbis", TypeInt, NoTable},
		Info{0x10004, MediaSubtypeBase + "wma", TypeInt, NoTable},
		Info{0x10005, MediaSubtypeBase + "ra", TypeInt, NoTable},
		Info{0x10006, MediaSubtypeBase + "sbc", TypeInt, NoTable},
		Info{0x10007, MediaSubtypeBase + "adpcm", TypeInt, NoTable},
		Info{0x10008, MediaSubtypeBase + "g723", TypeInt, NoTable},
		Info{0x10009, MediaSubtypeBase + "g726", TypeInt, NoTable},
		Info{0x1000a, MediaSubtypeBase + "g729", TypeInt, NoTable},
		Info{0x1000b, MediaSubtypeBase + "amr", TypeInt, NoTable},
		Info{0x1000c, MediaSubtypeBase + "gsm", TypeInt, NoTable},
		Info{0x1000d, MediaSubtypeBase + "alac", TypeInt, NoTable},
		Info{0x1000e, MediaSubtypeBase + "flac", TypeInt, NoTable},
		Info{0x1000f, MediaSubtypeBase + "ape", TypeInt, NoTable},
		Info{MediaSubtypeOpus, MediaSubtypeBase + "opus", TypeInt, NoTable},
		Info{MediaSubtypeH264, MediaSubtypeBase + "h264", TypeInt, NoTable},
		Info{MediaSubtypeMJPG, MediaSubtypeBase + "mjpg", TypeInt, NoTable},
		Info{0x20003, MediaSubtypeBase + "dv", TypeInt, NoTable},
		Info{0x20004, MediaSubtypeBase + "mpegts", TypeInt, NoTable},
		Info{0x20005, MediaSubtypeBase + "h263", TypeInt, NoTable},
		Info{0x20006, MediaSubtypeBase + "mpeg1", TypeInt, NoTable},
		Info{0x20007, MediaSubtypeBase + "mpeg2", TypeInt, NoTable},
		Info{0x20008, MediaSubtypeBase + "mpeg4", TypeInt, NoTable},
		Info{0x20009, MediaSubtypeBase + "xvid", TypeInt, NoTable},
		Info{0x2000a, MediaSubtypeBase + "vc1", TypeInt, NoTable},
		Info{0x2000b, MediaSubtypeBase + "vp8", TypeInt, NoTable},
		Info{0x2000c, MediaSubtypeBase + "vp9", TypeInt, NoTable},
		Info{0x2000d, MediaSubtypeBase + "bayer", TypeInt, NoTable},
		Info{MediaSubtypeJPEG, MediaSubtypeBase + "jpeg", TypeInt, NoTable},
		Info{MediaSubtypeMIDI, MediaSubtypeBase + "midi", TypeInt, NoTable},
		Info{MediaSubtypeControl, MediaSubtypeBase + "control", TypeInt, NoTable},
	)

	audioFormats := b.Table(EnumBase+"AudioFormat",
		Info{AudioFormatUnknown, AudioFormatBase + "UNKNOWN", TypeInt, NoTable},
		Info{AudioFormatEncoded, AudioFormatBase + "ENCODED", TypeInt, NoTable},
		Info{AudioFormatS8, AudioFormatBase + "S8", TypeInt, NoTable},
		Info{AudioFormatU8, AudioFormatBase + "U8", TypeInt, NoTable},
		Info{AudioFormatS16LE, AudioFormatBase + "S16LE", TypeInt, NoTable},
		Info{AudioFormatS16BE, AudioFormatBase + "S16BE", TypeInt, NoTable},
		Info{AudioFormatU16LE, AudioFormatBase + "U16LE", TypeInt, NoTable},
		Info{AudioFormatU16BE, AudioFormatBase + "U16BE", TypeInt, NoTable},
		Info{AudioFormatS32LE, AudioFormatBase + "S32LE", TypeInt, NoTable},
		Info{AudioFormatS32BE, AudioFormatBase + "S32BE", TypeInt, NoTable},
		Info{AudioFormatF32LE, AudioFormatBase + "F32LE", TypeInt, NoTable},
		Info{AudioFormatF32BE, AudioFormatBase + "F32BE", TypeInt, NoTable},
	)

	videoFormats := b.Table(EnumBase+"VideoFormat",
		Info{0, VideoFormatBase + "UNKNOWN", TypeInt, NoTable},
		Info{1, VideoFormatBase + "ENCODED", TypeInt, NoTable},
		Info{2, VideoFormatBase + "I420", TypeInt, NoTable},
		Info{3, VideoFormatBase + "YV12", TypeInt, NoTable},
		Info{4, VideoFormatBase + "YUY2", TypeInt, NoTable},
		Info{5, VideoFormatBase + "UYVY", TypeInt, NoTable},
		Info{6, VideoFormatBase + "AYUV", TypeInt, NoTable},
		Info{7, VideoFormatBase + "RGBx", TypeInt, NoTable},
		Info{8, VideoFormatBase + "BGRx", TypeInt, NoTable},
		Info{9, VideoFormatBase + "xRGB", TypeInt, NoTable},
		Info{10, VideoFormatBase + "xBGR", TypeInt, NoTable},
		Info{11, VideoFormatBase + "RGBA", TypeInt, NoTable},
		Info{12, VideoFormatBase + "BGRA", TypeInt, NoTable},
		Info{13, VideoFormatBase + "ARGB", TypeInt, NoTable},
		Info{14, VideoFormatBase + "ABGR", TypeInt, NoTable},
		Info{15, VideoFormatBase + "RGB", TypeInt, NoTable},
		Info{16, VideoFormatBase + "BGR", TypeInt, NoTable},
	)

	format := b.Table(ParamObjectBase+"Format",
		Info{FormatStart, FormatBase, TypeID, paramIDs},
		Info{FormatMediaType, FormatBase + "mediaType", TypeID, mediaTypes},
		Info{FormatMediaSubtype, FormatBase + "mediaSubtype", TypeID, mediaSubtypes},
		Info{FormatAudioFormat, FormatAudioBase + "format", TypeID, audioFormats},
		Info{FormatAudioFlags, FormatAudioBase + "flags", TypeID, NoTable},
		Info{FormatAudioRate, FormatAudioBase + "rate", TypeInt, NoTable},
		Info{FormatAudioChannels, FormatAudioBase + "channels", TypeInt, NoTable},
		Info{FormatAudioPosition, FormatAudioBase + "position", TypeArray, NoTable},
		Info{FormatAudioIEC958Codec, FormatAudioBase + "iec958Codec", TypeID, NoTable},
		Info{FormatAudioBitorder, FormatAudioBase + "bitorder", TypeID, NoTable},
		Info{FormatAudioInterleave, FormatAudioBase + "interleave", TypeInt, NoTable},
		Info{FormatAudioBitrate, FormatAudioBase + "bitrate", TypeInt, NoTable},
		Info{FormatAudioBlockAlign, FormatAudioBase + "blockAlign", TypeInt, NoTable},
		Info{FormatVideoFormat, FormatVideoBase + "format", TypeID, videoFormats},
		Info{FormatVideoModifier, FormatVideoBase + "modifier", TypeLong, NoTable},
		Info{FormatVideoSize, FormatVideoBase + "size", TypeRectangle, NoTable},
		Info{FormatVideoFramerate, FormatVideoBase + "framerate", TypeFraction, NoTable},
		Info{FormatVideoMaxFramerate, FormatVideoBase + "maxFramerate", TypeFraction, NoTable},
		Info{FormatVideoViews, FormatVideoBase + "views", TypeInt, NoTable},
		Info{FormatVideoInterlaceMode, FormatVideoBase + "interlaceMode", TypeID, NoTable},
		Info{FormatVideoPixelAspectRatio, FormatVideoBase + "pixelAspectRatio", TypeFraction, NoTable},
	)

	props := b.Table(ParamObjectBase+"Props",
		Info{PropStart, PropsBase, TypeID, paramIDs},
		Info{PropUnknown, PropsBase + "unknown", TypeNone, NoTable},
		Info{PropDevice, PropsBase + "device", TypeString, NoTable},
		Info{PropDeviceName, PropsBase + "deviceName", TypeString, NoTable},
		Info{PropDeviceFd, PropsBase + "deviceFd", TypeFd, NoTable},
		Info{PropCard, PropsBase + "card", TypeString, NoTable},
		Info{PropCardName, PropsBase + "cardName", TypeString, NoTable},
		Info{PropMinLatency, PropsBase + "minLatency", TypeInt, NoTable},
		Info{PropMaxLatency, PropsBase + "maxLatency", TypeInt, NoTable},
		Info{PropPeriods, PropsBase + "periods", TypeInt, NoTable},
		Info{PropPeriodSize, PropsBase + "periodSize", TypeInt, NoTable},
		Info{PropLive, PropsBase + "live", TypeBool, NoTable},
		Info{PropWaveType, PropsBase + "waveType", TypeID, NoTable},
		Info{PropFrequency, PropsBase + "frequency", TypeInt, NoTable},
		Info{PropVolume, PropsBase + "volume", TypeFloat, NoTable},
		Info{PropMute, PropsBase + "mute", TypeBool, NoTable},
		Info{PropPatternType, PropsBase + "patternType", TypeID, NoTable},
		Info{PropDitherType, PropsBase + "ditherType", TypeID, NoTable},
		Info{PropTruncate, PropsBase + "truncate", TypeBool, NoTable},
		Info{PropBrightness, PropsBase + "brightness", TypeInt, NoTable},
		Info{PropContrast, PropsBase + "contrast", TypeInt, NoTable},
		Info{PropSaturation, PropsBase + "saturation", TypeInt, NoTable},
		Info{PropHue, PropsBase + "hue", TypeInt, NoTable},
		Info{PropGamma, PropsBase + "gamma", TypeInt, NoTable},
		Info{PropExposure, PropsBase + "exposure", TypeInt, NoTable},
		Info{PropGain, PropsBase + "gain", TypeInt, NoTable},
		Info{PropSharpness, PropsBase + "sharpness", TypeInt, NoTable},
	)

	propInfo := b.Table(ParamObjectBase+"PropInfo",
		Info{0, PropInfoBase, TypeID, paramIDs},
		Info{1, PropInfoBase + "id", TypeID, props},
		Info{2, PropInfoBase + "name", TypeString, NoTable},
		Info{3, PropInfoBase + "type", TypeProp, NoTable},
		Info{4, PropInfoBase + "labels", TypeStruct, NoTable},
		Info{5, PropInfoBase + "container", TypeID, NoTable},
		Info{6, PropInfoBase + "params", TypeBool, NoTable},
		Info{7, PropInfoBase + "description", TypeString, NoTable},
	)

	buffers := b.Table(ParamObjectBase+"Buffers",
		Info{BuffersStart, BuffersBase, TypeID, paramIDs},
		Info{BuffersBuffers, BuffersBase + "buffers", TypeInt, NoTable},
		Info{BuffersBlocks, BuffersBase + "blocks", TypeInt, NoTable},
		Info{BuffersSize, BlockInfoBase + "size", TypeInt, NoTable},
		Info{BuffersStride, BlockInfoBase + "stride", TypeInt, NoTable},
		Info{BuffersAlign, BlockInfoBase + "align", TypeInt, NoTable},
		Info{BuffersType, BlockInfoBase + "dataType", TypeInt, NoTable},
	)

	meta := b.Table(ParamObjectBase+"Meta",
		Info{0, MetaBase, TypeID, paramIDs},
		Info{1, MetaBase + "type", TypeID, NoTable},
		Info{2, MetaBase + "size", TypeInt, NoTable},
	)

	io := b.Table(ParamObjectBase+"IO",
		Info{0, IOBase, TypeID, paramIDs},
		Info{1, IOBase + "id", TypeID, NoTable},
		Info{2, IOBase + "size", TypeInt, NoTable},
	)

	nodeEventIDs := b.Table(EnumBase+"NodeEvent",
		Info{NodeEventError, NodeEventIDBase + "Error", TypeInt, NoTable},
		Info{NodeEventBuffering, NodeEventIDBase + "Buffering", TypeInt, NoTable},
		Info{NodeEventRequestRefresh, NodeEventIDBase + "RequestRefresh", TypeInt, NoTable},
	)

	nodeEvent := b.Table(EventBase+"Node",
		Info{0, NodeEventBase, TypeID, nodeEventIDs},
	)

	root := b.Table(BaseName,
		Info{TypeStart, BaseName, TypeStart, NoTable},
		Info{TypeNone, BaseName + "None", TypeNone, NoTable},
		Info{TypeBool, BaseName + "Bool", TypeBool, NoTable},
		Info{TypeID, BaseName + "Id", TypeID, NoTable},
		Info{TypeInt, BaseName + "Int", TypeInt, NoTable},
		Info{TypeLong, BaseName + "Long", TypeLong, NoTable},
		Info{TypeFloat, BaseName + "Float", TypeFloat, NoTable},
		Info{TypeDouble, BaseName + "Double", TypeDouble, NoTable},
		Info{TypeString, BaseName + "String", TypeString, NoTable},
		Info{TypeBytes, BaseName + "Bytes", TypeBytes, NoTable},
		Info{TypeRectangle, BaseName + "Rectangle", TypeRectangle, NoTable},
		Info{TypeFraction, BaseName + "Fraction", TypeFraction, NoTable},
		Info{TypeBitmap, BaseName + "Bitmap", TypeBitmap, NoTable},
		Info{TypeArray, BaseName + "Array", TypeArray, NoTable},
		Info{TypeStruct, PodBase + "Struct", TypeStruct, NoTable},
		Info{TypeObject, PodBase + "Object", TypeObject, NoTable},
		Info{TypePointer, BaseName + "Pointer", TypePointer, NoTable},
		Info{TypeFd, BaseName + "Fd", TypeFd, NoTable},
		Info{TypeProp, PodBase + "Prop", TypeProp, NoTable},

		Info{TypePointerStart, PointerBase, TypePointer, NoTable},
		Info{TypePointerBuffer, PointerBase + "Buffer", TypePointer, NoTable},
		Info{TypePointerMeta, PointerBase + "Meta", TypePointer, NoTable},
		Info{TypePointerDict, PointerBase + "Dict", TypePointer, NoTable},

		Info{TypeEventStart, EventBase, TypeObject, NoTable},
		Info{TypeEventDevice, EventBase + "Device", TypeObject, NoTable},
		Info{TypeEventNode, EventBase + "Node", TypeObject, nodeEvent},
		Info{TypeCommandStart, CommandBase, TypeObject, NoTable},
		Info{TypeCommandDev, CommandBase + "Device", TypeObject, NoTable},
		Info{TypeCommandNode, CommandBase + "Node", TypeObject, NoTable},

		Info{TypeObjectStart, ParamObjectBase, TypeObject, NoTable},
		Info{TypeObjectPropInfo, ParamObjectBase + "PropInfo", TypeObject, propInfo},
		Info{TypeObjectProps, ParamObjectBase + "Props", TypeObject, props},
		Info{TypeObjectFormat, ParamObjectBase + "Format", TypeObject, format},
		Info{TypeObjectBuffers, ParamObjectBase + "Buffers", TypeObject, buffers},
		Info{TypeObjectMeta, ParamObjectBase + "Meta", TypeObject, meta},
		Info{TypeObjectIO, ParamObjectBase + "IO", TypeObject, io},
	)

	return b.Build(root)
}
