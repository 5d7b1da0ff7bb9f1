package typeinfo

// Basic type ids. These are the wire codes of the value header.
const (
	TypeStart     uint32 = 0x00
	TypeNone      uint32 = 0x01
	TypeBool      uint32 = 0x02
	TypeID        uint32 = 0x03
	TypeInt       uint32 = 0x04
	TypeLong      uint32 = 0x05
	TypeFloat     uint32 = 0x06
	TypeDouble    uint32 = 0x07
	TypeString    uint32 = 0x08
	TypeBytes     uint32 = 0x09
	TypeRectangle uint32 = 0x0a
	TypeFraction  uint32 = 0x0b
	TypeBitmap    uint32 = 0x0c
	TypeArray     uint32 = 0x0d
	TypeStruct    uint32 = 0x0e
	TypeObject    uint32 = 0x0f
	TypeSequence  uint32 = 0x10
	TypePointer   uint32 = 0x11
	TypeFd        uint32 = 0x12
	TypeProp      uint32 = 0x13
)

// Pointer type ids.
const (
	TypePointerStart  uint32 = 0x10000
	TypePointerBuffer uint32 = 0x10001
	TypePointerMeta   uint32 = 0x10002
	TypePointerDict   uint32 = 0x10003
)

// Event, command and parameter object kinds.
const (
	TypeEventStart   uint32 = 0x20000
	TypeEventDevice  uint32 = 0x20001
	TypeEventNode    uint32 = 0x20002
	TypeCommandStart uint32 = 0x30000
	TypeCommandDev   uint32 = 0x30001
	TypeCommandNode  uint32 = 0x30002

	TypeObjectStart      uint32 = 0x40000
	TypeObjectPropInfo   uint32 = 0x40001
	TypeObjectProps      uint32 = 0x40002
	TypeObjectFormat     uint32 = 0x40003
	TypeObjectBuffers    uint32 = 0x40004
	TypeObjectMeta       uint32 = 0x40005
	TypeObjectIO         uint32 = 0x40006
	TypeObjectProfile    uint32 = 0x40007
	TypeObjectPortConfig uint32 = 0x40008
	TypeObjectRoute      uint32 = 0x40009
	TypeObjectLatency    uint32 = 0x4000b
)

// Parameter ids, the object id of parameter objects.
const (
	ParamInvalid        uint32 = 0
	ParamPropInfo       uint32 = 1
	ParamProps          uint32 = 2
	ParamEnumFormat     uint32 = 3
	ParamFormat         uint32 = 4
	ParamBuffers        uint32 = 5
	ParamMeta           uint32 = 6
	ParamIO             uint32 = 7
	ParamEnumProfile    uint32 = 8
	ParamProfile        uint32 = 9
	ParamEnumPortConfig uint32 = 10
	ParamPortConfig     uint32 = 11
	ParamEnumRoute      uint32 = 12
	ParamRoute          uint32 = 13
	ParamControl        uint32 = 14
	ParamLatency        uint32 = 15
	ParamProcessLatency uint32 = 16
)

// Node event ids, the object id of TypeEventNode objects.
const (
	NodeEventError          uint32 = 0
	NodeEventBuffering      uint32 = 1
	NodeEventRequestRefresh uint32 = 2
)

// Format object keys.
const (
	FormatStart        uint32 = 0
	FormatMediaType    uint32 = 1
	FormatMediaSubtype uint32 = 2

	FormatAudioFormat      uint32 = 0x10001
	FormatAudioFlags       uint32 = 0x10002
	FormatAudioRate        uint32 = 0x10003
	FormatAudioChannels    uint32 = 0x10004
	FormatAudioPosition    uint32 = 0x10005
	FormatAudioIEC958Codec uint32 = 0x10006
	FormatAudioBitorder    uint32 = 0x10007
	FormatAudioInterleave  uint32 = 0x10008
	FormatAudioBitrate     uint32 = 0x10009
	FormatAudioBlockAlign  uint32 = 0x1000a

	FormatVideoFormat           uint32 = 0x20001
	FormatVideoModifier         uint32 = 0x20002
	FormatVideoSize             uint32 = 0x20003
	FormatVideoFramerate        uint32 = 0x20004
	FormatVideoMaxFramerate     uint32 = 0x20005
	FormatVideoViews            uint32 = 0x20006
	FormatVideoInterlaceMode    uint32 = 0x20007
	FormatVideoPixelAspectRatio uint32 = 0x20008
)

// Media types.
const (
	MediaTypeUnknown     uint32 = 0
	MediaTypeAudio       uint32 = 1
	MediaTypeVideo       uint32 = 2
	MediaTypeImage       uint32 = 3
	MediaTypeBinary      uint32 = 4
	MediaTypeStream      uint32 = 5
	MediaTypeApplication uint32 = 6
)

// Media subtypes used by the default vocabulary and samples.
const (
	MediaSubtypeUnknown uint32 = 0
	MediaSubtypeRaw     uint32 = 1
	MediaSubtypeDSP     uint32 = 2
	MediaSubtypeMP3     uint32 = 0x10001
	MediaSubtypeAAC     uint32 = 0x10002
	MediaSubtypeOpus    uint32 = 0x10010
	MediaSubtypeH264    uint32 = 0x20001
	MediaSubtypeMJPG    uint32 = 0x20002
	MediaSubtypeJPEG    uint32 = 0x30001
	MediaSubtypeMIDI    uint32 = 0x50001
	MediaSubtypeControl uint32 = 0x60001
)

// Audio sample formats.
const (
	AudioFormatUnknown uint32 = 0
	AudioFormatEncoded uint32 = 1
	AudioFormatS8      uint32 = 0x101
	AudioFormatU8      uint32 = 0x102
	AudioFormatS16LE   uint32 = 0x103
	AudioFormatS16BE   uint32 = 0x104
	AudioFormatU16LE   uint32 = 0x105
	AudioFormatU16BE   uint32 = 0x106
	AudioFormatS32LE   uint32 = 0x10b
	AudioFormatS32BE   uint32 = 0x10c
	AudioFormatF32LE   uint32 = 0x11b
	AudioFormatF32BE   uint32 = 0x11c
)

// Props object keys.
const (
	PropStart      uint32 = 0
	PropUnknown    uint32 = 1
	PropDevice     uint32 = 0x101
	PropDeviceName uint32 = 0x102
	PropDeviceFd   uint32 = 0x103
	PropCard       uint32 = 0x104
	PropCardName   uint32 = 0x105
	PropMinLatency uint32 = 0x106
	PropMaxLatency uint32 = 0x107
	PropPeriods    uint32 = 0x108
	PropPeriodSize uint32 = 0x109
	PropLive       uint32 = 0x10b

	PropWaveType    uint32 = 0x10001
	PropFrequency   uint32 = 0x10002
	PropVolume      uint32 = 0x10003
	PropMute        uint32 = 0x10004
	PropPatternType uint32 = 0x10005
	PropDitherType  uint32 = 0x10006
	PropTruncate    uint32 = 0x10007

	PropBrightness uint32 = 0x20001
	PropContrast   uint32 = 0x20002
	PropSaturation uint32 = 0x20003
	PropHue        uint32 = 0x20004
	PropGamma      uint32 = 0x20005
	PropExposure   uint32 = 0x20006
	PropGain       uint32 = 0x20007
	PropSharpness  uint32 = 0x20008
)

// Buffers object keys.
const (
	BuffersStart   uint32 = 0
	BuffersBuffers uint32 = 1
	BuffersBlocks  uint32 = 2
	BuffersSize    uint32 = 3
	BuffersStride  uint32 = 4
	BuffersAlign   uint32 = 5
	BuffersType    uint32 = 6
)
