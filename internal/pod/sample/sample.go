// Package sample builds representative parameter PODs with the builder.
// They feed the CLI sample command, golden dump tests and the HTTP tests.
package sample

import (
	"fmt"
	"sort"

	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

var samples = map[string]func(*pod.Builder){
	"format":  enumFormat,
	"props":   props,
	"buffers": buffers,
	"video":   videoFormat,
}

// Names lists the available samples in sorted order.
func Names() []string {
	out := make([]string, 0, len(samples))
	for name := range samples {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Build encodes the named sample.
func Build(name string) ([]byte, error) {
	fn, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("sample: unknown sample %q", name)
	}
	b := pod.NewBuilder()
	fn(b)
	return b.Finish()
}

// enumFormat is an audio capability: raw audio, a choice of sample formats,
// a rate range with a default and a stepped channel count.
func enumFormat(b *pod.Builder) {
	b.PushObject(typeinfo.TypeObjectFormat, typeinfo.ParamEnumFormat)

	b.PushProp(typeinfo.FormatMediaType, 0)
	b.ID(typeinfo.MediaTypeAudio)
	b.Pop()

	b.PushProp(typeinfo.FormatMediaSubtype, 0)
	b.ID(typeinfo.MediaSubtypeRaw)
	b.Pop()

	b.PushProp(typeinfo.FormatAudioFormat, pod.PropFlags(pod.RangeEnum))
	b.ID(typeinfo.AudioFormatS16LE)
	b.ID(typeinfo.AudioFormatS16LE)
	b.ID(typeinfo.AudioFormatF32LE)
	b.Pop()

	b.PushProp(typeinfo.FormatAudioRate, pod.PropFlags(pod.RangeMinMax))
	b.Int(44100)
	b.Int(1)
	b.Int(384000)
	b.Pop()

	b.PushProp(typeinfo.FormatAudioChannels, pod.PropFlags(pod.RangeStep)|pod.PropOptional)
	b.Int(2)
	b.Int(1)
	b.Int(8)
	b.Int(1)
	b.Pop()

	b.Pop()
}

func props(b *pod.Builder) {
	b.PushObject(typeinfo.TypeObjectProps, typeinfo.ParamProps)

	b.PushProp(typeinfo.PropDevice, pod.PropReadonly)
	b.String("hw:0")
	b.Pop()

	b.PushProp(typeinfo.PropVolume, pod.PropFlags(pod.RangeMinMax))
	b.Float(1.0)
	b.Float(0.0)
	b.Float(10.0)
	b.Pop()

	b.PushProp(typeinfo.PropMute, 0)
	b.Bool(false)
	b.Pop()

	b.PushProp(typeinfo.PropMinLatency, pod.PropUnset)
	b.Pop()

	b.Pop()
}

func buffers(b *pod.Builder) {
	b.PushObject(typeinfo.TypeObjectBuffers, typeinfo.ParamBuffers)

	b.PushProp(typeinfo.BuffersBuffers, pod.PropFlags(pod.RangeMinMax))
	b.Int(8)
	b.Int(2)
	b.Int(32)
	b.Pop()

	b.PushProp(typeinfo.BuffersBlocks, 0)
	b.Int(1)
	b.Pop()

	b.PushProp(typeinfo.BuffersSize, 0)
	b.Int(4096)
	b.Pop()

	b.PushProp(typeinfo.BuffersStride, 0)
	b.Int(4)
	b.Pop()

	b.Pop()
}

func videoFormat(b *pod.Builder) {
	b.PushObject(typeinfo.TypeObjectFormat, typeinfo.ParamFormat)

	b.PushProp(typeinfo.FormatMediaType, 0)
	b.ID(typeinfo.MediaTypeVideo)
	b.Pop()

	b.PushProp(typeinfo.FormatMediaSubtype, 0)
	b.ID(typeinfo.MediaSubtypeRaw)
	b.Pop()

	b.PushProp(typeinfo.FormatVideoSize, 0)
	b.Rectangle(1920, 1080)
	b.Pop()

	b.PushProp(typeinfo.FormatVideoFramerate, 0)
	b.Fraction(30000, 1001)
	b.Pop()

	b.Pop()
}
