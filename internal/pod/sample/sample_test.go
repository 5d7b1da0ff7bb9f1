package sample

import (
	"bytes"
	"testing"

	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

func TestSamplesDecodeCleanAndRoundTrip(t *testing.T) {
	dec := pod.NewDecoder(typeinfo.Default().Root())
	for _, name := range Names() {
		buf, err := Build(name)
		if err != nil {
			t.Fatalf("%s: build: %v", name, err)
		}
		n, err := dec.Decode(buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		obj, ok := n.Value.(pod.Object)
		if !ok || obj.IDName == typeinfo.UnknownName {
			t.Fatalf("%s: expected a resolved object, got %+v", name, n.Value)
		}
		b := pod.NewBuilder()
		if err := pod.Encode(b, n); err != nil {
			t.Fatalf("%s: encode: %v", name, err)
		}
		out, err := b.Finish()
		if err != nil || !bytes.Equal(out, buf) {
			t.Fatalf("%s: round-trip mismatch (%v)", name, err)
		}
	}
}

func TestBuildUnknownSample(t *testing.T) {
	if _, err := Build("nope"); err == nil {
		t.Fatalf("expected error for unknown sample")
	}
}
