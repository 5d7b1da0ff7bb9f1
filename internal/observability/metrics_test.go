package observability

import (
	"fmt"
	"testing"
	"time"

	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	log := testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("podctl-test", "GET", "/health", 200, 12*time.Millisecond)
	RecordDecode("test", 64, nil)

	log.Debug().Msg("observability/metrics: registration idempotent and recording paths executed")
}

func TestRecordDecodeClassifiesNodeErrors(t *testing.T) {
	before := testutil.ToFloat64(decodeNodeErrors.WithLabelValues("classify", "malformed_length"))
	errs := []error{
		&pod.DecodeError{Err: pod.ErrMalformedLength},
		fmt.Errorf("wrapped: %w", pod.ErrMalformedLength),
		&pod.DecodeError{Err: pod.ErrUnsupportedKind},
	}
	RecordDecode("classify", 128, errs)

	if got := testutil.ToFloat64(decodeNodeErrors.WithLabelValues("classify", "malformed_length")); got != before+2 {
		t.Fatalf("malformed_length counter = %v, want %v", got, before+2)
	}
	if got := testutil.ToFloat64(decodeTotal.WithLabelValues("classify", "error")); got < 1 {
		t.Fatalf("decode error outcome not counted: %v", got)
	}
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{pod.ErrRecursionLimit, "recursion_limit"},
		{pod.ErrUnsupportedKind, "unsupported_kind"},
		{fmt.Errorf("x: %w", pod.ErrMalformedLength), "malformed_length"},
		{fmt.Errorf("plain"), "other"},
	}
	for _, tc := range cases {
		if got := ErrorKind(tc.err); got != tc.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
