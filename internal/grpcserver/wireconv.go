package grpcserver

import (
	"time"

	"github.com/goodmem-ai/goodmem/gen/goodmemv1"
	"github.com/goodmem-ai/goodmem/internal/idcodec"
)

func toWireTimestamp(t time.Time) *goodmemv1.Timestamp {
	w := idcodec.WireTimestampFromInstant(t)
	return &goodmemv1.Timestamp{Seconds: w.Seconds, Nanos: w.Nanos}
}

func toWireTimestampPtr(t *time.Time) *goodmemv1.Timestamp {
	if t == nil {
		return nil
	}
	return toWireTimestamp(*t)
}
