package codec

import (
	"errors"
	"fmt"

	"github.com/appnet-org/declbench/pkg/payload"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProtoCodec wraps the scalar in a well-known wrapper message inside an Any.
// The Any type URL carries the kind.
type ProtoCodec struct{}

func (ProtoCodec) Name() string { return "protobuf" }

func (ProtoCodec) Encode(v payload.Value) ([]byte, error) {
	var msg proto.Message
	switch v.Kind() {
	case payload.KindInt:
		i, _ := v.AsInt()
		msg = wrapperspb.Int64(i)
	case payload.KindFloat:
		f, _ := v.AsFloat()
		msg = wrapperspb.Double(f)
	case payload.KindString:
		s, _ := v.AsString()
		msg = wrapperspb.String(s)
	case payload.KindBool:
		b, _ := v.AsBool()
		msg = wrapperspb.Bool(b)
	default:
		return nil, fmt.Errorf("protobuf encode: %w: %s", payload.ErrUnsupportedValueKind, v.Kind())
	}

	a, err := anypb.New(msg)
	if err != nil {
		return nil, fmt.Errorf("protobuf encode: %w", err)
	}
	return proto.Marshal(a)
}

func (ProtoCodec) Decode(data []byte) (payload.Value, error) {
	var a anypb.Any
	if err := proto.Unmarshal(data, &a); err != nil {
		return payload.Value{}, fmt.Errorf("protobuf decode: %w", err)
	}

	msg, err := a.UnmarshalNew()
	if errors.Is(err, protoregistry.NotFound) {
		return payload.Value{}, fmt.Errorf("protobuf decode: %w: %s", payload.ErrUnsupportedValueKind, a.GetTypeUrl())
	}
	if err != nil {
		return payload.Value{}, fmt.Errorf("protobuf decode %s: %w", a.GetTypeUrl(), err)
	}

	switch m := msg.(type) {
	case *wrapperspb.Int64Value:
		return payload.IntValue(m.GetValue()), nil
	case *wrapperspb.DoubleValue:
		return payload.FloatValue(m.GetValue()), nil
	case *wrapperspb.StringValue:
		return payload.StringValue(m.GetValue()), nil
	case *wrapperspb.BoolValue:
		return payload.BoolValue(m.GetValue()), nil
	default:
		return payload.Value{}, fmt.Errorf("protobuf decode: %w: %s", payload.ErrUnsupportedValueKind, a.GetTypeUrl())
	}
}
