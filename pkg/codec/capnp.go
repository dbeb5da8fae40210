package codec

import (
	"fmt"
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/appnet-org/declbench/pkg/payload"
)

// Wire layout of the schema-less Cap'n Proto root struct:
//
//	data word 0: kind tag (uint16 at offset 0)
//	data word 1: int64 bits, float64 bits or bool (uint64 at offset 8)
//	pointer 0:   text, for strings
var valueStructSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

const (
	kindOffset    capnp.DataOffset = 0
	scalarOffset  capnp.DataOffset = 8
	textPtrIndex  uint16           = 0
	capnpKindInt  uint16           = 1
	capnpKindFlt  uint16           = 2
	capnpKindStr  uint16           = 3
	capnpKindBool uint16           = 4
)

// CapnpCodec stores the value in a single-segment Cap'n Proto message.
type CapnpCodec struct{}

func (CapnpCodec) Name() string { return "capnp" }

func (CapnpCodec) Encode(v payload.Value) ([]byte, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, fmt.Errorf("capnp encode: %w", err)
	}
	st, err := capnp.NewRootStruct(seg, valueStructSize)
	if err != nil {
		return nil, fmt.Errorf("capnp encode: %w", err)
	}

	switch v.Kind() {
	case payload.KindInt:
		i, _ := v.AsInt()
		st.SetUint16(kindOffset, capnpKindInt)
		st.SetUint64(scalarOffset, uint64(i))
	case payload.KindFloat:
		f, _ := v.AsFloat()
		st.SetUint16(kindOffset, capnpKindFlt)
		st.SetUint64(scalarOffset, math.Float64bits(f))
	case payload.KindString:
		s, _ := v.AsString()
		st.SetUint16(kindOffset, capnpKindStr)
		if err := st.SetText(textPtrIndex, s); err != nil {
			return nil, fmt.Errorf("capnp encode: %w", err)
		}
	case payload.KindBool:
		b, _ := v.AsBool()
		st.SetUint16(kindOffset, capnpKindBool)
		if b {
			st.SetUint64(scalarOffset, 1)
		}
	default:
		return nil, fmt.Errorf("capnp encode: %w: %s", payload.ErrUnsupportedValueKind, v.Kind())
	}

	return msg.Marshal()
}

func (CapnpCodec) Decode(data []byte) (payload.Value, error) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return payload.Value{}, fmt.Errorf("capnp decode: %w", err)
	}
	root, err := msg.Root()
	if err != nil {
		return payload.Value{}, fmt.Errorf("capnp decode: %w", err)
	}
	st := root.Struct()

	switch tag := st.Uint16(kindOffset); tag {
	case capnpKindInt:
		return payload.IntValue(int64(st.Uint64(scalarOffset))), nil
	case capnpKindFlt:
		return payload.FloatValue(math.Float64frombits(st.Uint64(scalarOffset))), nil
	case capnpKindStr:
		p, err := st.Ptr(textPtrIndex)
		if err != nil {
			return payload.Value{}, fmt.Errorf("capnp decode: %w", err)
		}
		return payload.StringValue(p.Text()), nil
	case capnpKindBool:
		return payload.BoolValue(st.Uint64(scalarOffset) != 0), nil
	default:
		return payload.Value{}, fmt.Errorf("capnp decode: %w: tag %d", payload.ErrUnsupportedValueKind, tag)
	}
}
