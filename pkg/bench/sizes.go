package bench

import (
	"fmt"
	"io"
	"sort"

	"github.com/appnet-org/declbench/pkg/codec"
	"github.com/appnet-org/declbench/pkg/logging"
	"github.com/appnet-org/declbench/pkg/payload"
	"go.uber.org/zap"
)

// SizeReport is the encoded size of a tree's properties under one codec.
type SizeReport struct {
	Codec  string
	Values int
	Bytes  int
}

// MeasureSizes encodes every property of root with each codec in reg, checks
// that it decodes back to the same value and writes one line per codec to out.
func MeasureSizes(root payload.RootModel, reg *codec.Registry, out io.Writer) ([]SizeReport, error) {
	keys := make([]string, 0, len(root.Properties))
	for k := range root.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	reports := make([]SizeReport, 0, len(reg.Names()))
	for _, c := range reg.Codecs() {
		rep := SizeReport{Codec: c.Name()}
		for _, k := range keys {
			v := root.Properties[k]
			data, err := c.Encode(v)
			if err != nil {
				return nil, fmt.Errorf("%s: encode %s: %w", c.Name(), k, err)
			}
			got, err := c.Decode(data)
			if err != nil {
				return nil, fmt.Errorf("%s: decode %s: %w", c.Name(), k, err)
			}
			if got != v {
				return nil, fmt.Errorf("%s: %s round-tripped to %s, want %s", c.Name(), k, got, v)
			}
			rep.Values++
			rep.Bytes += len(data)
		}

		logging.Debug("Encoded properties",
			zap.String("codec", rep.Codec),
			zap.Int("values", rep.Values),
			zap.Int("bytes", rep.Bytes))
		fmt.Fprintf(out, "%s: %d values, %d bytes\n", rep.Codec, rep.Values, rep.Bytes)
		reports = append(reports, rep)
	}
	return reports, nil
}
