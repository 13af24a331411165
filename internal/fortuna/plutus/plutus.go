// Package plutus encodes and decodes the subset of Plutus data used by the Fortuna validator:
// constructor applications whose fields are integers, byte strings or nested constructors.
//
// Non-empty field lists are written with indefinite length, the same layout the on-chain
// serialisation library produces, so hashes over the encoding match the validator.
package plutus

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

const (
	compactTagBase   = 121
	compactTagMax    = 127
	extendedTagBase  = 1280
	extendedTagMax   = 1400
	compactIndexMax  = compactTagMax - compactTagBase
	extendedIndexMax = compactIndexMax + 1 + extendedTagMax - extendedTagBase

	tagPositiveBignum = 2
)

// ErrUnsupported is returned for data shapes outside the supported subset.
var ErrUnsupported = errors.New("unsupported plutus data")

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.EncOptions{}.EncMode()
	if err != nil {
		panic("plutus: cbor enc mode: " + err.Error())
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("plutus: cbor dec mode: " + err.Error())
	}
	return dm
}

// Constr is a constructor application. Fields hold uint64, int64, int, *big.Int, []byte or Constr.
type Constr struct {
	Index  uint64
	Fields []any
}

// NewConstr builds a constructor application.
func NewConstr(index uint64, fields ...any) Constr {
	return Constr{Index: index, Fields: fields}
}

// Marshal encodes v, which must be a Constr or a supported field value.
func Marshal(v any) ([]byte, error) {
	if err := checkField(v); err != nil {
		return nil, err
	}
	return encMode.Marshal(v)
}

// MarshalCBOR implements cbor.Marshaler.
func (c Constr) MarshalCBOR() ([]byte, error) {
	tag, err := constrTag(c.Index)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := encMode.NewEncoder(&buf)
	if len(c.Fields) == 0 {
		if err := enc.Encode([]any{}); err != nil {
			return nil, fmt.Errorf("encode empty fields: %w", err)
		}
	} else {
		if err := enc.StartIndefiniteArray(); err != nil {
			return nil, fmt.Errorf("start fields: %w", err)
		}
		for i, field := range c.Fields {
			if err := checkField(field); err != nil {
				return nil, fmt.Errorf("field %d: %w", i, err)
			}
			if err := enc.Encode(field); err != nil {
				return nil, fmt.Errorf("encode field %d: %w", i, err)
			}
		}
		if err := enc.EndIndefinite(); err != nil {
			return nil, fmt.Errorf("end fields: %w", err)
		}
	}

	return encMode.Marshal(cbor.RawTag{Number: tag, Content: buf.Bytes()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *Constr) UnmarshalCBOR(data []byte) error {
	var tag cbor.RawTag
	if err := decMode.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decode constructor tag: %w", err)
	}
	index, err := constrIndex(tag.Number)
	if err != nil {
		return err
	}

	var raw []cbor.RawMessage
	if err := decMode.Unmarshal(tag.Content, &raw); err != nil {
		return fmt.Errorf("decode constructor fields: %w", err)
	}

	fields := make([]any, len(raw))
	for i, item := range raw {
		if fields[i], err = decodeField(item); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}

	c.Index = index
	c.Fields = fields
	return nil
}

// Unmarshal decodes a constructor application.
func Unmarshal(data []byte) (Constr, error) {
	var c Constr
	if err := decMode.Unmarshal(data, &c); err != nil {
		return Constr{}, err
	}
	return c, nil
}

// Uint returns field i as an unsigned integer.
func (c Constr) Uint(i int) (uint64, error) {
	if i >= len(c.Fields) {
		return 0, fmt.Errorf("field %d missing, constructor has %d fields", i, len(c.Fields))
	}
	switch v := c.Fields[i].(type) {
	case uint64:
		return v, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("field %d is negative: %d", i, v)
		}
		return uint64(v), nil
	case *big.Int:
		if !v.IsUint64() {
			return 0, fmt.Errorf("field %d does not fit 64 bits: %s", i, v)
		}
		return v.Uint64(), nil
	default:
		return 0, fmt.Errorf("field %d is %T, want integer", i, c.Fields[i])
	}
}

// Bytes returns field i as a byte string.
func (c Constr) Bytes(i int) ([]byte, error) {
	if i >= len(c.Fields) {
		return nil, fmt.Errorf("field %d missing, constructor has %d fields", i, len(c.Fields))
	}
	v, ok := c.Fields[i].([]byte)
	if !ok {
		return nil, fmt.Errorf("field %d is %T, want bytes", i, c.Fields[i])
	}
	return v, nil
}

func decodeField(raw cbor.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty item", ErrUnsupported)
	}
	if raw[0] == 0xc0|tagPositiveBignum {
		var n big.Int
		if err := decMode.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode bignum: %w", err)
		}
		return &n, nil
	}
	if raw[0]>>5 == 6 {
		var nested Constr
		if err := nested.UnmarshalCBOR(raw); err != nil {
			return nil, err
		}
		return nested, nil
	}

	var v any
	if err := decMode.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode field: %w", err)
	}
	return v, nil
}

func checkField(v any) error {
	switch f := v.(type) {
	case uint64, []byte, Constr, *big.Int:
		return nil
	case int64:
		if f < 0 {
			return fmt.Errorf("%w: negative integer %d", ErrUnsupported, f)
		}
		return nil
	case int:
		if f < 0 {
			return fmt.Errorf("%w: negative integer %d", ErrUnsupported, f)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func constrTag(index uint64) (uint64, error) {
	switch {
	case index <= compactIndexMax:
		return compactTagBase + index, nil
	case index <= extendedIndexMax:
		return extendedTagBase + index - compactIndexMax - 1, nil
	default:
		return 0, fmt.Errorf("%w: constructor index %d", ErrUnsupported, index)
	}
}

func constrIndex(tag uint64) (uint64, error) {
	switch {
	case tag >= compactTagBase && tag <= compactTagMax:
		return tag - compactTagBase, nil
	case tag >= extendedTagBase && tag <= extendedTagMax:
		return tag - extendedTagBase + compactIndexMax + 1, nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnsupported, tag)
	}
}
