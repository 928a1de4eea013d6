package networth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// jsonObjectWriter builds a JSON object whose fields keep their insertion
// order. The first error is sticky and returned by MarshalJSON.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// Append adds key with value marshaled by encoding/json.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	b, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("json field %q: %w", key, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.WriteString(strconv.Quote(key))
	w.buf.WriteByte(':')
	w.buf.Write(b)
	return w
}

// Optional adds key only if value is not its type's zero value.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Amount adds key as a Money amount in currency.
func (w *jsonObjectWriter) Amount(key string, value float64, currency string) *jsonObjectWriter {
	return w.Append(key, M(value, currency))
}

// Rounded adds key as a number rounded to places decimals.
func (w *jsonObjectWriter) Rounded(key string, value float64, places int32) *jsonObjectWriter {
	return w.Append(key, round(value, places))
}

// MarshalJSON returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	res := make([]byte, 0, w.buf.Len()+2)
	res = append(res, '{')
	res = append(res, w.buf.Bytes()...)
	return append(res, '}'), nil
}
