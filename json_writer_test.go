package networth

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name:  "insertion order",
			build: func(w *jsonObjectWriter) { w.Append("z", 1).Append("a", "hello") },
			want:  `{"z":1,"a":"hello"}`,
		},
		{
			name: "optional fields",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 0).Optional("b", "").Optional("c", 0).Optional("d", "hello").Optional("e", nil)
			},
			want: `{"a":0,"d":"hello"}`,
		},
		{
			name:  "amount",
			build: func(w *jsonObjectWriter) { w.Amount("nw", 1500.255, "USD") },
			want:  `{"nw":{"currency":"USD","amount":"1500.26"}}`,
		},
		{
			name:  "rounded",
			build: func(w *jsonObjectWriter) { w.Rounded("cv", 6.45161, 2).Rounded("debt", 17999.5, 0) },
			want:  `{"cv":6.45,"debt":18000}`,
		},
		{
			name:  "escaped key",
			build: func(w *jsonObjectWriter) { w.Append(`a"b`, true) },
			want:  `{"a\"b":true}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJsonObjectWriter_StickyError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {})
	w.Append("a", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() succeeded, want an error")
	}
}
