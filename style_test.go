package fontreg

import "testing"

func TestStyleOf(t *testing.T) {
	tests := []struct {
		weight Weight
		italic bool
		want   Style
	}{
		{400, false, StyleNormal},
		{699, false, StyleNormal},
		{700, false, StyleBold},
		{900, false, StyleBold},
		{100, true, StyleItalic},
		{700, true, StyleBoldItalic},
	}
	for _, tt := range tests {
		got := StyleOf(tt.weight, tt.italic)
		if got != tt.want {
			t.Errorf("StyleOf(%d, %v) = %s, want %s", tt.weight, tt.italic, got, tt.want)
		}
		if got.IsBold() != tt.weight.IsBold() || got.IsItalic() != tt.italic {
			t.Errorf("%s: IsBold/IsItalic disagree with inputs", got)
		}
	}
	if s := Style(42).String(); s != "unknown" {
		t.Errorf("Style(42).String() = %q", s)
	}
}

func TestStyleAppliers(t *testing.T) {
	regular := Variant{Family: "Sans", Weight: 400}
	boldItalic := Variant{Family: "Sans", Weight: 700, Italic: true}

	type want struct {
		weight          Weight
		italic          bool
		style           Style
		syntheticBold   bool
		syntheticItalic bool
	}
	tests := []struct {
		name    string
		applier StyleApplier
		variant Variant
		req     Request
		want    want
	}{
		{"continuous same", ContinuousStyle{}, regular, Request{Weight: 400}, want{400, false, StyleNormal, false, false}},
		{"continuous heavier", ContinuousStyle{}, regular, Request{Weight: 550}, want{550, false, StyleNormal, true, false}},
		{"continuous lighter", ContinuousStyle{}, boldItalic, Request{Weight: 300, Italic: true}, want{300, true, StyleItalic, false, false}},
		{"continuous slant", ContinuousStyle{}, regular, Request{Weight: 800, Italic: true}, want{800, true, StyleBoldItalic, true, true}},
		{"discrete same", DiscreteStyle{}, regular, Request{Weight: 400}, want{400, false, StyleNormal, false, false}},
		{"discrete snaps down", DiscreteStyle{}, regular, Request{Weight: 650}, want{400, false, StyleNormal, false, false}},
		{"discrete snaps up", DiscreteStyle{}, regular, Request{Weight: 900}, want{700, false, StyleBold, true, false}},
		{"discrete bold source", DiscreteStyle{}, boldItalic, Request{Weight: 800, Italic: true}, want{700, true, StyleBoldItalic, false, false}},
		{"discrete slant", DiscreteStyle{}, regular, Request{Weight: 400, Italic: true}, want{400, true, StyleItalic, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Size = 12
			f := tt.applier.Apply(tt.variant, tt.req)
			got := want{f.Weight(), f.Italic(), f.Style(), f.SyntheticBold(), f.SyntheticItalic()}
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
			if f.Family() != "Sans" || f.Size() != 12 {
				t.Errorf("Apply() lost family or size: %q %g", f.Family(), f.Size())
			}
		})
	}
}
