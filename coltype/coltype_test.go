package coltype

import "testing"

func TestType_String(t *testing.T) {
	cases := map[Type]string{
		String:        "String",
		Date:          "Date",
		Float:         "Float",
		Numeric:       "Numeric",
		Bool:          "Bool",
		Memo:          "Memo",
		OLE:           "OLE",
		Binary:        "Binary",
		Long:          "Long",
		Autoincrement: "Autoincrement",
		Double:        "Double",
		Timestamp:     "Timestamp",
		Type('X'):     "Unknown",
	}

	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Errorf("Type(%q).String() = %q, want %q", byte(tag), got, want)
		}
	}
}

func TestType_Valid(t *testing.T) {
	for _, tag := range []Type{String, Date, Float, Numeric, Bool, Memo, OLE, Binary, Long, Autoincrement, Double, Timestamp} {
		if !tag.Valid() {
			t.Errorf("Type(%q).Valid() = false, want true", byte(tag))
		}
	}

	for _, tag := range []Type{'X', 'z', 0} {
		if tag.Valid() {
			t.Errorf("Type(%q).Valid() = true, want false", byte(tag))
		}
	}
}

func TestType_IsMemoBlock(t *testing.T) {
	for _, tag := range []Type{Memo, OLE, Binary} {
		if !tag.IsMemoBlock() {
			t.Errorf("Type(%q).IsMemoBlock() = false, want true", byte(tag))
		}
	}

	for _, tag := range []Type{String, Date, Float, Numeric, Bool, Long, Autoincrement, Double, Timestamp} {
		if tag.IsMemoBlock() {
			t.Errorf("Type(%q).IsMemoBlock() = true, want false", byte(tag))
		}
	}
}

func TestType_DefaultWidth(t *testing.T) {
	cases := []struct {
		tag       Type
		want      int
		wantFixed bool
	}{
		{Date, 8, true},
		{Bool, 1, true},
		{Memo, 10, true},
		{OLE, 10, true},
		{Binary, 10, true},
		{Long, 4, true},
		{Autoincrement, 4, true},
		{Double, 8, true},
		{Timestamp, 8, true},
		{String, 0, false},
		{Float, 0, false},
		{Numeric, 0, false},
	}

	for _, c := range cases {
		got, fixed := c.tag.DefaultWidth()
		if got != c.want || fixed != c.wantFixed {
			t.Errorf("Type(%q).DefaultWidth() = (%d, %v), want (%d, %v)", byte(c.tag), got, fixed, c.want, c.wantFixed)
		}
	}
}
