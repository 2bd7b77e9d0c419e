package pixel

import "testing"

func TestOrderPut(t *testing.T) {
	c := Color{1, 2, 3} // R=1 G=2 B=3
	testCases := []struct {
		order Order
		want  [3]byte
	}{
		{OrderGRB, [3]byte{2, 1, 3}},
		{OrderRGB, [3]byte{1, 2, 3}},
		{OrderBRG, [3]byte{3, 1, 2}},
		{OrderRBG, [3]byte{1, 3, 2}},
		{OrderGBR, [3]byte{2, 3, 1}},
		{OrderBGR, [3]byte{3, 2, 1}},
	}
	for _, test := range testCases {
		t.Run(test.order.String(), func(it *testing.T) {
			var buf [3]byte
			test.order.Put(buf[:], c)
			if buf != test.want {
				it.Errorf("expected %v, got %v", test.want, buf)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	for order, name := range orderNames {
		v, err := ParseOrder(name)
		if err != nil {
			t.Fatalf("expected %q to parse, got error: %v", name, err)
		}
		if v != order {
			t.Errorf("expected %q to parse as %v, got %v", name, order, v)
		}
	}

	if _, err := ParseOrder("XYZ"); err == nil {
		t.Error("expected an error for an unknown order")
	}
}

func TestOrderString(t *testing.T) {
	if v := OrderGRB.String(); v != "GRB" {
		t.Errorf("expected GRB, got %q", v)
	}
	if v := Order(42).String(); v != "Order(42)" {
		t.Errorf("expected Order(42), got %q", v)
	}
}
